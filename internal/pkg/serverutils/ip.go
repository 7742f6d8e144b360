package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CleanIP strips the IPv6-mapped-IPv4 prefix so addresses persist in the
// canonical dotted form.
func CleanIP(ip string) string {
	return strings.TrimPrefix(ip, "::ffff:")
}

// ClientIP returns the canonical network origin address of the request.
func ClientIP(ctx *fiber.Ctx) string {
	return CleanIP(ctx.IP())
}

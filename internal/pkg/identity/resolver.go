package identity

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the cookie that carries the opaque user identity.
	CookieName = "userId"

	// GuestPrefix marks identities minted here, as opposed to
	// externally-issued ones.
	GuestPrefix = "guest-"

	cookieLifetime = 365 * 24 * time.Hour
)

// Resolver derives the anonymous user identity from the request cookie,
// minting a fresh guest identity when none is present. Absence of a prior
// identity is normal first contact, not a failure.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the identity for this request and whether it was minted
// right now. A minted identity is written back as a long-lived httpOnly
// cookie so the browser carries it on subsequent requests.
func (r *Resolver) Resolve(ctx *fiber.Ctx) (string, bool) {
	userId := ctx.Cookies(CookieName)
	if userId != "" {
		return userId, false
	}

	userId = GuestPrefix + uuid.NewString()
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    userId,
		Expires:  time.Now().Add(cookieLifetime),
		HTTPOnly: true,
	})
	return userId, true
}

// IsGuest reports whether an identity was minted by this service.
func IsGuest(userId string) bool {
	return strings.HasPrefix(userId, GuestPrefix)
}

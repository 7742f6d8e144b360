package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hireai-be/internal/pkg/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(resolver *identity.Resolver, captured *string, minted *bool) *fiber.App {
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		userId, wasMinted := resolver.Resolve(ctx)
		*captured = userId
		*minted = wasMinted
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestResolveMintsGuestIdentity(t *testing.T) {
	var userId string
	var minted bool
	app := newTestApp(identity.NewResolver(), &userId, &minted)

	req := httptest.NewRequest("GET", "/", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.True(t, minted)
	assert.True(t, identity.IsGuest(userId))

	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == identity.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "expected a Set-Cookie for the minted identity")
	assert.Equal(t, userId, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Expires.IsZero())
}

func TestResolveKeepsExistingIdentity(t *testing.T) {
	var userId string
	var minted bool
	app := newTestApp(identity.NewResolver(), &userId, &minted)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: "ext-user-42"})
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.False(t, minted)
	assert.Equal(t, "ext-user-42", userId)
	assert.False(t, identity.IsGuest(userId))

	for _, c := range res.Cookies() {
		assert.NotEqual(t, identity.CookieName, c.Name, "existing identity must not be re-issued")
	}
}

func TestGuestIdentitiesAreUnique(t *testing.T) {
	var first, second string
	var minted bool
	app := newTestApp(identity.NewResolver(), &first, &minted)

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	res.Body.Close()
	firstId := first

	app2 := newTestApp(identity.NewResolver(), &second, &minted)
	res, err = app2.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	res.Body.Close()

	assert.NotEqual(t, firstId, second)
}

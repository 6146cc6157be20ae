package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"camp-backend/internal/models"
	"camp-backend/internal/session"
	"camp-backend/internal/store"
)

// MethodOverride rewrites POST requests carrying a _method parameter
// (query or form) into PUT, PATCH or DELETE before routing. HTML forms
// only speak GET and POST.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}
		m := c.Query("_method")
		if m == "" {
			m = c.FormValue("_method")
		}
		switch strings.ToUpper(m) {
		case fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
			c.Method(strings.ToUpper(m))
		}
		return c.Next()
	}
}

// LoadSession runs on every routed request. It pops flash messages into
// request locals, remembers the pre-login return target, and resolves the
// session's user id into the current user.
func LoadSession(sessions *fibersession.Store, users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			log.Printf("session load failed: %v", err)
			return c.Next()
		}

		// Remember where to send the user after login. The login page and
		// the home page never overwrite the slot, so a login round trip
		// cannot redirect to itself.
		if path := c.Path(); path != "/" && path != "/login" {
			session.SetReturnTo(sess, c.OriginalURL())
		}

		c.Locals("success", session.PopFlash(sess, "success"))
		c.Locals("error", session.PopFlash(sess, "error"))

		if id := session.UserID(sess); id != "" {
			if u, err := users.GetByID(c.Context(), id); err == nil {
				c.Locals("currentUser", u)
			}
		}

		if err := sess.Save(); err != nil {
			log.Printf("session save failed: %v", err)
		}
		return c.Next()
	}
}

// UserFrom returns the authenticated user loaded by LoadSession, or nil.
func UserFrom(c *fiber.Ctx) *models.User {
	u, _ := c.Locals("currentUser").(*models.User)
	return u
}

// RequireAuth redirects unauthenticated requests to the login page.
// The return target was already stored by LoadSession.
func RequireAuth(sessions *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserFrom(c) != nil {
			return c.Next()
		}
		if sess, err := sessions.Get(c); err == nil {
			session.Flash(sess, "error", "You must be signed in first")
			if err := sess.Save(); err != nil {
				log.Printf("session save failed: %v", err)
			}
		}
		return c.Redirect("/login")
	}
}

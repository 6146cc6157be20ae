// Package session configures the server-side session store and the small
// per-session slots the app uses: the logged-in user id, one flash message
// per kind, and the pre-login return target.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Lifetime is the fixed window from session creation to expiry.
const Lifetime = 7 * 24 * time.Hour

const (
	userIDKey   = "user_id"
	returnToKey = "return_to"
	flashPrefix = "flash_"
)

// NewStore builds the session store. Session data lives in storage (Postgres
// in production, Fiber's in-memory default when storage is nil); the cookie
// carries only the opaque session id.
func NewStore(storage fiber.Storage, cookieName string) *fibersession.Store {
	return fibersession.New(fibersession.Config{
		Storage:        storage,
		Expiration:     Lifetime,
		KeyLookup:      "cookie:" + cookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
}

func SetUserID(sess *fibersession.Session, id string) {
	sess.Set(userIDKey, id)
}

func UserID(sess *fibersession.Session) string {
	if v, ok := sess.Get(userIDKey).(string); ok {
		return v
	}
	return ""
}

// SetReturnTo remembers the URL to send the user back to after login.
// Single slot, overwritten on each call.
func SetReturnTo(sess *fibersession.Session, url string) {
	sess.Set(returnToKey, url)
}

// PopReturnTo returns and clears the remembered URL.
func PopReturnTo(sess *fibersession.Session) string {
	v, _ := sess.Get(returnToKey).(string)
	sess.Delete(returnToKey)
	return v
}

// Flash stores a one-shot message of the given kind ("success" or "error").
func Flash(sess *fibersession.Session, kind, message string) {
	sess.Set(flashPrefix+kind, message)
}

// PopFlash returns and clears the flash message of the given kind.
func PopFlash(sess *fibersession.Session, kind string) string {
	v, _ := sess.Get(flashPrefix + kind).(string)
	sess.Delete(flashPrefix + kind)
	return v
}

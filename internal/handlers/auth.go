package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"camp-backend/internal/httperr"
	"camp-backend/internal/models"
	"camp-backend/internal/services"
	"camp-backend/internal/session"
	"camp-backend/internal/validation"
)

// AuthHandler owns the register/login/logout surface.
type AuthHandler struct {
	Users    *services.UserService
	Sessions *fibersession.Store
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "users/register", nil)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in models.CredentialsInput
	if err := c.BodyParser(&in); err != nil {
		return httperr.Validation("could not parse form data")
	}
	if err := validation.Struct(&in); err != nil {
		return err
	}

	user, err := h.Users.Register(c.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return h.flashRedirect(c, "error", "Username already taken", "/register")
		}
		log.Printf("register failed: %v", err)
		return httperr.Internal("failed to create user")
	}

	return h.signIn(c, user, "Welcome to CampDirectory!", "/campground")
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "users/login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in models.CredentialsInput
	if err := c.BodyParser(&in); err != nil {
		return httperr.Validation("could not parse form data")
	}
	if err := validation.Struct(&in); err != nil {
		return err
	}

	user, err := h.Users.Authenticate(c.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.flashRedirect(c, "error", "Invalid username or password", "/login")
		}
		log.Printf("login failed: %v", err)
		return httperr.Internal("failed to sign in")
	}

	// An empty target means "go back to the page the user came for".
	return h.signIn(c, user, "Welcome back!", "")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("session destroy failed: %v", err)
		}
	}
	return c.Redirect("/")
}

// signIn associates the user with the session. With an empty target the
// remembered pre-login URL is used, falling back to the listing index.
func (h *AuthHandler) signIn(c *fiber.Ctx, user *models.User, greeting, target string) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		log.Printf("session load failed: %v", err)
		return httperr.Internal("failed to start session")
	}

	session.SetUserID(sess, user.ID)
	session.Flash(sess, "success", greeting)
	if target == "" {
		target = session.PopReturnTo(sess)
	}
	if target == "" {
		target = "/campground"
	}
	if err := sess.Save(); err != nil {
		log.Printf("session save failed: %v", err)
		return httperr.Internal("failed to save session")
	}
	return c.Redirect(target)
}

func (h *AuthHandler) flashRedirect(c *fiber.Ctx, kind, message, target string) error {
	sess, err := h.Sessions.Get(c)
	if err == nil {
		session.Flash(sess, kind, message)
		if err := sess.Save(); err != nil {
			log.Printf("session save failed: %v", err)
		}
	}
	return c.Redirect(target)
}

package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"camp-backend/internal/httperr"
	"camp-backend/internal/models"
	"camp-backend/internal/session"
	"camp-backend/internal/store"
	"camp-backend/internal/validation"
)

// ReviewHandler manages reviews nested under a campground.
type ReviewHandler struct {
	Reviews     store.ReviewStore
	Campgrounds store.CampgroundStore
	Sessions    *fibersession.Store
}

// POST /campground/:id/review
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	campgroundID := c.Params("id")
	if _, err := h.Campgrounds.GetByID(c.Context(), campgroundID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httperr.NotFound("Campground not found")
		}
		log.Printf("load campground failed: %v", err)
		return httperr.Internal("failed to load campground")
	}

	var in models.ReviewInput
	if err := c.BodyParser(&in); err != nil {
		return httperr.Validation("could not parse form data")
	}
	if err := validation.Struct(&in); err != nil {
		return err
	}

	user := UserFrom(c)
	if user == nil {
		return httperr.Unauthorized("You must be signed in first")
	}

	rv := &models.Review{
		ID:           uuid.NewString(),
		CampgroundID: campgroundID,
		AuthorID:     user.ID,
		Rating:       in.Rating,
		Text:         in.Text,
	}
	if err := h.Reviews.Create(c.Context(), rv); err != nil {
		log.Printf("create review failed: %v", err)
		return httperr.Internal("failed to save review")
	}

	h.flash(c, "success", "Created new review!")
	return c.Redirect("/campground/" + campgroundID)
}

// DELETE /campground/:id/review/:reviewId
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	campgroundID := c.Params("id")

	rv, err := h.Reviews.GetByID(c.Context(), c.Params("reviewId"))
	if errors.Is(err, store.ErrNotFound) {
		return httperr.NotFound("Review not found")
	}
	if err != nil {
		log.Printf("load review failed: %v", err)
		return httperr.Internal("failed to load review")
	}
	if rv.CampgroundID != campgroundID {
		return httperr.NotFound("Review not found")
	}
	user := UserFrom(c)
	if user == nil {
		return httperr.Unauthorized("You must be signed in first")
	}
	if rv.AuthorID != user.ID {
		return httperr.Forbidden("You do not have permission to do that")
	}

	if err := h.Reviews.Delete(c.Context(), rv.ID); err != nil {
		log.Printf("delete review failed: %v", err)
		return httperr.Internal("failed to delete review")
	}

	h.flash(c, "success", "Deleted review")
	return c.Redirect("/campground/" + campgroundID)
}

func (h *ReviewHandler) flash(c *fiber.Ctx, kind, message string) {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		log.Printf("session load failed: %v", err)
		return
	}
	session.Flash(sess, kind, message)
	if err := sess.Save(); err != nil {
		log.Printf("session save failed: %v", err)
	}
}

package handlers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"camp-backend/internal/httperr"
	"camp-backend/internal/models"
	"camp-backend/internal/session"
	"camp-backend/internal/store"
	"camp-backend/internal/validation"
)

// CampgroundHandler manages all operations on campground listings.
type CampgroundHandler struct {
	Campgrounds store.CampgroundStore
	Reviews     store.ReviewStore
	Sessions    *fibersession.Store
	UploadDir   string
}

// GET /campground
func (h *CampgroundHandler) Index(c *fiber.Ctx) error {
	list, err := h.Campgrounds.List(c.Context())
	if err != nil {
		log.Printf("list campgrounds failed: %v", err)
		return httperr.Internal("failed to load campgrounds")
	}
	return render(c, "campgrounds/index", fiber.Map{"campgrounds": list})
}

// GET /campground/new
func (h *CampgroundHandler) New(c *fiber.Ctx) error {
	return render(c, "campgrounds/new", nil)
}

// POST /campground
func (h *CampgroundHandler) Create(c *fiber.Ctx) error {
	in, err := h.formInput(c)
	if err != nil {
		return err
	}
	if err := validation.Struct(in); err != nil {
		return err
	}

	user := UserFrom(c)
	if user == nil {
		return httperr.Unauthorized("You must be signed in first")
	}

	cg := &models.Campground{
		ID:          uuid.NewString(),
		AuthorID:    user.ID,
		Title:       in.Title,
		Location:    in.Location,
		Price:       *in.Price,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := h.Campgrounds.Create(c.Context(), cg); err != nil {
		log.Printf("create campground failed: %v", err)
		return httperr.Internal("failed to save campground")
	}

	h.flash(c, "success", "Successfully made a new campground!")
	return c.Redirect("/campground/" + cg.ID)
}

// GET /campground/:id
func (h *CampgroundHandler) Show(c *fiber.Ctx) error {
	cg, err := h.load(c)
	if err != nil {
		return err
	}
	reviews, err := h.Reviews.ListByCampground(c.Context(), cg.ID)
	if err != nil {
		log.Printf("list reviews failed: %v", err)
		return httperr.Internal("failed to load reviews")
	}
	return render(c, "campgrounds/show", fiber.Map{
		"campground": cg,
		"reviews":    reviews,
	})
}

// GET /campground/:id/edit
func (h *CampgroundHandler) Edit(c *fiber.Ctx) error {
	cg, err := h.loadOwned(c)
	if err != nil {
		return err
	}
	return render(c, "campgrounds/edit", fiber.Map{"campground": cg})
}

// PUT/PATCH /campground/:id — the full object is resubmitted and revalidated.
func (h *CampgroundHandler) Update(c *fiber.Ctx) error {
	cg, err := h.loadOwned(c)
	if err != nil {
		return err
	}

	in, err := h.formInput(c)
	if err != nil {
		return err
	}
	if err := validation.Struct(in); err != nil {
		return err
	}

	cg.Title = in.Title
	cg.Location = in.Location
	cg.Price = *in.Price
	cg.Description = in.Description
	cg.Image = in.Image
	if err := h.Campgrounds.Update(c.Context(), cg); err != nil {
		log.Printf("update campground failed: %v", err)
		return httperr.Internal("failed to update campground")
	}

	h.flash(c, "success", "Successfully updated campground!")
	return c.Redirect("/campground/" + cg.ID)
}

// DELETE /campground/:id — child reviews are cascade-deleted by the store.
func (h *CampgroundHandler) Delete(c *fiber.Ctx) error {
	cg, err := h.loadOwned(c)
	if err != nil {
		return err
	}
	if err := h.Campgrounds.Delete(c.Context(), cg.ID); err != nil {
		log.Printf("delete campground failed: %v", err)
		return httperr.Internal("failed to delete campground")
	}

	h.flash(c, "success", "Successfully deleted campground")
	return c.Redirect("/campground")
}

func (h *CampgroundHandler) load(c *fiber.Ctx) (*models.Campground, error) {
	cg, err := h.Campgrounds.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFound("Campground not found")
	}
	if err != nil {
		log.Printf("load campground failed: %v", err)
		return nil, httperr.Internal("failed to load campground")
	}
	return cg, nil
}

func (h *CampgroundHandler) loadOwned(c *fiber.Ctx) (*models.Campground, error) {
	cg, err := h.load(c)
	if err != nil {
		return nil, err
	}
	user := UserFrom(c)
	if user == nil {
		return nil, httperr.Unauthorized("You must be signed in first")
	}
	if cg.AuthorID != user.ID {
		return nil, httperr.Forbidden("You do not have permission to do that")
	}
	return cg, nil
}

// formInput binds and stages the campground form. An uploaded file takes
// precedence over the image URL field; it is staged into UploadDir and
// referenced by its served path.
func (h *CampgroundHandler) formInput(c *fiber.Ctx) (*models.CampgroundInput, error) {
	var in models.CampgroundInput
	if err := c.BodyParser(&in); err != nil {
		return nil, httperr.Validation("could not parse form data")
	}

	if fh, err := c.FormFile("upload"); err == nil && fh != nil {
		name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(fh.Filename))
		dest := filepath.Join(h.UploadDir, name)
		if err := c.SaveFile(fh, dest); err != nil {
			log.Printf("save upload failed: %v", err)
			return nil, httperr.Internal("failed to store upload")
		}
		in.Image = "/uploads/" + name
	}
	return &in, nil
}

func (h *CampgroundHandler) flash(c *fiber.Ctx, kind, message string) {
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

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-backend/internal/models"
	"camp-backend/internal/store"
)

type stubCampgrounds struct {
	cg *models.Campground
}

func (s *stubCampgrounds) Create(context.Context, *models.Campground) error { return nil }

func (s *stubCampgrounds) GetByID(_ context.Context, id string) (*models.Campground, error) {
	if s.cg != nil && s.cg.ID == id {
		return s.cg, nil
	}
	return nil, store.ErrNotFound
}

func (s *stubCampgrounds) List(context.Context) ([]models.Campground, error) { return nil, nil }
func (s *stubCampgrounds) Update(context.Context, *models.Campground) error  { return nil }
func (s *stubCampgrounds) Delete(context.Context, string) error              { return nil }

// Mutating handlers must fail with 401, not panic, when reached without a
// session user (e.g. a route wired without the auth guard).
func TestMutationWithoutSessionUserUnauthorized(t *testing.T) {
	h := &CampgroundHandler{
		Campgrounds: &stubCampgrounds{cg: &models.Campground{ID: "cg-1", AuthorID: "u-1"}},
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Delete("/campground/:id", h.Delete)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/campground/cg-1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

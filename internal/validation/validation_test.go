package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-backend/internal/httperr"
	"camp-backend/internal/models"
)

func price(v float64) *float64 {
	return &v
}

func validCampground() models.CampgroundInput {
	return models.CampgroundInput{
		Title:       "Riverside",
		Location:    "X",
		Price:       price(5),
		Description: "d",
		Image:       "i",
	}
}

func TestCampgroundInputValid(t *testing.T) {
	in := validCampground()
	require.NoError(t, Struct(&in))
}

func TestCampgroundInputZeroPriceValid(t *testing.T) {
	in := validCampground()
	in.Price = price(0)
	require.NoError(t, Struct(&in))
}

func TestCampgroundInputMissingFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.CampgroundInput)
	}{
		{"title", func(in *models.CampgroundInput) { in.Title = "" }},
		{"location", func(in *models.CampgroundInput) { in.Location = "" }},
		{"description", func(in *models.CampgroundInput) { in.Description = "" }},
		{"image", func(in *models.CampgroundInput) { in.Image = "" }},
		{"price", func(in *models.CampgroundInput) { in.Price = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			in := validCampground()
			tc.mutate(&in)

			err := Struct(&in)
			require.Error(t, err)

			var appErr *httperr.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, httperr.KindValidation, appErr.Kind)
			assert.Equal(t, 400, appErr.Status)
			assert.Contains(t, appErr.Message, tc.field)
		})
	}
}

func TestCampgroundInputNegativePrice(t *testing.T) {
	in := validCampground()
	in.Price = price(-1)

	err := Struct(&in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestCampgroundInputEmptyTitleCitesTitle(t *testing.T) {
	in := models.CampgroundInput{
		Title:       "",
		Location:    "X",
		Price:       price(5),
		Description: "d",
		Image:       "i",
	}
	err := Struct(&in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	in.Title = "Riverside"
	require.NoError(t, Struct(&in))
}

func TestReviewInputRatingBounds(t *testing.T) {
	for _, rating := range []int{1, 5} {
		in := models.ReviewInput{Text: "great spot", Rating: rating}
		assert.NoError(t, Struct(&in), "rating %d must be accepted", rating)
	}
	for _, rating := range []int{0, -1, 6} {
		in := models.ReviewInput{Text: "great spot", Rating: rating}
		err := Struct(&in)
		require.Error(t, err, "rating %d must be rejected", rating)
		assert.Contains(t, err.Error(), "rating")
	}
}

func TestReviewInputMissingText(t *testing.T) {
	in := models.ReviewInput{Rating: 3}
	err := Struct(&in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
}

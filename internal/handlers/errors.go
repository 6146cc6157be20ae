package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"camp-backend/internal/httperr"
)

// ErrorHandler is the terminal stage every failed request funnels into.
// Errors without a status become 500, errors without a message become the
// generic one; either way the error page is rendered and the failure logged.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Something went wrong"

	var appErr *httperr.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		if appErr.Message != "" {
			message = appErr.Message
		}
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		if fiberErr.Message != "" {
			message = fiberErr.Message
		}
	}

	log.Printf("Error [%d] %s %s: %v", status, c.Method(), c.Path(), err)

	if rErr := c.Status(status).Render("error", fiber.Map{
		"status":      status,
		"message":     message,
		"currentUser": c.Locals("currentUser"),
	}); rErr != nil {
		return c.Status(status).SendString(message)
	}
	return nil
}

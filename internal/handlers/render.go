package handlers

import "github.com/gofiber/fiber/v2"

// render merges the per-request view context (current user, flash
// messages) into the template data.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["currentUser"]; !ok {
		data["currentUser"] = c.Locals("currentUser")
	}
	if _, ok := data["success"]; !ok {
		data["success"] = c.Locals("success")
	}
	if _, ok := data["error"]; !ok {
		data["error"] = c.Locals("error")
	}
	return c.Render(name, data)
}

// Home renders the landing page.
func Home(c *fiber.Ctx) error {
	return render(c, "home", nil)
}

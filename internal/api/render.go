package api

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}
	if _, ok := payload["Flash"]; !ok {
		payload["Flash"] = FlashPayload{}
	}
	payload["CSRFToken"] = ""
	if token, ok := c.Locals("csrf").(string); ok {
		payload["CSRFToken"] = token
	}
	payload["CurrentPath"] = c.Path()
	return payload
}

func (handler *Handler) renderErrorPage(c *fiber.Ctx, code int, message string) error {
	c.Status(code)
	tmpl, ok := handler.templates["error"]
	if !ok {
		return c.SendString(message)
	}
	payload := handler.withTemplateDefaults(c, fiber.Map{
		"Title":   message,
		"Code":    code,
		"Message": message,
	})
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.SendString(message)
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

// HandleError is the app-wide fiber error handler: JSON for /api routes,
// the rendered error page for everything else.
func (handler *Handler) HandleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", c.Method(), c.Path(), err)
	}

	if len(c.Path()) >= 5 && c.Path()[:5] == "/api/" {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}
	return handler.renderErrorPage(c, code, message)
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if len(c.Path()) >= 5 && c.Path()[:5] == "/api/" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return handler.renderErrorPage(c, fiber.StatusNotFound, "Page not found")
}

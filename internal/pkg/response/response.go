package response

import "github.com/gofiber/fiber/v2"

// Response documents the envelope for swagger; handlers build it with the helpers below
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// body builds the standard envelope: success flag, message and named payload keys
func body(success bool, message string, payload fiber.Map) fiber.Map {
	out := fiber.Map{"success": success}
	if message != "" {
		out["message"] = message
	}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

// Success sends a 200 response with the given payload keys
func Success(c *fiber.Ctx, message string, payload fiber.Map) error {
	return c.JSON(body(true, message, payload))
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, payload fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(body(true, message, payload))
}

// List sends a bare JSON array
func List(c *fiber.Ctx, items interface{}) error {
	return c.JSON(items)
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(body(false, message, nil))
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

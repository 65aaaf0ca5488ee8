package handlers

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"lifeline-blood/internal/core/domain"
	"lifeline-blood/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto a status code. Only domain errors carry
// their message to the client; everything else is logged and answered
// with the fallback message.
func fail(c *fiber.Ctx, err error, fallback string) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, derr.Message)
		case errors.Is(err, domain.ErrUnauthenticated):
			return response.Unauthorized(c, derr.Message)
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, derr.Message)
		case errors.Is(err, domain.ErrConflict):
			return response.Conflict(c, derr.Message)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("⏱️ %s %s timed out: %v", c.Method(), c.Path(), err)
		return response.Error(c, fiber.StatusGatewayTimeout, "Request timed out")
	}

	log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	return response.InternalServerError(c, fallback)
}

// flexFloat accepts a JSON number or a numeric string ("62.5"), as form
// based clients send both.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return errors.New("weight must be a number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("weight must be a number")
	}
	*f = flexFloat(v)
	return nil
}

func (f *flexFloat) ptr() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

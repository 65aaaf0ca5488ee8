package handlers

import (
	"fmt"
	"log"

	"lifeline-blood/internal/adapters/http/middleware"
	"lifeline-blood/internal/core/domain"
	"lifeline-blood/internal/core/services"
	"lifeline-blood/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CampHandler handles camp endpoints
type CampHandler struct {
	campService *services.CampService
}

// NewCampHandler creates a new camp handler
func NewCampHandler(campService *services.CampService) *CampHandler {
	return &CampHandler{
		campService: campService,
	}
}

// CampRequest represents the create and update body. Omitted fields are left untouched on update.
type CampRequest struct {
	Name             *string `json:"name"`
	Location         *string `json:"location"`
	Date             *string `json:"date"`
	OrganizerName    *string `json:"organizerName"`
	OrganizerContact *string `json:"organizerContact"`
	ProName          *string `json:"proName"`
	HospitalName     *string `json:"hospitalName"`
}

func (r *CampRequest) input() *services.CampInput {
	return &services.CampInput{
		Name:             r.Name,
		Location:         r.Location,
		Date:             r.Date,
		OrganizerName:    r.OrganizerName,
		OrganizerContact: r.OrganizerContact,
		ProName:          r.ProName,
		HospitalName:     r.HospitalName,
	}
}

// CouponsRequest represents the coupon replacement body
type CouponsRequest struct {
	Coupons []domain.Coupon `json:"coupons"`
}

// ListPublic handles the public camp list used by the registration form
// @Summary List camps (public)
// @Description All camps sorted by date ascending, undated camps last
// @Tags Camps
// @Produce json
// @Success 200 {array} models.Camp
// @Router /camps/public [get]
func (h *CampHandler) ListPublic(c *fiber.Ctx) error {
	camps, err := h.campService.ListPublic(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to list camps")
	}
	return response.List(c, camps)
}

// ListWithCount handles the admin camp list
// @Summary List camps with donor counts
// @Tags Camps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CampWithCount
// @Failure 401 {object} response.Response
// @Router /camps/with-count [get]
func (h *CampHandler) ListWithCount(c *fiber.Ctx) error {
	camps, err := h.campService.ListWithDonorCounts(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to list camps")
	}
	return response.List(c, camps)
}

// Get handles getting one camp
// @Summary Get camp by ID
// @Tags Camps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Success 200 {object} models.CampWithCount
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/{id} [get]
func (h *CampHandler) Get(c *fiber.Ctx) error {
	camp, err := h.campService.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to get camp")
	}
	return c.JSON(camp)
}

// Create handles creating a camp
// @Summary Create camp
// @Tags Camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CampRequest true "Camp data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /camps [post]
func (h *CampHandler) Create(c *fiber.Ctx) error {
	var req CampRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	camp, err := h.campService.Create(c.UserContext(), req.input())
	if err != nil {
		return fail(c, err, "Failed to create camp")
	}

	return response.Created(c, "Camp created successfully", fiber.Map{
		"camp": camp,
	})
}

// Update handles a partial camp update
// @Summary Update camp
// @Tags Camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Param body body CampRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /camps/{id} [put]
func (h *CampHandler) Update(c *fiber.Ctx) error {
	var req CampRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	camp, err := h.campService.Update(c.UserContext(), c.Params("id"), req.input())
	if err != nil {
		return fail(c, err, "Failed to update camp")
	}

	return response.Success(c, "Camp updated successfully", fiber.Map{
		"camp": camp,
	})
}

// Delete handles deleting a camp together with its donors
// @Summary Delete camp
// @Description Deletes the camp and every donor registered to it
// @Tags Camps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/{id} [delete]
func (h *CampHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.campService.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to delete camp")
	}
	log.Printf("🗑️ Camp %s deleted by admin %s with %d donors", c.Params("id"), middleware.AdminID(c), removed)

	return response.Success(c, fmt.Sprintf("Camp and %d donors deleted", removed), fiber.Map{
		"removedDonors": removed,
	})
}

// UpdateCoupons handles replacing a camp's coupons
// @Summary Replace camp coupons
// @Tags Camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Param body body CouponsRequest true "Coupons"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/{id}/coupons [put]
func (h *CampHandler) UpdateCoupons(c *fiber.Ctx) error {
	var req CouponsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	camp, err := h.campService.UpdateCoupons(c.UserContext(), c.Params("id"), req.Coupons)
	if err != nil {
		return fail(c, err, "Failed to update coupons")
	}

	return response.Success(c, "Coupons updated successfully", fiber.Map{
		"camp": camp,
	})
}

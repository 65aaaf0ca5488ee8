package handlers

import (
	"log"

	"lifeline-blood/internal/adapters/http/middleware"
	"lifeline-blood/internal/core/services"
	"lifeline-blood/internal/pkg/pagination"
	"lifeline-blood/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonorHandler handles donor endpoints
type DonorHandler struct {
	donorService *services.DonorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
	}
}

// DonorRequest represents the registration and update body.
// A client-sent age is dropped by the decoder; the server derives it from dob.
type DonorRequest struct {
	Name       *string    `json:"name"`
	DOB        *string    `json:"dob"`
	Weight     *flexFloat `json:"weight" swaggertype:"number"`
	BloodGroup *string    `json:"bloodGroup"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Address    *string    `json:"address"`
	Camp       *string    `json:"camp"`
	Remark     *string    `json:"remark"`
}

func (r *DonorRequest) input() *services.DonorInput {
	return &services.DonorInput{
		Name:       r.Name,
		DOB:        r.DOB,
		Weight:     r.Weight.ptr(),
		BloodGroup: r.BloodGroup,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		Camp:       r.Camp,
		Remark:     r.Remark,
	}
}

// Register handles public donor registration
// @Summary Register donor
// @Description Public registration. camp may be a camp id or a camp name (matched ignoring case).
// @Tags Donors
// @Accept json
// @Produce json
// @Param body body DonorRequest true "Donor data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donors [post]
func (h *DonorHandler) Register(c *fiber.Ctx) error {
	var req DonorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donor, err := h.donorService.Register(c.UserContext(), req.input())
	if err != nil {
		return fail(c, err, "Failed to register donor")
	}

	return response.Created(c, "Donor registered successfully", fiber.Map{
		"donor": donor,
	})
}

// List handles listing every donor with camp details
// @Summary List donors
// @Description Newest first. With page or limit set the result is paginated.
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {array} models.Donor
// @Failure 401 {object} response.Response
// @Router /donors [get]
func (h *DonorHandler) List(c *fiber.Ctx) error {
	if !pagination.Requested(c) {
		donors, _, err := h.donorService.ListAll(c.UserContext(), 0, 0)
		if err != nil {
			return fail(c, err, "Failed to list donors")
		}
		return response.List(c, donors)
	}

	params := pagination.GetParams(c)
	donors, total, err := h.donorService.ListAll(c.UserContext(), params.Offset, params.Limit)
	if err != nil {
		return fail(c, err, "Failed to list donors")
	}
	return c.JSON(pagination.NewResponse(donors, params, total))
}

// ListByCamp handles listing donors of one camp
// @Summary List donors by camp
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param campId path string true "Camp ID"
// @Success 200 {array} models.Donor
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /donors/camp/{campId} [get]
func (h *DonorHandler) ListByCamp(c *fiber.Ctx) error {
	donors, err := h.donorService.ListByCamp(c.UserContext(), c.Params("campId"))
	if err != nil {
		return fail(c, err, "Failed to list donors")
	}
	return response.List(c, donors)
}

// Get handles getting one donor
// @Summary Get donor by ID
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donor ID"
// @Success 200 {object} models.Donor
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [get]
func (h *DonorHandler) Get(c *fiber.Ctx) error {
	donor, err := h.donorService.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to get donor")
	}
	return c.JSON(donor)
}

// Update handles a partial donor update
// @Summary Update donor
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donor ID"
// @Param body body DonorRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [put]
func (h *DonorHandler) Update(c *fiber.Ctx) error {
	var req DonorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donor, err := h.donorService.Update(c.UserContext(), c.Params("id"), req.input())
	if err != nil {
		return fail(c, err, "Failed to update donor")
	}

	return response.Success(c, "Donor updated successfully", fiber.Map{
		"donor": donor,
	})
}

// Delete handles deleting a donor
// @Summary Delete donor
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [delete]
func (h *DonorHandler) Delete(c *fiber.Ctx) error {
	if err := h.donorService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Failed to delete donor")
	}
	log.Printf("🗑️ Donor %s deleted by admin %s", c.Params("id"), middleware.AdminID(c))
	return response.Success(c, "Donor deleted successfully", nil)
}

package handlers

import (
	"lifeline-blood/internal/core/services"
	"lifeline-blood/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ShareHandler handles share links and QR codes for camps and donors
type ShareHandler struct {
	shareService *services.ShareService
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// CampLink handles the camp registration link
// @Summary Camp registration link
// @Tags Share
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/{id}/share [get]
func (h *ShareHandler) CampLink(c *fiber.Ctx) error {
	link, err := h.shareService.RegistrationLink(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to build share link")
	}

	return response.Success(c, "", fiber.Map{
		"link": link,
	})
}

// CampQRCode handles the registration QR code of a camp
// @Summary Camp registration QR code
// @Tags Share
// @Produce png
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/{id}/qrcode [get]
func (h *ShareHandler) CampQRCode(c *fiber.Ctx) error {
	link, err := h.shareService.RegistrationLink(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to build share link")
	}
	return h.sendQRCode(c, link)
}

// DonorQRCode handles the QR code of a donor card
// @Summary Donor QR code
// @Tags Share
// @Produce png
// @Security BearerAuth
// @Param id path string true "Donor ID"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id}/qrcode [get]
func (h *ShareHandler) DonorQRCode(c *fiber.Ctx) error {
	link, err := h.shareService.DonorLink(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to build share link")
	}
	return h.sendQRCode(c, link)
}

func (h *ShareHandler) sendQRCode(c *fiber.Ctx, link *services.ShareLink) error {
	png, err := h.shareService.QRCode(link.URL, c.QueryInt("size", 0))
	if err != nil {
		return fail(c, err, "Failed to generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="qrcode.png"`)
	return c.Send(png)
}

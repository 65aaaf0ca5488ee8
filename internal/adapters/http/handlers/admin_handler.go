package handlers

import (
	"log"

	"lifeline-blood/internal/adapters/http/middleware"
	"lifeline-blood/internal/core/services"
	"lifeline-blood/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin authentication endpoints
type AdminHandler struct {
	adminService     *services.AdminService
	reconcileService *services.ReconcileService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService, reconcileService *services.ReconcileService) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		reconcileService: reconcileService,
	}
}

// CredentialsRequest represents the login and register request body
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticate an admin and return a session token
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.adminService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err, "Failed to login")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"admin": result.Admin,
	})
}

// Register handles creating another admin
// @Summary Register admin
// @Description Create an additional admin account (requires an existing admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CredentialsRequest true "New admin credentials"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/register [post]
func (h *AdminHandler) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	admin, err := h.adminService.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err, "Failed to register admin")
	}
	log.Printf("👤 Admin %s registered by admin %s", admin.Email, middleware.AdminID(c))

	return response.Created(c, "Admin registered successfully", fiber.Map{
		"admin": admin,
	})
}

// Reconcile removes donors whose camp no longer exists
// @Summary Reconcile orphaned donors
// @Description Delete donors that reference a camp which no longer exists
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *fiber.Ctx) error {
	removed, err := h.reconcileService.Run(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to reconcile donors")
	}
	log.Printf("🧹 Manual reconcile by admin %s removed %d donors", middleware.AdminID(c), removed)

	return response.Success(c, "Reconcile complete", fiber.Map{
		"removed": removed,
	})
}

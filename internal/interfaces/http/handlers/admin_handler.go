package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/interfaces/http/response"
	"sparkier.backend/internal/usecases"
)

// AdminHandler handles back-office endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListUsers lists accounts
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := paginationQuery(c)
	users, meta, err := h.adminUsecase.ListUsers(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, users, meta)
}

// ListProfiles lists profiles, optionally filtered by role
// GET /api/v1/admin/profiles
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	page, limit := paginationQuery(c)
	profiles, meta, err := h.adminUsecase.ListProfilesByRole(
		c.Request.Context(), c.Query("role"), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, profiles, meta)
}

// ListClients lists client companies
// GET /api/v1/admin/clients
func (h *AdminHandler) ListClients(c *gin.Context) {
	page, limit := paginationQuery(c)
	clients, meta, err := h.adminUsecase.ListClients(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, clients, meta)
}

// UpdateRoles replaces a profile's role set
// PUT /api/v1/admin/profiles/:id/roles
func (h *AdminHandler) UpdateRoles(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile id"))
		return
	}

	var input entities.UpdateRolesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.UpdateRoles(c.Request.Context(), profileID, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Roles updated"})
}

// DeleteUser soft deletes an account and its profile
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}

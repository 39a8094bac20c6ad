package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/interfaces/http/middleware"
	"sparkier.backend/internal/interfaces/http/response"
	"sparkier.backend/internal/usecases"
)

// ConsultantHandler handles consultant profile endpoints
type ConsultantHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewConsultantHandler creates a new consultant handler
func NewConsultantHandler(profileUsecase *usecases.ProfileUsecase) *ConsultantHandler {
	return &ConsultantHandler{profileUsecase: profileUsecase}
}

// List lists the public consultant directory
// GET /api/v1/consultants
func (h *ConsultantHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)
	profiles, meta, err := h.profileUsecase.ListConsultants(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, profiles, meta)
}

// GetBySlug returns the public consultant page: profile, reviews,
// missions and sparks
// GET /api/v1/consultants/:slug
func (h *ConsultantHandler) GetBySlug(c *gin.Context) {
	view, err := h.profileUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// GetMyProfile returns the authenticated user's profile
// GET /api/v1/consultants/me
func (h *ConsultantHandler) GetMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	profile, err := h.profileUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateMyProfile updates the profile fields only
// PUT /api/v1/consultants/me
func (h *ConsultantHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// SaveMyProfile is the full consultant-edit save: profile fields plus
// the complete desired review and mission sets
// PUT /api/v1/consultants/me/full
func (h *ConsultantHandler) SaveMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.SaveProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func paginationQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}

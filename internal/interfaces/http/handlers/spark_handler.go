package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/interfaces/http/middleware"
	"sparkier.backend/internal/interfaces/http/response"
	"sparkier.backend/internal/usecases"
)

// SparkHandler handles spark catalog endpoints
type SparkHandler struct {
	sparkUsecase *usecases.SparkUsecase
}

// NewSparkHandler creates a new spark handler
func NewSparkHandler(sparkUsecase *usecases.SparkUsecase) *SparkHandler {
	return &SparkHandler{sparkUsecase: sparkUsecase}
}

// List lists the public spark catalog
// GET /api/v1/sparks
func (h *SparkHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)
	sparks, meta, err := h.sparkUsecase.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, sparks, meta)
}

// GetByURL returns one spark by its URL slug
// GET /api/v1/sparks/:url
func (h *SparkHandler) GetByURL(c *gin.Context) {
	spark, err := h.sparkUsecase.GetByURL(c.Request.Context(), c.Param("url"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, spark)
}

// ListMine lists the authenticated consultant's sparks
// GET /api/v1/sparks/mine
func (h *SparkHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	sparks, err := h.sparkUsecase.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sparks)
}

// Create publishes a new spark
// POST /api/v1/sparks
func (h *SparkHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CreateSparkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	spark, err := h.sparkUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, spark)
}

// Update rewrites a spark owned by the authenticated consultant
// PUT /api/v1/sparks/:id
func (h *SparkHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	sparkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid spark id"))
		return
	}

	var input entities.UpdateSparkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	spark, err := h.sparkUsecase.Update(c.Request.Context(), userID, sparkID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, spark)
}

// Delete soft deletes a spark owned by the authenticated consultant
// DELETE /api/v1/sparks/:id
func (h *SparkHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	sparkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid spark id"))
		return
	}

	if err := h.sparkUsecase.Delete(c.Request.Context(), userID, sparkID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Spark deleted"})
}

// Package handler provides HTTP handlers for assignment endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/reviewhub/reviewcycles/internal/assignment/service"
	cycleModel "github.com/reviewhub/reviewcycles/internal/cycle/model"
	cycleRepository "github.com/reviewhub/reviewcycles/internal/cycle/repository"
)

// Handler handles HTTP requests for assignment endpoints.
type Handler struct {
	service   service.Service
	cycleRepo cycleRepository.Repository
	logger    *zap.SugaredLogger
}

// New creates a new assignment handler instance.
func New(svc service.Service, cycleRepo cycleRepository.Repository, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, cycleRepo: cycleRepo, logger: logger}
}

// ListAssignments handles GET /cycles/:cycleId/assignments request.
// @Summary List a cycle's assignments with completion status
// @Tags Assignments
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} assignmentModel.AssignmentsResponse "Assignments"
// @Failure 404 {object} ErrorResponse "Cycle not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId}/assignments [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListAssignments(c *gin.Context) {
	cycleID := c.Param("cycleId")

	if _, err := h.cycleRepo.GetByID(c.Request.Context(), cycleID); err != nil {
		if errors.Is(err, cycleModel.ErrCycleNotFound) {
			notFoundResponse(c, "cycle not found")
			return
		}
		h.logger.Errorw("error loading cycle", "cycle_id", cycleID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	resp, err := h.service.ListByCycle(c.Request.Context(), cycleID)
	if err != nil {
		h.logger.Errorw("error listing assignments", "cycle_id", cycleID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

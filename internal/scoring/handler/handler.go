// Package handler provides HTTP handlers for calculated score endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cycleModel "github.com/reviewhub/reviewcycles/internal/cycle/model"
	"github.com/reviewhub/reviewcycles/internal/scoring/model"
	"github.com/reviewhub/reviewcycles/internal/scoring/service"
)

// Handler handles HTTP requests for calculated score endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new scoring handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RecomputeScores handles POST /cycles/:cycleId/scores/recompute request.
// @Summary Recompute scores for a finished cycle
// @Tags Scores
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} model.RunSummary "Run summary"
// @Failure 404 {object} ErrorResponse "Cycle not found"
// @Failure 409 {object} ErrorResponse "Cycle not finished (CYCLE_NOT_SCORABLE)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId}/scores/recompute [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RecomputeScores(c *gin.Context) {
	cycleID := c.Param("cycleId")

	summary, err := h.service.Recompute(c.Request.Context(), cycleID)
	if err != nil {
		if errors.Is(err, cycleModel.ErrCycleNotFound) {
			notFoundResponse(c, "cycle not found")
			return
		}
		if errors.Is(err, model.ErrCycleNotScorable) {
			errorResponse(c, "CYCLE_NOT_SCORABLE", "cycle must be COMPLETED or PUBLISHED", http.StatusConflict)
			return
		}
		h.logger.Errorw("error recomputing scores", "cycle_id", cycleID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListCycleScores handles GET /cycles/:cycleId/scores request.
// @Summary List all calculated scores for a cycle
// @Tags Scores
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} model.ScoresResponse "Scores"
// @Failure 404 {object} ErrorResponse "Cycle not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId}/scores [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListCycleScores(c *gin.Context) {
	cycleID := c.Param("cycleId")

	resp, err := h.service.ListByCycle(c.Request.Context(), cycleID)
	if err != nil {
		if errors.Is(err, cycleModel.ErrCycleNotFound) {
			notFoundResponse(c, "cycle not found")
			return
		}
		h.logger.Errorw("error listing cycle scores", "cycle_id", cycleID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEmployeeCycleScore handles GET /cycles/:cycleId/scores/:employeeId request.
// @Summary Get one employee's calculated score in a cycle
// @Tags Scores
// @Produce json
// @Param cycleId path string true "Cycle ID"
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} model.ScoreResponse "Score"
// @Failure 404 {object} ErrorResponse "Score not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cycles/{cycleId}/scores/{employeeId} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetEmployeeCycleScore(c *gin.Context) {
	cycleID := c.Param("cycleId")
	employeeID := c.Param("employeeId")

	resp, err := h.service.GetScore(c.Request.Context(), cycleID, employeeID)
	if err != nil {
		if errors.Is(err, model.ErrScoreNotFound) {
			notFoundResponse(c, "score not found")
			return
		}
		h.logger.Errorw("error getting score",
			"cycle_id", cycleID, "employee_id", employeeID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListEmployeeScores handles GET /employees/:employeeId/scores request.
// @Summary List an employee's scores across cycles
// @Tags Scores
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} model.ScoresResponse "Scores, newest first"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees/{employeeId}/scores [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListEmployeeScores(c *gin.Context) {
	employeeID := c.Param("employeeId")

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.logger.Errorw("error listing employee scores", "employee_id", employeeID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Package router provides scoring module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/reviewhub/reviewcycles/internal/scoring/handler"
	"github.com/reviewhub/reviewcycles/internal/scoring/service"
)

// RegisterRoutes registers scoring module routes. The service is built by the
// caller because it is shared with the cycle module's orchestrator wiring.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/cycles/:cycleId/scores/recompute", h.RecomputeScores)
	r.GET("/cycles/:cycleId/scores", h.ListCycleScores)
	r.GET("/cycles/:cycleId/scores/:employeeId", h.GetEmployeeCycleScore)
	r.GET("/employees/:employeeId/scores", h.ListEmployeeScores)
}

// Package router provides cycle module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/reviewhub/reviewcycles/internal/cycle/handler"
	"github.com/reviewhub/reviewcycles/internal/cycle/service"
)

// RegisterRoutes registers cycle module routes. The service is built by the
// caller because it is wired to the scoring orchestrator.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/cycles", h.CreateCycle)
	r.GET("/cycles", h.ListCycles)
	r.POST("/cycles/sweep", h.SweepCycles)
	r.GET("/cycles/:cycleId", h.GetCycle)
	r.POST("/cycles/:cycleId/activate", h.ActivateCycle)
	r.POST("/cycles/:cycleId/publish", h.PublishCycle)
}

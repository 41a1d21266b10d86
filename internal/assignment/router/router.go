// Package router provides assignment module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/reviewhub/reviewcycles/internal/assignment/handler"
	"github.com/reviewhub/reviewcycles/internal/assignment/repository"
	"github.com/reviewhub/reviewcycles/internal/assignment/service"
	cycleRepository "github.com/reviewhub/reviewcycles/internal/cycle/repository"
)

// RegisterRoutes registers assignment module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, cycleRepository.New(db), logger)

	r.GET("/cycles/:cycleId/assignments", h.ListAssignments)
}

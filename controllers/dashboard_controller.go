package controllers

import (
	"net/http"

	"gym-backend/services"
	"gym-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GET /api/dashboard
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.Service.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
)

// DashboardController serves the aggregated dashboard snapshot.
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Summary handles GET /api/dashboard/summary.
func (ctrl *DashboardController) Summary(c *gin.Context) {
	summary, err := ctrl.dashboardService.Summary(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}

	dashboard := rg.Group("/dashboard")
	dashboard.GET("/stats", h.getStats)
	dashboard.GET("/recent-investments", h.recentInvestments)
	dashboard.GET("/pending-requests", h.pendingRequests)
}

// getStats godoc
// @Summary Dashboard figures
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute dashboard stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// recentInvestments godoc
// @Summary Latest credits
// @Tags dashboard
// @Produce  json
// @Param   limit query int false "Number of entries" default(10)
// @Success 200 {array} dto.RecentInvestmentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list recent investments"
// @Security BearerAuth
// @Router /dashboard/recent-investments [get]
func (h *dashboardHandler) recentInvestments(c *gin.Context) {
	var params dto.DashboardListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.dashboardService.ListRecentInvestments(c.Request.Context(), params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to list recent investments")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecentInvestmentResponses(items))
}

// pendingRequests godoc
// @Summary Pending deposit and withdrawal requests
// @Tags dashboard
// @Produce  json
// @Param   limit query int false "Number of entries" default(10)
// @Success 200 {array} dto.FundRequestResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list pending requests"
// @Security BearerAuth
// @Router /dashboard/pending-requests [get]
func (h *dashboardHandler) pendingRequests(c *gin.Context) {
	var params dto.DashboardListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.dashboardService.ListPendingRequests(c.Request.Context(), params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to list pending requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundRequestResponses(requests))
}

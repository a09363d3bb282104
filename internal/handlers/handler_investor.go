package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/core/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/SscSPs/investor_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investorHandler handles HTTP requests related to investors.
type investorHandler struct {
	investorService portssvc.InvestorSvcFacade
	ledgerService   portssvc.LedgerReaderSvc
}

func newInvestorHandler(is portssvc.InvestorSvcFacade, ls portssvc.LedgerReaderSvc) *investorHandler {
	return &investorHandler{investorService: is, ledgerService: ls}
}

// registerInvestorRoutes registers investor CRUD routes and returns the per-investor group.
func registerInvestorRoutes(rg *gin.RouterGroup, investorService portssvc.InvestorSvcFacade, ledgerService portssvc.LedgerReaderSvc) *gin.RouterGroup {
	h := newInvestorHandler(investorService, ledgerService)

	investors := rg.Group("/investors")
	{
		investors.POST("", h.createInvestor)
		investors.GET("", h.listInvestors)
		investors.GET("/stats", h.getStats)
	}

	investor := investors.Group("/:investorID")
	{
		investor.GET("", h.getInvestor)
		investor.PUT("", h.updateInvestor)
		investor.DELETE("", h.deleteInvestor)
	}
	return investor
}

// createInvestor godoc
// @Summary Register an investor
// @Description Creates an investor. A positive initialInvestment is booked as the first credit.
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   investor body dto.CreateInvestorRequest true "Investor details"
// @Success 201 {object} dto.CreateInvestorResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create investor"
// @Security BearerAuth
// @Router /investors [post]
func (h *investorHandler) createInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	investor, err := h.investorService.CreateInvestor(c.Request.Context(), req, userID)
	if err != nil {
		if investor != nil && errors.Is(err, services.ErrInitialCreditFailed) {
			logger.Warn("Investor created without initial investment", slog.String("investor_id", investor.InvestorID))
			c.JSON(http.StatusCreated, dto.CreateInvestorResponse{
				Investor: dto.ToInvestorResponse(investor),
				Warning:  services.ErrInitialCreditFailed.Error(),
			})
			return
		}
		respondWithError(c, err, "Failed to create investor")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateInvestorResponse{Investor: dto.ToInvestorResponse(investor)})
}

// listInvestors godoc
// @Summary List investors
// @Description Lists non-deleted investors, newest first
// @Tags investors
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListInvestorsResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investors"
// @Security BearerAuth
// @Router /investors [get]
func (h *investorHandler) listInvestors(c *gin.Context) {
	var params dto.ListInvestorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	investors, err := h.investorService.ListInvestors(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list investors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvestorsResponse(investors, params))
}

// getStats godoc
// @Summary Investor statistics
// @Tags investors
// @Produce  json
// @Success 200 {object} domain.InvestorStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute investor stats"
// @Security BearerAuth
// @Router /investors/stats [get]
func (h *investorHandler) getStats(c *gin.Context) {
	stats, err := h.investorService.GetStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute investor stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getInvestor godoc
// @Summary Get an investor
// @Description Returns the investor with its transactions in statement order
// @Tags investors
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Success 200 {object} dto.InvestorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to retrieve investor"
// @Security BearerAuth
// @Router /investors/{investorID} [get]
func (h *investorHandler) getInvestor(c *gin.Context) {
	investorID := c.Param("investorID")

	investor, err := h.investorService.GetInvestorByID(c.Request.Context(), investorID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve investor")
		return
	}
	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), investorID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve investor transactions")
		return
	}

	resp := dto.ToInvestorResponse(investor)
	resp.Transactions = dto.ToTransactionResponses(txns)
	c.JSON(http.StatusOK, resp)
}

// updateInvestor godoc
// @Summary Edit an investor profile
// @Description Updates profile fields. The invested total is derived from the ledger and cannot be edited.
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Param   investor body dto.UpdateInvestorRequest true "Fields to update"
// @Success 200 {object} dto.InvestorResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to update investor"
// @Security BearerAuth
// @Router /investors/{investorID} [put]
func (h *investorHandler) updateInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateInvestorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvestor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	investor, err := h.investorService.UpdateInvestor(c.Request.Context(), c.Param("investorID"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update investor")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestorResponse(investor))
}

// deleteInvestor godoc
// @Summary Delete an investor
// @Description Soft deletes an investor. The ledger is retained.
// @Tags investors
// @Param   investorID path string true "Investor ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to delete investor"
// @Security BearerAuth
// @Router /investors/{investorID} [delete]
func (h *investorHandler) deleteInvestor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.investorService.DeleteInvestor(c.Request.Context(), c.Param("investorID"), userID); err != nil {
		respondWithError(c, err, "Failed to delete investor")
		return
	}
	c.Status(http.StatusNoContent)
}

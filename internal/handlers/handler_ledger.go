package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/SscSPs/investor_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles transaction authoring and ledger reads for one investor.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerLedgerRoutes registers ledger routes on the per-investor group.
func registerLedgerRoutes(investor *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	investor.POST("/credit", h.credit)
	investor.POST("/debit", h.debit)
	investor.POST("/reconcile", h.reconcile)
	investor.GET("/balance", h.getBalance)
	investor.GET("/statement", h.getStatement)
}

type authorFunc func(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error)

// credit godoc
// @Summary Credit an investor
// @Description Appends a credit (deposit) to the investor's ledger
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Param   transaction body dto.CreateTransactionRequest true "Amount and optional notes"
// @Success 201 {object} dto.AppendTransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to record credit"
// @Security BearerAuth
// @Router /investors/{investorID}/credit [post]
func (h *ledgerHandler) credit(c *gin.Context) {
	h.author(c, h.ledgerService.Credit, "Failed to record credit")
}

// debit godoc
// @Summary Debit an investor
// @Description Appends a debit (withdrawal). Rejected when it exceeds the net balance.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Param   transaction body dto.CreateTransactionRequest true "Amount and optional notes"
// @Success 201 {object} dto.AppendTransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Failure 500 {object} map[string]string "Failed to record debit"
// @Security BearerAuth
// @Router /investors/{investorID}/debit [post]
func (h *ledgerHandler) debit(c *gin.Context) {
	h.author(c, h.ledgerService.Debit, "Failed to record debit")
}

func (h *ledgerHandler) author(c *gin.Context, fn authorFunc, failure string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investorID := c.Param("investorID")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("investor_id", investorID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), investorID, req, userID)
	if err != nil {
		respondWithError(c, err, failure)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAppendTransactionResponse(result))
}

// getBalance godoc
// @Summary Investor balance
// @Tags ledger
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /investors/{investorID}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	investorID := c.Param("investorID")
	balance, err := h.ledgerService.GetBalance(c.Request.Context(), investorID)
	if err != nil {
		respondWithError(c, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(investorID, *balance))
}

// getStatement godoc
// @Summary Investor statement
// @Description Chronological statement with credit and debit columns and formatted totals
// @Tags ledger
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Success 200 {object} domain.Statement
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /investors/{investorID}/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	stmt, err := h.ledgerService.GetStatement(c.Request.Context(), c.Param("investorID"))
	if err != nil {
		respondWithError(c, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, stmt)
}

// reconcile godoc
// @Summary Reconcile the invested total
// @Description Re-derives the investor's cached invested total from the ledger
// @Tags ledger
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to reconcile investor"
// @Security BearerAuth
// @Router /investors/{investorID}/reconcile [post]
func (h *ledgerHandler) reconcile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	investorID := c.Param("investorID")
	balance, err := h.ledgerService.Reconcile(c.Request.Context(), investorID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to reconcile investor")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(investorID, *balance))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/SscSPs/investor_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundRequestHandler serves one review queue; deposits and withdrawals each get their own.
type fundRequestHandler struct {
	requestService portssvc.FundRequestSvcFacade
	requestType    domain.FundRequestType
}

// registerFundRequestRoutes registers the deposit and withdrawal queues.
func registerFundRequestRoutes(rg *gin.RouterGroup, requestService portssvc.FundRequestSvcFacade) {
	for path, typ := range map[string]domain.FundRequestType{
		"/deposits":    domain.DepositRequest,
		"/withdrawals": domain.WithdrawalRequest,
	} {
		h := &fundRequestHandler{requestService: requestService, requestType: typ}

		queue := rg.Group(path)
		queue.POST("", h.create)
		queue.GET("", h.list)
		queue.GET("/:requestID", h.get)
		queue.PATCH("/:requestID/approve", h.approve)
		queue.PATCH("/:requestID/reject", h.reject)
	}
}

// create godoc
// @Summary Queue a deposit or withdrawal request
// @Tags fund-requests
// @Accept  json
// @Produce  json
// @Param   kind path string true "Request queue" Enums(deposits, withdrawals)
// @Param   request body dto.CreateFundRequestRequest true "Investor, amount and optional notes"
// @Success 201 {object} dto.FundRequestResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investor not found"
// @Failure 500 {object} map[string]string "Failed to queue request"
// @Security BearerAuth
// @Router /{kind} [post]
func (h *fundRequestHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind fund request", slog.String("type", string(h.requestType)), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	request, err := h.requestService.CreateFundRequest(c.Request.Context(), h.requestType, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to queue request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFundRequestResponse(request))
}

// list godoc
// @Summary List deposit or withdrawal requests
// @Tags fund-requests
// @Produce  json
// @Param   kind path string true "Request queue" Enums(deposits, withdrawals)
// @Param   status query string false "pending, processing, approved or rejected"
// @Param   investorID query string false "Only this investor's requests"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListFundRequestsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list requests"
// @Security BearerAuth
// @Router /{kind} [get]
func (h *fundRequestHandler) list(c *gin.Context) {
	var params dto.ListFundRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.requestService.ListFundRequests(c.Request.Context(), h.requestType, params)
	if err != nil {
		respondWithError(c, err, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, dto.ListFundRequestsResponse{
		Requests: dto.ToFundRequestResponses(requests),
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// get godoc
// @Summary Get a deposit or withdrawal request
// @Tags fund-requests
// @Produce  json
// @Param   kind path string true "Request queue" Enums(deposits, withdrawals)
// @Param   requestID path string true "Request ID"
// @Success 200 {object} dto.FundRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to get request"
// @Security BearerAuth
// @Router /{kind}/{requestID} [get]
func (h *fundRequestHandler) get(c *gin.Context) {
	request, err := h.requestService.GetFundRequest(c.Request.Context(), h.requestType, c.Param("requestID"))
	if err != nil {
		respondWithError(c, err, "Failed to get request")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundRequestResponse(request))
}

// approve godoc
// @Summary Approve a request
// @Description Books the request as a ledger credit or debit. A rejected booking leaves it pending.
// @Tags fund-requests
// @Produce  json
// @Param   kind path string true "Request queue" Enums(deposits, withdrawals)
// @Param   requestID path string true "Request ID"
// @Success 200 {object} dto.FundRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request already reviewed"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Failure 500 {object} map[string]string "Failed to approve request"
// @Security BearerAuth
// @Router /{kind}/{requestID}/approve [patch]
func (h *fundRequestHandler) approve(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	request, err := h.requestService.ApproveFundRequest(c.Request.Context(), h.requestType, c.Param("requestID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to approve request")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundRequestResponse(request))
}

// reject godoc
// @Summary Reject a request
// @Tags fund-requests
// @Accept  json
// @Produce  json
// @Param   kind path string true "Request queue" Enums(deposits, withdrawals)
// @Param   requestID path string true "Request ID"
// @Param   rejection body dto.RejectFundRequestRequest false "Optional reason"
// @Success 200 {object} dto.FundRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request already reviewed"
// @Failure 500 {object} map[string]string "Failed to reject request"
// @Security BearerAuth
// @Router /{kind}/{requestID}/reject [patch]
func (h *fundRequestHandler) reject(c *gin.Context) {
	var req dto.RejectFundRequestRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	request, err := h.requestService.RejectFundRequest(c.Request.Context(), h.requestType, c.Param("requestID"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to reject request")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundRequestResponse(request))
}

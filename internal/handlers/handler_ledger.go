package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/SscSPs/share_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests that move shares.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger routes. Everything here is admin only.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger", middleware.RequireAdmin())
	{
		ledger.POST("/issue", h.issueShares)
		ledger.POST("/transfers", h.directTransfer)
		ledger.PUT("/:taxID/shares", h.setShareCount)
		ledger.GET("/transactions", h.listTransactions)
	}
}

// issueShares godoc
// @Summary Issue shares
// @Description Credits newly issued shares to a holder and records the issuance.
// @Tags ledger
// @Accept json
// @Produce json
// @Param issuance body dto.IssueSharesRequest true "Issuance details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/issue [post]
func (h *ledgerHandler) issueShares(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.IssueSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.IssueShares(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to issue shares")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// directTransfer godoc
// @Summary Transfer shares directly
// @Description Moves shares between two holders immediately, outside the request workflow.
// @Tags ledger
// @Accept json
// @Produce json
// @Param transfer body dto.DirectTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Seller balance too low"
// @Security BearerAuth
// @Router /ledger/transfers [post]
func (h *ledgerHandler) directTransfer(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.DirectTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.DirectTransfer(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to transfer shares")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// setShareCount godoc
// @Summary Set a holder's share count
// @Description Overwrites one balance to an absolute value.
// @Tags ledger
// @Accept json
// @Produce json
// @Param taxID path string true "Tax ID"
// @Param shares body dto.SetShareCountRequest true "New absolute share count"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/{taxID}/shares [put]
func (h *ledgerHandler) setShareCount(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.SetShareCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledgerService.SetShareCount(c.Request.Context(), principal, c.Param("taxID"), req); err != nil {
		respondError(c, err, "Failed to set share count")
		return
	}
	c.Status(http.StatusNoContent)
}

// listTransactions godoc
// @Summary List committed transactions
// @Description Pages through the visible ledger history, newest first.
// @Tags ledger
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	var params struct {
		Limit     int    `form:"limit,default=20"`
		NextToken string `form:"nextToken"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	txns, nextToken, err := h.ledgerService.ListTransactions(c.Request.Context(), params.Limit, token)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	out := ""
	if nextToken != nil {
		out = *nextToken
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, out))
}

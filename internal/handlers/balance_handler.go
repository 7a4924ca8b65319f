package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/models"
	"github.com/pukassein/pukatracker/internal/pagination"
	"github.com/pukassein/pukatracker/internal/services"
)

// BalanceHandler handles account balance and currency exchange requests.
type BalanceHandler struct {
	balanceService     services.BalanceServicer
	transactionService services.TransactionServicer
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceService services.BalanceServicer, transactionService services.TransactionServicer) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService, transactionService: transactionService}
}

// UpdateBalancesRequest represents the request payload for overwriting balances
type UpdateBalancesRequest struct {
	Pyg *float64 `json:"pyg" binding:"required,min=0"`
	Brl *float64 `json:"brl" binding:"required,min=0"`
}

// ExchangeRequest represents the request payload for a currency exchange
type ExchangeRequest struct {
	PygSold     float64 `json:"pyg_sold" binding:"required,gt=0"`
	BrlReceived float64 `json:"brl_received" binding:"required,gt=0"`
}

// GetBalances handles the retrieval of the current account balances
// @Summary     Get account balances
// @Description Get the current PYG and BRL account balances
// @Tags        balances
// @Accept      json
// @Produce     json
// @Success     200 {object} models.AccountBalances "Current balances"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances [get]
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	balances, err := h.balanceService.GetBalances()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

// UpdateBalances handles manual balance corrections
// @Summary     Update account balances
// @Description Overwrite the PYG and BRL account balances. Negative values are rejected.
// @Tags        balances
// @Accept      json
// @Produce     json
// @Param       request body UpdateBalancesRequest true "New balance values"
// @Success     200 {object} models.AccountBalances "Updated balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances [put]
func (h *BalanceHandler) UpdateBalances(c *gin.Context) {
	var req UpdateBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balances, err := h.balanceService.UpdateBalances(*req.Pyg, *req.Brl)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

// Exchange handles a PYG-to-BRL currency exchange
// @Summary     Exchange currency
// @Description Sell PYG for BRL, debiting the PYG balance, crediting the BRL balance, and recording an exchange transaction
// @Tags        balances
// @Accept      json
// @Produce     json
// @Param       request body ExchangeRequest true "Exchange amounts"
// @Success     200 {object} services.ExchangeResult "Updated balances and exchange transaction"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /exchange [post]
func (h *BalanceHandler) Exchange(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.balanceService.Exchange(req.PygSold, req.BrlReceived)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExchangeHistory handles the retrieval of past exchange transactions
// @Summary     List exchange history
// @Description Get a paginated list of recorded currency exchange transactions, newest first
// @Tags        balances
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Exchange transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /exchange [get]
func (h *BalanceHandler) GetExchangeHistory(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	exchangeType := models.TransactionTypeExchange
	result, err := h.transactionService.ListTransactions(page, services.TransactionFilter{Type: &exchangeType})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/ledger"
	"github.com/pukassein/pukatracker/internal/models"
	"github.com/pukassein/pukatracker/internal/services"
)

// RecurringHandler handles recurring payment requests.
type RecurringHandler struct {
	recurringService services.RecurringServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurringPaymentRequest represents the request payload for creating a recurring payment
type CreateRecurringPaymentRequest struct {
	Name          string               `json:"name" binding:"required,max=100"`
	Amount        float64              `json:"amount" binding:"required,gt=0"`
	Category      models.Category      `json:"category" binding:"required,category"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,payment_method"`
	BillingCycle  models.BillingCycle  `json:"billing_cycle" binding:"required,billing_cycle"`
	StartDate     *string              `json:"start_date"`
	Icon          string               `json:"icon" binding:"max=50"`
}

// MarkPaidRequest represents the request payload for marking a month paid
type MarkPaidRequest struct {
	MonthKey      string                `json:"month_key" binding:"required,month_key"`
	PaymentMethod *models.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
}

// CreatePayment handles the creation of a new recurring payment
// @Summary     Create a recurring payment
// @Description Register a recurring bill with its amount, category, payment method, and billing cycle
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       request body CreateRecurringPaymentRequest true "Recurring payment details"
// @Success     201 {object} models.RecurringPayment "Recurring payment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [post]
func (h *RecurringHandler) CreatePayment(c *gin.Context) {
	var req CreateRecurringPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate := time.Now()
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.StartDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		startDate = parsed
	}

	payment, err := h.recurringService.CreatePayment(services.RecurringPaymentInput{
		Name:          req.Name,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		BillingCycle:  req.BillingCycle,
		StartDate:     startDate,
		Icon:          req.Icon,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments handles the retrieval of all recurring payments
// @Summary     List recurring payments
// @Description Get all recurring payments with their recorded paid months and the combined monthly cost (yearly payments pro-rated)
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]any "Recurring payments and monthly cost"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [get]
func (h *RecurringHandler) GetPayments(c *gin.Context) {
	payments, err := h.recurringService.ListPayments()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments":     payments,
		"monthly_cost": ledger.MonthlyCost(payments),
	})
}

// GetChecklist handles the retrieval of the yearly payment checklist
// @Summary     Get yearly checklist
// @Description Get each recurring payment's derived paid, due, and not-yet-due status for every month of a year
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       year query int false "Calendar year (default: current year)"
// @Success     200 {object} map[string][]services.PaymentChecklist "Per-payment checklists"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/checklist [get]
func (h *RecurringHandler) GetChecklist(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1970 || parsed > 9999 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
			return
		}
		year = parsed
	}

	checklists, err := h.recurringService.Checklist(year, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "checklists": checklists})
}

// MarkPaid handles marking a recurring payment as paid for a month
// @Summary     Mark a month paid
// @Description Record an expense transaction for the payment and mark the month as paid
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Recurring payment ID"
// @Param       request body MarkPaidRequest true "Month to mark paid"
// @Success     201 {object} services.MarkPaidResult "Created transaction and paid month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Recurring payment not found"
// @Failure     409 {object} ErrorResponse "Month already paid"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id}/paid [post]
func (h *RecurringHandler) MarkPaid(c *gin.Context) {
	paymentID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var method models.PaymentMethod
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}

	result, err := h.recurringService.MarkPaid(paymentID, req.MonthKey, method)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UnmarkPaid handles reverting a paid month
// @Summary     Unmark a paid month
// @Description Delete the expense transaction recorded for the month and remove the paid mark
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id    path string true "Recurring payment ID"
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} MessageResponse "Paid month removed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Recurring payment not found"
// @Failure     409 {object} ErrorResponse "Month not marked paid"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id}/paid/{month} [delete]
func (h *RecurringHandler) UnmarkPaid(c *gin.Context) {
	paymentID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	monthKey := c.Param("month")
	if err := h.recurringService.UnmarkPaid(paymentID, monthKey); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paid month removed successfully"})
}

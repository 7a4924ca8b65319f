package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/services"
)

// DebtHandler handles third-party debt requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// GetDebt handles the retrieval of the outstanding debt for a tag
// @Summary     Get debt for a tag
// @Description Get the transactions owed by a third party and their total
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       tag path string true "Owed-by tag"
// @Success     200 {object} services.DebtSummary "Debt summary"
// @Failure     400 {object} ErrorResponse "Invalid tag"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{tag} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
	tag, err := parseDebtTag(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.debtService.GetDebt(tag)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": summary})
}

// SettleDebt handles the settlement of a third party's outstanding debt
// @Summary     Settle debt for a tag
// @Description Remove all transactions owed by the tag and record a single income transaction for the settled total
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       tag path string true "Owed-by tag"
// @Success     200 {object} models.Transaction "Settlement income transaction"
// @Failure     400 {object} ErrorResponse "Invalid tag or no outstanding debt"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{tag}/settle [post]
func (h *DebtHandler) SettleDebt(c *gin.Context) {
	tag, err := parseDebtTag(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.debtService.SettleDebt(tag)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

func parseDebtTag(c *gin.Context) (string, error) {
	tag := strings.TrimSpace(c.Param("tag"))
	if tag == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "tag is required")
	}
	return tag, nil
}

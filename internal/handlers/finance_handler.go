package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/services"
)

// FinanceHandler handles transaction and financial reporting requests
type FinanceHandler struct {
	financeService services.FinanceServicer
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService services.FinanceServicer) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. When date is omitted the transaction is dated today. Type is
// an open string and the amount sign is not enforced, for compatibility with
// existing data files.
type CreateTransactionRequest struct {
	FarmerID    uint    `json:"farmer_id" binding:"required"`
	Type        string  `json:"type" binding:"required,max=50"`
	Category    string  `json:"category" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"max=500"`
	Date        string  `json:"date" binding:"omitempty,datestring"`
}

// UpdateTransactionRequest represents a partial transaction update.
// Omitted fields keep their stored values; the date is not updatable.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type" binding:"omitempty,max=50"`
	Category    *string  `json:"category" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
}

// CreateTransaction records an income or expense
// @Summary     Record a transaction
// @Description Record an income or expense transaction for a farmer
// @Tags        finance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.financeService.CreateTransaction(
		req.FarmerID, models.TransactionType(req.Type), req.Category, req.Amount, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions lists transactions with optional filters
// @Summary     List transactions
// @Description List transactions with farmer names, most recent first. All provided filters apply together.
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       farmer_id query int false "Restrict to one farmer"
// @Param       start_date query string false "Earliest date (YYYY-MM-DD)"
// @Param       end_date query string false "Latest date (YYYY-MM-DD)"
// @Param       type query string false "Transaction type"
// @Success     200 {array} services.TransactionRecord "List of transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *FinanceHandler) GetTransactions(c *gin.Context) {
	var filter services.TransactionFilter

	if raw := c.Query("farmer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid farmer_id"))
			return
		}
		v := uint(id)
		filter.FarmerID = &v
	}

	startDate, err := parseOptionalDate("start_date", c.Query("start_date"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter.StartDate = startDate

	endDate, err := parseOptionalDate("end_date", c.Query("end_date"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter.EndDate = endDate

	if raw := c.Query("type"); raw != "" {
		t := models.TransactionType(raw)
		filter.Type = &t
	}

	transactions, err := h.financeService.GetTransactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetFinancialSummary returns overall income, expense, and profit totals
// @Summary     Financial summary
// @Description Overall income and expense totals and net profit
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.FinancialSummary "Financial summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /finance/summary [get]
func (h *FinanceHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.financeService.GetFinancialSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown returns totals per category
// @Summary     Category breakdown
// @Description Summed transaction amounts grouped by category
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryTotal "Category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /finance/categories [get]
func (h *FinanceHandler) GetCategoryBreakdown(c *gin.Context) {
	categories, err := h.financeService.GetCategoryBreakdown()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetMonthlySummary returns per-month income and expense totals
// @Summary     Monthly summary
// @Description Income, expenses, and profit bucketed by calendar month number across all years
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.MonthlySummary "Monthly totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /finance/monthly [get]
func (h *FinanceHandler) GetMonthlySummary(c *gin.Context) {
	months, err := h.financeService.GetMonthlySummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": months})
}

// GetTopExpenses lists the largest expense transactions
// @Summary     Top expenses
// @Description Largest expense transactions, biggest first
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum rows (default 5)"
// @Success     200 {array} models.Transaction "Top expenses"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /finance/top-expenses [get]
func (h *FinanceHandler) GetTopExpenses(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.financeService.GetTopExpenses(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetTopIncome lists the largest income transactions
// @Summary     Top income
// @Description Largest income transactions, biggest first
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum rows (default 5)"
// @Success     200 {array} models.Transaction "Top income"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /finance/top-income [get]
func (h *FinanceHandler) GetTopIncome(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.financeService.GetTopIncome(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// UpdateTransaction applies a partial update to a transaction
// @Summary     Update transaction
// @Description Partially update a transaction; omitted fields are kept and the date cannot change
// @Tags        finance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.TransactionUpdate{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		update.Type = &t
	}

	tx, err := h.financeService.UpdateTransaction(id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction removes a transaction
// @Summary     Delete transaction
// @Description Delete a transaction record
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.financeService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseLimit parses an optional positive limit query parameter. Zero means
// use the service default.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid limit")
	}
	return v, nil
}

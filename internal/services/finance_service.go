package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
)

// defaultTopLimit is the top-N size when none is given.
const defaultTopLimit = 5

// financeService handles financial record keeping.
type financeService struct {
	db *gorm.DB
}

// NewFinanceService creates a new FinanceServicer.
func NewFinanceService(db *gorm.DB) FinanceServicer {
	return &financeService{db: db}
}

// CreateTransaction records a financial transaction. The date defaults to
// the current date when absent. Type and amount sign are not enforced,
// for compatibility with existing data files.
func (s *financeService) CreateTransaction(farmerID uint, txType models.TransactionType, category string, amount float64, description string, date *time.Time) (*models.Transaction, error) {
	if farmerID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "farmer ID is required")
	}
	if txType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction type is required")
	}

	transaction := &models.Transaction{
		FarmerID:    farmerID,
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
	if date != nil {
		transaction.Date = *date
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetTransactions retrieves transactions joined with farmer names, newest
// first. All set filters apply conjunctively. Transactions whose farmer was
// deleted are omitted by the inner join.
func (s *financeService) GetTransactions(filter TransactionFilter) ([]TransactionRecord, error) {
	query := s.db.Model(&models.Transaction{}).
		Select("transactions.id, transactions.farmer_id, farmers.name AS farmer_name, " +
			"transactions.type, transactions.category, transactions.amount, " +
			"transactions.description, transactions.date").
		Joins("JOIN farmers ON farmers.id = transactions.farmer_id").
		Order("transactions.date DESC")

	if filter.FarmerID != nil {
		query = query.Where("transactions.farmer_id = ?", *filter.FarmerID)
	}
	if filter.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("transactions.type = ?", *filter.Type)
	}

	var records []TransactionRecord
	if err := query.Scan(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// GetFinancialSummary returns overall income and expense totals and their
// difference. All values are zero, never null, on an empty transaction set.
func (s *financeService) GetFinancialSummary() (*FinancialSummary, error) {
	summary := &FinancialSummary{}
	if err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income, " +
			"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expenses").
		Scan(summary).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.NetProfit = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}

// GetCategoryBreakdown returns summed amounts per category, largest first.
func (s *financeService) GetCategoryBreakdown() ([]CategoryTotal, error) {
	var breakdown []CategoryTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("total DESC").
		Scan(&breakdown).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return breakdown, nil
}

// monthExpr returns the SQL expression extracting the two-digit calendar
// month from the transaction date for the active dialect.
func (s *financeService) monthExpr() string {
	if s.db.Dialector.Name() == "postgres" {
		return "to_char(date, 'MM')"
	}
	return "strftime('%m', date)"
}

// GetMonthlySummary aggregates income, expenses, and profit by calendar
// month number across all years: rows from July of different years share
// the "07" bucket.
func (s *financeService) GetMonthlySummary() ([]MonthlySummary, error) {
	month := s.monthExpr()

	var summaries []MonthlySummary
	if err := s.db.Model(&models.Transaction{}).
		Select(month + " AS month, " +
			"SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS income, " +
			"SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS expenses, " +
			"SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END) AS profit").
		Group(month).
		Order("month").
		Scan(&summaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return summaries, nil
}

// GetTopExpenses returns the largest expense transactions in descending
// amount order.
func (s *financeService) GetTopExpenses(limit int) ([]models.Transaction, error) {
	return s.topByType(models.TransactionTypeExpense, limit)
}

// GetTopIncome returns the largest income transactions in descending
// amount order.
func (s *financeService) GetTopIncome(limit int) ([]models.Transaction, error) {
	return s.topByType(models.TransactionTypeIncome, limit)
}

func (s *financeService) topByType(txType models.TransactionType, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	var transactions []models.Transaction
	if err := s.db.
		Where("type = ?", txType).
		Order("amount DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// UpdateTransaction applies a partial update: nil fields keep their stored
// value. The date is not updatable. Updating a nonexistent transaction
// fails without side effects.
func (s *financeService) UpdateTransaction(id uint, update TransactionUpdate) (*models.Transaction, error) {
	if _, err := s.getTransactionByID(id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Transaction{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.getTransactionByID(id)
}

// DeleteTransaction removes a transaction.
func (s *financeService) DeleteTransaction(id uint) error {
	res := s.db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func (s *financeService) getTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

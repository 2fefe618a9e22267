package services

import (
	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/report"
)

// dashboardService materializes a user's transaction history and feeds
// it through the reporting engine. The persistence boundary ends here:
// the engine itself only ever sees in-memory slices.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// loadTransactions fetches the owner's full history in ascending date
// order. A single user's history is small enough that recomputing every
// aggregate from it per request is cheap.
func (s *dashboardService) loadTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("occurred_on ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetSummary returns income, expenses, and balance for the range.
func (s *dashboardService) GetSummary(userID uint, r report.DateRange) (*report.Summary, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	summary, err := report.Summarize(report.FilterByRange(transactions, r))
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetCategoryBreakdown returns per-category expense totals within the
// range, optionally restricted by settled status (nil means all).
func (s *dashboardService) GetCategoryBreakdown(userID uint, r report.DateRange, settled *bool) ([]report.CategoryGroup, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	return report.GroupExpenses(report.FilterByRange(transactions, r), settled)
}

// GetDailySeries returns the most recent windowSize daily buckets
// within the range.
func (s *dashboardService) GetDailySeries(userID uint, r report.DateRange, windowSize int) ([]report.DailyBucket, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	return report.DailySeries(report.FilterByRange(transactions, r), windowSize)
}

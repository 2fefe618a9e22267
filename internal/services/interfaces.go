package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fluxo/internal/models"
	"fluxo/internal/pagination"
	"fluxo/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Kind     *models.TransactionKind
	Settled  *bool
}

// TransactionServicer defines the contract for transaction-related business logic.
// Every call is scoped to an explicit owner; nothing is read from
// ambient state.
type TransactionServicer interface {
	CreateTransaction(userID uint, rawKind string, amount decimal.Decimal, description string, occurredOn time.Time, isSettled bool) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	SetSettled(userID, transactionID uint, settled bool) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// DashboardServicer defines the contract for the dashboard aggregates.
// Each method loads the owner's transaction history and runs the
// reporting engine over it; results are recomputed from scratch on
// every call.
type DashboardServicer interface {
	GetSummary(userID uint, r report.DateRange) (*report.Summary, error)
	GetCategoryBreakdown(userID uint, r report.DateRange, settled *bool) ([]report.CategoryGroup, error)
	GetDailySeries(userID uint, r report.DateRange, windowSize int) ([]report.DailyBucket, error)
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financogram/internal/models"
	"financogram/internal/portfolio"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// UniqueEmail returns an email address no other fixture uses.
func UniqueEmail() string {
	return fmt.Sprintf("investor%d@test.com", nextID())
}

// CreateTestInvestment stores a one-time investment of amount at entryNAV in
// fund fundID for email.
func CreateTestInvestment(t *testing.T, db *gorm.DB, email, fundID, category, amount, entryNAV string) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		Email:          email,
		FundID:         fundID,
		Name:           "Fund " + fundID,
		Category:       category,
		RiskLevel:      portfolio.RiskForCategory(category),
		Amount:         decimal.RequireFromString(amount),
		EntryNAV:       decimal.RequireFromString(entryNAV),
		InvestmentType: portfolio.OneTime,
		InvestedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(nextID()) * time.Minute),
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}

package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"financogram/internal/portfolio"
)

// PaymentMode records how an investment was paid for.
type PaymentMode string

const (
	PaymentModeUPI        PaymentMode = "upi"
	PaymentModeWallet     PaymentMode = "wallet"
	PaymentModeNetBanking PaymentMode = "netbanking"
	PaymentModeDebitCard  PaymentMode = "debitcard"
)

var paymentModeAliases = map[string]PaymentMode{
	"upi":        PaymentModeUPI,
	"wallet":     PaymentModeWallet,
	"netbanking": PaymentModeNetBanking,
	"debitcard":  PaymentModeDebitCard,
	"card":       PaymentModeDebitCard,
}

// ParsePaymentMode accepts a payment mode in any case and spacing, such as
// "Net Banking", "net_banking" or "netbanking", and returns its canonical
// form. The empty string is not a payment mode.
func ParsePaymentMode(s string) (PaymentMode, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	m, ok := paymentModeAliases[key]
	return m, ok
}

// Investment is a mutual fund purchase made by a user, identified by email.
type Investment struct {
	Base
	Email          string                   `gorm:"not null;index" json:"email"`
	FundID         string                   `gorm:"not null" json:"fund_id"`
	Name           string                   `gorm:"not null" json:"name"`
	Category       string                   `json:"category"`
	RiskLevel      string                   `json:"risk_level"`
	Amount         decimal.Decimal          `gorm:"type:numeric(20,4);not null" json:"amount"`
	EntryNAV       decimal.Decimal          `gorm:"column:entry_nav;type:numeric(20,6);not null" json:"entry_nav"`
	InvestmentType portfolio.InvestmentType `gorm:"not null" json:"investment_type"`
	SIPDay         *int                     `gorm:"column:sip_day" json:"sip_day,omitempty"`
	PaymentMode    PaymentMode              `json:"payment_mode,omitempty"`
	InvestedAt     time.Time                `gorm:"not null" json:"invested_at"`
}

// Record converts the stored investment into the value the aggregator works on.
func (i Investment) Record() portfolio.Record {
	rec := portfolio.Record{
		FundID:         i.FundID,
		Name:           i.Name,
		Category:       i.Category,
		RiskLevel:      i.RiskLevel,
		Amount:         i.Amount,
		EntryNAV:       i.EntryNAV,
		InvestmentType: i.InvestmentType,
	}
	if i.SIPDay != nil {
		rec.SIPDay = *i.SIPDay
	}
	return rec
}

// Records converts a slice of investments, keeping their order.
func Records(investments []Investment) []portfolio.Record {
	out := make([]portfolio.Record, len(investments))
	for i := range investments {
		out[i] = investments[i].Record()
	}
	return out
}

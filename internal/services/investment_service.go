package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "financogram/internal/errors"
	"financogram/internal/models"
	"financogram/internal/pagination"
	"financogram/internal/portfolio"
)

// MaxSIPDay is the last day of the month a SIP can be scheduled on.
const MaxSIPDay = 30

// investmentService handles investment-related business logic.
type investmentService struct {
	db       *gorm.DB
	pageSize int
}

// NewInvestmentService creates a new InvestmentServicer. pageSize is used
// when a request does not ask for one.
func NewInvestmentService(db *gorm.DB, pageSize int) InvestmentServicer {
	return &investmentService{db: db, pageSize: pageSize}
}

// CreateInvestment validates and stores a new investment.
func (s *investmentService) CreateInvestment(ctx context.Context, in CreateInvestmentInput) (*models.Investment, error) {
	if err := validateInvestment(&in); err != nil {
		return nil, err
	}

	investedAt := time.Now().UTC()
	if in.InvestedAt != nil {
		investedAt = in.InvestedAt.UTC()
	}
	riskLevel := in.RiskLevel
	if riskLevel == "" {
		riskLevel = portfolio.RiskForCategory(in.Category)
	}

	investment := &models.Investment{
		Email:          in.Email,
		FundID:         in.FundID,
		Name:           in.Name,
		Category:       in.Category,
		RiskLevel:      riskLevel,
		Amount:         in.Amount,
		EntryNAV:       in.EntryNAV,
		InvestmentType: in.InvestmentType,
		SIPDay:         in.SIPDay,
		PaymentMode:    in.PaymentMode,
		InvestedAt:     investedAt,
	}
	if err := s.db.WithContext(ctx).Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

func validateInvestment(in *CreateInvestmentInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FundID = strings.TrimSpace(in.FundID)
	in.Name = strings.TrimSpace(in.Name)

	switch {
	case in.Email == "":
		return apperrors.NewFieldError("email", "is required")
	case in.FundID == "":
		return apperrors.NewFieldError("fund_id", "is required")
	case in.Name == "":
		return apperrors.NewFieldError("name", "is required")
	case !in.Amount.IsPositive():
		return apperrors.NewFieldError("amount", "must be greater than zero")
	case !in.EntryNAV.IsPositive():
		return apperrors.NewFieldError("entry_nav", "must be greater than zero")
	case !in.InvestmentType.Valid():
		return apperrors.NewFieldError("investment_type", "must be one-time or sip")
	}

	if in.PaymentMode != "" {
		mode, ok := models.ParsePaymentMode(string(in.PaymentMode))
		if !ok {
			return apperrors.NewFieldError("payment_mode", "must be one of UPI, Wallet, Net Banking or Debit Card")
		}
		in.PaymentMode = mode
	}

	if in.InvestmentType == portfolio.SIP {
		if in.SIPDay == nil || *in.SIPDay < 1 || *in.SIPDay > MaxSIPDay {
			return apperrors.NewFieldError("sip_day", fmt.Sprintf("must be between 1 and %d for a SIP", MaxSIPDay))
		}
	} else {
		in.SIPDay = nil
	}
	return nil
}

// ListInvestments returns a paginated list of the investments made by email,
// newest first.
func (s *investmentService) ListInvestments(ctx context.Context, email string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	page.Defaults(s.pageSize)

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.Investment{}).Where("email = ?", email).
		Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := s.db.WithContext(ctx).Where("email = ?", email).
		Order("invested_at DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetRecords returns every investment made by email in the order they were
// stored.
func (s *investmentService) GetRecords(ctx context.Context, email string) ([]portfolio.Record, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	var investments []models.Investment
	if err := s.db.WithContext(ctx).Where("email = ?", email).
		Order("invested_at ASC").Order("id ASC").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return models.Records(investments), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.NewFieldError("email", "is required")
	}
	return email, nil
}

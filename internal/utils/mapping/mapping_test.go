package mapping

import (
	"math/big"
	"testing"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func num(v int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(v), Valid: true}
}

func strPtr(s string) *string {
	return &s
}

func TestToNullDecimal(t *testing.T) {
	tests := []struct {
		name      string
		in        pgtype.Numeric
		wantValid bool
		want      string
	}{
		{name: "null", in: pgtype.Numeric{}, wantValid: false},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantValid: false},
		{name: "infinity", in: pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, wantValid: false},
		{name: "negative infinity", in: pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}, wantValid: false},
		{name: "scaled", in: pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}, wantValid: true, want: "123.45"},
		{name: "nil int is zero", in: pgtype.Numeric{Valid: true}, wantValid: true, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNullDecimal(tt.in)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func TestToNumeric_RoundTrip(t *testing.T) {
	d := decimal.NewNullDecimal(decimal.RequireFromString("987.650"))
	got := ToNullDecimal(ToNumeric(d))
	assert.True(t, got.Valid)
	assert.True(t, d.Decimal.Equal(got.Decimal))

	assert.False(t, ToNumeric(decimal.NullDecimal{}).Valid)
}

func TestToDomainProject_Normalisation(t *testing.T) {
	tests := []struct {
		name            string
		row             models.Project
		wantName        string
		wantTargetValid bool
		wantTarget      int64
		wantTotalValid  bool
		wantTotal       int64
	}{
		{
			name:            "canonical columns",
			row:             models.Project{Name: strPtr("Solar Farm"), TargetAmount: num(1000), TotalInvested: num(900), TotalInvestment: num(900)},
			wantName:        "Solar Farm",
			wantTargetValid: true, wantTarget: 1000,
			wantTotalValid: true, wantTotal: 900,
		},
		{
			name:            "legacy columns only",
			row:             models.Project{Title: strPtr("Wind Park"), GoalAmount: num(500), TotalInvestment: num(120)},
			wantName:        "Wind Park",
			wantTargetValid: true, wantTarget: 500,
			wantTotalValid: true, wantTotal: 120,
		},
		{
			name:            "project_name fallback and target column",
			row:             models.Project{Name: strPtr(""), ProjectName: strPtr("Orchard"), Target: num(300)},
			wantName:        "Orchard",
			wantTargetValid: true, wantTarget: 300,
			wantTotalValid: true, wantTotal: 0,
		},
		{
			name:           "uncapped project with no counters",
			row:            models.Project{},
			wantName:       "",
			wantTotalValid: true, wantTotal: 0,
		},
		{
			name:           "diverging legacy counters are invalid",
			row:            models.Project{TotalInvested: num(100), TotalInvestment: num(150)},
			wantTotalValid: false,
		},
		{
			name:           "nan counter is invalid",
			row:            models.Project{TotalInvested: pgtype.Numeric{NaN: true, Valid: true}},
			wantTotalValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainProject(tt.row)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantTargetValid, got.TargetAmount.Valid)
			if tt.wantTargetValid {
				assert.True(t, decimal.NewFromInt(tt.wantTarget).Equal(got.TargetAmount.Decimal))
			}
			assert.Equal(t, tt.wantTotalValid, got.TotalInvested.Valid)
			if tt.wantTotalValid {
				assert.True(t, decimal.NewFromInt(tt.wantTotal).Equal(got.TotalInvested.Decimal))
			}
		})
	}
}

func TestToDomainInvestment(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	row := models.Investment{
		InvestmentID: "inv-1",
		UserID:       strPtr("user-1"),
		Amount:       num(250),
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      3,
	}

	got := ToDomainInvestment(row)
	assert.Equal(t, "inv-1", got.InvestmentID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "", got.ProjectID)
	assert.Equal(t, domain.InvestmentPending, got.Status)
	assert.True(t, got.HasPositiveAmount())
	assert.Equal(t, int64(3), got.Version)
}

func TestTransactionMapping_RoundTrip(t *testing.T) {
	approvedBy := "admin-1"
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	txn := domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		ProjectID:     "proj-1",
		InvestmentID:  "inv-1",
		Amount:        decimal.NewFromInt(75),
		CurrencyCode:  "EUR",
		Type:          domain.TransactionTypeInvestment,
		Status:        domain.TransactionApproved,
		Description:   "Investment approved",
		Reference:     "inv-1",
		CreatedAt:     now,
		ApprovedAt:    &now,
		ApprovedBy:    &approvedBy,
	}

	assert.Equal(t, txn, ToDomainTransaction(ToModelTransaction(txn)))
}

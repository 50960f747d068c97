package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

func TestLoadSeed(t *testing.T) {
	doc := `{
		"investments": [{"investmentID": "inv-1", "userID": "u1", "projectID": "p1", "amount": "100"}],
		"wallets": [{"userID": "u1", "balance": "250.75"}],
		"projects": [{"projectID": "p1", "name": "Solar", "targetAmount": "1000", "totalInvested": null}]
	}`

	s := NewStore()
	n, err := s.LoadSeed(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	inv, err := s.GetInvestment(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentPending, inv.Status)
	assert.True(t, inv.Amount.Decimal.Equal(decimal.NewFromInt(100)))

	w, ok := s.Wallet("u1")
	require.True(t, ok)
	assert.Equal(t, "250.75", w.Balance.Decimal.StringFixed(2))

	p, ok := s.Project("p1")
	require.True(t, ok)
	assert.True(t, p.HasFixedTarget())
	require.True(t, p.TotalInvested.Valid)
	assert.True(t, p.TotalInvested.Decimal.IsZero())
}

func TestLoadSeed_ProjectWithoutTotalIsApprovable(t *testing.T) {
	doc := `{"projects": [{"projectID": "p1", "targetAmount": "1000"}]}`

	s := NewStore()
	_, err := s.LoadSeed(strings.NewReader(doc))
	require.NoError(t, err)

	p, ok := s.Project("p1")
	require.True(t, ok)
	require.True(t, p.TotalInvested.Valid)
	assert.Equal(t, "1000", p.RemainingCapacity().String())
}

func TestLoadSeed_Rejects(t *testing.T) {
	testCases := map[string]string{
		"unknown field":      `{"accounts": []}`,
		"missing wallet key": `{"wallets": [{"balance": "1"}]}`,
		"malformed":          `{"investments": [`,
	}
	for name, doc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := NewStore().LoadSeed(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/core/services"
	"github.com/SscSPs/investment_admin_core/internal/repositories/database/memory"
)

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.InvestmentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Mock NotificationWriter ---
type MockNotificationWriter struct {
	mock.Mock
}

var _ portsrepo.NotificationWriter = (*MockNotificationWriter)(nil)

func (m *MockNotificationWriter) CreateNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// --- Mock TransactionHistoryReader ---
type MockTransactionHistoryReader struct {
	mock.Mock
}

var _ portsrepo.TransactionHistoryReader = (*MockTransactionHistoryReader)(nil)

func (m *MockTransactionHistoryReader) FindLatestByInvestmentID(ctx context.Context, investmentID string) (*domain.Transaction, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionHistoryReader) ListByInvestmentID(ctx context.Context, investmentID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, investmentID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), nil, args.Error(2)
}

func seedPending(store *memory.Store, currency string) {
	store.PutWallet(domain.Wallet{UserID: testUserID, Balance: nullDec("500")})
	store.PutProject(domain.Project{ProjectID: testProjectID, TotalInvested: nullDec("0"), TargetAmount: nullDec("1000")})
	store.PutInvestment(domain.Investment{
		InvestmentID: testInvestmentID,
		UserID:       testUserID,
		ProjectID:    testProjectID,
		Amount:       nullDec("100"),
		CurrencyCode: currency,
		Status:       domain.InvestmentPending,
	})
}

func TestApproveInvestment_SideEffectFailuresAreNotPropagated(t *testing.T) {
	store := memory.NewStore()
	seedPending(store, "")

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.InvestmentEvent) bool {
		return e.Type == domain.EventInvestmentApproved && e.InvestmentID == testInvestmentID
	})).Return(errors.New("broker unavailable")).Once()

	notifications := new(MockNotificationWriter)
	notifications.On("CreateNotification", mock.Anything, mock.AnythingOfType("domain.Notification")).
		Return(errors.New("inbox write failed")).Once()

	metrics := newMockMetrics()

	repos := memory.NewRepositoryProvider(store)
	repos.NotificationRepo = notifications
	svc := services.NewInvestmentService(repos,
		services.WithEventPublisher(publisher),
		services.WithMetricsRecorder(metrics),
	)

	result, err := svc.ApproveInvestment(context.Background(), testInvestmentID, domain.Actor{ID: "admin-1"})

	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentActive, result.Status)
	assert.Len(t, store.Transactions(), 1)
	assert.Len(t, store.AuditLogs(), 1)
	publisher.AssertExpectations(t)
	notifications.AssertExpectations(t)
	metrics.AssertCalled(t, "SideEffectFailed", "notification")
	metrics.AssertCalled(t, "SideEffectFailed", "event")
	metrics.AssertCalled(t, "DecisionCompleted", domain.AuditApproveInvestment, "success", mock.Anything)
}

func TestRejectInvestment_PublishesEventWithReason(t *testing.T) {
	store := memory.NewStore()
	seedPending(store, "")

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.InvestmentEvent) bool {
		return e.Type == domain.EventInvestmentRejected && e.Reason == "duplicate pledge" && e.ActorID == "admin-1"
	})).Return(nil).Once()

	svc := services.NewInvestmentService(memory.NewRepositoryProvider(store), services.WithEventPublisher(publisher))

	result, err := svc.RejectInvestment(context.Background(), testInvestmentID, "duplicate pledge", domain.Actor{ID: "admin-1"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.TransactionID)
	publisher.AssertExpectations(t)
	assert.Empty(t, store.Notifications())
}

func TestApproveInvestment_NoEventForNoop(t *testing.T) {
	store := memory.NewStore()
	seedPending(store, "")
	inv, err := store.GetInvestment(context.Background(), testInvestmentID)
	require.NoError(t, err)
	inv.Status = domain.InvestmentActive
	store.PutInvestment(*inv)

	publisher := new(MockEventPublisher)
	svc := services.NewInvestmentService(memory.NewRepositoryProvider(store), services.WithEventPublisher(publisher))

	result, err := svc.ApproveInvestment(context.Background(), testInvestmentID, domain.Actor{ID: "admin-1"})

	require.NoError(t, err)
	assert.True(t, result.AlreadyProcessed)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApproveInvestment_PriorLookupFailureFallsBack(t *testing.T) {
	store := memory.NewStore()
	seedPending(store, "GBP")

	history := new(MockTransactionHistoryReader)
	history.On("FindLatestByInvestmentID", mock.Anything, testInvestmentID).
		Return(nil, errors.New("query timeout")).Once()
	metrics := newMockMetrics()

	repos := memory.NewRepositoryProvider(store)
	repos.TransactionRepo = history
	now := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	svc := services.NewInvestmentService(repos,
		services.WithMetricsRecorder(metrics),
		services.WithClock(func() time.Time { return now }),
	)

	_, err := svc.ApproveInvestment(context.Background(), testInvestmentID, domain.Actor{ID: "admin-1"})
	require.NoError(t, err)

	txns := store.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "GBP", txns[0].CurrencyCode)
	assert.Equal(t, "Investment approved", txns[0].Description)
	assert.Equal(t, testInvestmentID, txns[0].Reference)
	assert.True(t, now.Equal(txns[0].CreatedAt))
	history.AssertExpectations(t)
	metrics.AssertCalled(t, "SideEffectFailed", "prior_lookup")
}

func TestApproveInvestment_DefaultCurrencyOption(t *testing.T) {
	store := memory.NewStore()
	seedPending(store, "")

	svc := services.NewInvestmentService(memory.NewRepositoryProvider(store), services.WithDefaultCurrency("INR"))

	_, err := svc.RejectInvestment(context.Background(), testInvestmentID, "kyc", domain.Actor{ID: "admin-1"})
	require.NoError(t, err)

	txns := store.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "INR", txns[0].CurrencyCode)
	assert.Equal(t, "Investment rejected", txns[0].Description)
}

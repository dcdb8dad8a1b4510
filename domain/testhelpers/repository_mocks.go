package testhelpers

import (
	"context"

	"bookie/domain/entities"
	"bookie/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Create(ctx context.Context, bet *entities.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetByID(ctx context.Context, id int64) (*entities.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) ListPending(ctx context.Context) ([]*entities.Bet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) MarkSettled(ctx context.Context, bet *entities.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) MarkNeedsReview(ctx context.Context, betID int64, reason string) error {
	args := m.Called(ctx, betID, reason)
	return args.Error(0)
}

// MockSettlementRunRepository is a mock implementation of SettlementRunRepository
type MockSettlementRunRepository struct {
	mock.Mock
}

func (m *MockSettlementRunRepository) Record(ctx context.Context, run *entities.SettlementRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSettlementRunRepository) ListRecent(ctx context.Context, limit int) ([]*entities.SettlementRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SettlementRun), args.Error(1)
}

// MockGameResultProvider is a mock implementation of GameResultProvider
type MockGameResultProvider struct {
	mock.Mock
}

func (m *MockGameResultProvider) FetchResult(ctx context.Context, eventID string) (*entities.GameResult, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameResult), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockResultNotifier is a mock implementation of ResultNotifier
type MockResultNotifier struct {
	mock.Mock
}

func (m *MockResultNotifier) NotifySettled(ctx context.Context, bet *entities.Bet, result *entities.SettlementResult) error {
	args := m.Called(ctx, bet, result)
	return args.Error(0)
}

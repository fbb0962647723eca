package flights

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Passenger, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlight(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

var testFlights = []domain.Flight{
	{ID: 1, Origin: "New York", Destination: "London", Duration: 415},
	{ID: 2, Origin: "Shanghai", Destination: "Paris", Duration: 760},
}

func TestFlightService_List_BypassesCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop(), WithCache(cache))
	ctx := context.Background()

	repo.On("List", ctx).Return(testFlights, nil).Once()

	result, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, testFlights, result)
	cache.AssertNotCalled(t, "GetFlights", mock.Anything)
	repo.AssertExpectations(t)
}

func TestFlightService_List_Error(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop())
	ctx := context.Background()

	repo.On("List", ctx).Return(nil, errors.New("db down")).Once()

	_, err := service.List(ctx)
	assert.EqualError(t, err, "db down")
}

func TestFlightService_ListCached_CacheMiss(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop(), WithCache(cache))
	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(testFlights, nil).Once()
	cache.On("SetFlights", ctx, testFlights).Return(nil).Once()

	result, err := service.ListCached(ctx)

	require.NoError(t, err)
	assert.Equal(t, testFlights, result)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestFlightService_ListCached_CacheHit(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop(), WithCache(cache))
	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(testFlights, nil).Once()

	result, err := service.ListCached(ctx)

	require.NoError(t, err)
	assert.Equal(t, testFlights, result)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

// Cache failures degrade to the database.
func TestFlightService_ListCached_CacheErrors(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop(), WithCache(cache))
	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(nil, errors.New("redis down")).Once()
	repo.On("List", ctx).Return(testFlights, nil).Once()
	cache.On("SetFlights", ctx, testFlights).Return(errors.New("redis down")).Once()

	result, err := service.ListCached(ctx)

	require.NoError(t, err)
	assert.Equal(t, testFlights, result)
}

func TestFlightService_ListCached_NoCache(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop())
	ctx := context.Background()

	repo.On("List", ctx).Return(testFlights, nil).Once()

	result, err := service.ListCached(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestFlightService_GetByID(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop(), WithCache(cache))
	ctx := context.Background()

	flight := &testFlights[0]
	cache.On("GetFlight", ctx, int64(1)).Return(nil, nil).Once()
	repo.On("GetByID", ctx, int64(1)).Return(flight, nil).Once()
	cache.On("SetFlight", ctx, flight).Return(nil).Once()

	result, err := service.GetByID(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, flight, result)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, &MockPassengerRepository{}, zap.NewNop(), WithCache(cache))
	ctx := context.Background()

	cache.On("GetFlight", ctx, int64(99999)).Return(nil, nil).Once()
	repo.On("GetByID", ctx, int64(99999)).Return(nil, domain.ErrFlightNotFound).Once()

	_, err := service.GetByID(ctx, 99999)

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	cache.AssertNotCalled(t, "SetFlight", mock.Anything, mock.Anything)
}

func TestFlightService_Passengers(t *testing.T) {
	passengers := &MockPassengerRepository{}
	service := NewFlightService(&MockFlightRepository{}, passengers, zap.NewNop())
	ctx := context.Background()

	want := []domain.Passenger{{ID: 1, Name: "Alice", FlightID: 1}}
	passengers.On("ListByFlight", ctx, int64(1)).Return(want, nil).Once()

	result, err := service.Passengers(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

package flights

import (
	"context"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	ListCached(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Passengers(ctx context.Context, flightID int64) ([]domain.Passenger, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	SetFlight(ctx context.Context, flight *domain.Flight) error
}

type FlightService struct {
	flights    repository.FlightRepository
	passengers repository.PassengerRepository
	cache      FlightCache
	logger     *zap.Logger
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func NewFlightService(
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	logger *zap.Logger,
	opts ...FlightServiceOption,
) *FlightService {
	s := &FlightService{flights: flights, passengers: passengers, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List always reads the database so the listing pages show every row present.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return s.flights.List(ctx)
}

// ListCached serves the flight list from the cache when it is warm.
func (s *FlightService) ListCached(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err != nil {
			s.logger.Warn("flights cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.logger.Warn("flights cache write failed", zap.Error(err))
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlight(ctx, id)
		if err != nil {
			s.logger.Warn("flight cache read failed", zap.Int64("flight_id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlight(ctx, flight); err != nil {
			s.logger.Warn("flight cache write failed", zap.Int64("flight_id", id), zap.Error(err))
		}
	}
	return flight, nil
}

func (s *FlightService) Passengers(ctx context.Context, flightID int64) ([]domain.Passenger, error) {
	return s.passengers.ListByFlight(ctx, flightID)
}

var _ FlightUseCase = (*FlightService)(nil)

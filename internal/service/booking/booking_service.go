package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/kafka"
	"github.com/Domenick1991/airline/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidFlightNumber = errors.New("invalid flight number")

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*domain.Passenger, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// BookInput carries the raw form values; FlightID is parsed by Book.
type BookInput struct {
	Name     string
	FlightID string
}

type BookingService struct {
	passengers repository.PassengerRepository
	producer   Producer
	topic      string
	logger     *zap.Logger
	now        func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(passengers repository.PassengerRepository, logger *zap.Logger, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{
		passengers: passengers,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseFlightID accepts a base-10 integer with optional sign and surrounding spaces.
// A well-formed number too large for int64 cannot name a flight, so it yields
// domain.ErrFlightNotFound rather than ErrInvalidFlightNumber.
func ParseFlightID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.ErrFlightNotFound
		}
		return 0, ErrInvalidFlightNumber
	}
	return id, nil
}

// Book inserts one passenger for an existing flight. It returns
// ErrInvalidFlightNumber or domain.ErrFlightNotFound without touching state.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Passenger, error) {
	flightID, err := ParseFlightID(input.FlightID)
	if err != nil {
		return nil, err
	}

	passenger := &domain.Passenger{Name: input.Name, FlightID: flightID}
	if err := s.passengers.Create(ctx, passenger); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, passenger); err != nil {
		s.logger.Warn("failed to publish booking event",
			zap.Int64("passenger_id", passenger.ID),
			zap.Int64("flight_id", passenger.FlightID),
			zap.Error(err))
	}
	return passenger, nil
}

func (s *BookingService) publish(ctx context.Context, passenger *domain.Passenger) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}
	event := kafka.PassengerEvent{
		ID:          uuid.NewString(),
		Type:        kafka.EventPassengerBooked,
		PassengerID: passenger.ID,
		Name:        passenger.Name,
		FlightID:    passenger.FlightID,
		OccurredAt:  s.now().UTC(),
	}
	return s.producer.Publish(ctx, s.topic, strconv.FormatInt(passenger.FlightID, 10), event)
}

var _ BookingUseCase = (*BookingService)(nil)

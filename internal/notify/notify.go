package notify

import (
	"context"

	"github.com/Domenick1991/airline/internal/kafka"
	"go.uber.org/zap"
)

// Notifier records manifest updates for booked passengers.
type Notifier struct {
	logger *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Send(ctx context.Context, event kafka.PassengerEvent) error {
	if event.Type != kafka.EventPassengerBooked {
		n.logger.Debug("ignoring event", zap.String("type", event.Type), zap.String("event_id", event.ID))
		return nil
	}
	n.logger.Info("manifest updated",
		zap.String("event_id", event.ID),
		zap.Int64("flight_id", event.FlightID),
		zap.Int64("passenger_id", event.PassengerID),
		zap.String("name", event.Name))
	return nil
}

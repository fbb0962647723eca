package domain

// Passenger is a booking: a name tied to a flight id. Rows are only ever inserted.
type Passenger struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FlightID int64  `json:"flight_id"`
}

package domain

import "errors"

var ErrFlightNotFound = errors.New("flight not found")

type Flight struct {
	ID          int64  `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
}

package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidFlightNumber = "Invalid flight number."
	MsgNoSuchFlight        = "No such flight with that id."
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router gin.IRouter, middleware ...gin.HandlerFunc) {
	router.POST("/book", append(middleware, h.book)...)
}

func (h *BookingHandler) book(c *gin.Context) {
	_, err := h.service.Book(c.Request.Context(), booking.BookInput{
		Name:     c.PostForm("name"),
		FlightID: c.PostForm("flight_id"),
	})

	switch {
	case err == nil:
		c.HTML(http.StatusOK, "success.html", nil)
	case errors.Is(err, booking.ErrInvalidFlightNumber):
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"message": MsgInvalidFlightNumber})
	case errors.Is(err, domain.ErrFlightNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": MsgNoSuchFlight})
	default:
		internalError(c, err)
	}
}

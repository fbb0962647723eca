package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightDetailResponse struct {
	Flight     *domain.Flight     `json:"flight"`
	Passengers []domain.Passenger `json:"passengers"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

// Register mounts the HTML listing on both of its paths.
func (h *FlightHandler) Register(router gin.IRouter) {
	router.GET("/", h.index)
	router.GET("/showall", h.index)
}

func (h *FlightHandler) RegisterAPI(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) index(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"flights": flights})
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.ListCached(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrFlightNotFound.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()
	flight, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err)
		return
	}

	passengers, err := h.service.Passengers(ctx, id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightDetailResponse{Flight: flight, Passengers: passengers})
}

// internalError records err for the request logger and answers with a bare 500.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	c.Abort()
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airline/api"
	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/middleware"
	"github.com/Domenick1991/airline/internal/service/booking"
	"github.com/Domenick1991/airline/internal/service/flights"
	"github.com/Domenick1991/airline/internal/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run serves HTTP until ctx is canceled or the server fails, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	router, err := NewRouter(cfg.HTTP, logger, flightSvc, bookingSvc)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires the HTML pages, the JSON API and the health check.
func NewRouter(cfg config.HTTPConfig, logger *zap.Logger, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		middleware.Logger(c).Error("panic recovered", zap.Any("panic", recovered))
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		c.Abort()
	}))
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	flightHandler := api.NewFlightHandler(flightSvc)
	flightHandler.Register(router)
	flightHandler.RegisterAPI(router.Group("/api/flights"))

	api.NewBookingHandler(bookingSvc).Register(router, middleware.RateLimit(cfg.BookRatePerMinute))

	return router, nil
}

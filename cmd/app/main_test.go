package main

import (
	"testing"

	"github.com/Domenick1991/airline/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Startup failures come back as errors so run's deferred closes still execute.
func TestRun_BadDatabaseURL(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{URL: "postgres://%zz"}}

	err := run(cfg, zap.NewNop())
	assert.ErrorContains(t, err, "connect postgres")
}

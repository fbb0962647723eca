package main

import (
	"testing"

	"github.com/Domenick1991/airline/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRun_KafkaNotConfigured(t *testing.T) {
	err := run(&config.Config{}, zap.NewNop())
	assert.ErrorContains(t, err, "kafka is not configured")
}

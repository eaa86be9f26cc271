package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.Notification.Timeout)
	assert.Equal(t, 4, cfg.Notification.Concurrency)
	assert.Equal(t, "sport-events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Log.DBTimeout)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NOTIFY_TIMEOUT", "250ms")
	t.Setenv("NOTIFY_CONCURRENCY", "0")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("DB_NAME", "complex")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Notification.Timeout)
	assert.Equal(t, 1, cfg.Notification.Concurrency, "concurrency is clamped to at least one worker")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Contains(t, cfg.DSN(), "dbname=complex")
}

func TestLoadConfigRejectsMalformedDuration(t *testing.T) {
	t.Setenv("NOTIFY_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}

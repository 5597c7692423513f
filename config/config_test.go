package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "carebook", AppConfig.DatabaseName)
	assert.Equal(t, 30, AppConfig.SlotCacheTTLSeconds)
	assert.Equal(t, 5, AppConfig.SweepIntervalMin)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
}

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarchlab/vcoresim/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 2, cfg.IssueWidth)
	assert.Equal(t, 1, cfg.NumLSUBlocks)
	assert.Equal(t, 4, cfg.NumLSULanes)
	assert.Equal(t, 32, cfg.XLEN)
	assert.Equal(t, 3, cfg.LatencyIMUL)
	assert.True(t, cfg.LMEMEnabled)
}

func TestLoadOverlaysEnv(t *testing.T) {
	os.Setenv("VCORESIM_ISSUE_WIDTH", "8")
	os.Setenv("VCORESIM_LMEM_ENABLED", "false")
	defer os.Unsetenv("VCORESIM_ISSUE_WIDTH")
	defer os.Unsetenv("VCORESIM_LMEM_ENABLED")

	cfg, err := config.Load("")
	assert.NoError(t, err)
	assert.Equal(t, 8, cfg.IssueWidth)
	assert.False(t, cfg.LMEMEnabled)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, err := config.Load("/nonexistent/path/does-not-exist.env")
	assert.NoError(t, err)
}

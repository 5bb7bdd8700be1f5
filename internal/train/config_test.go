package train

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.NumInputs())
	assert.Equal(t, []int{4, 4, 1}, cfg.Layers)
	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, OptimizerSGD, cfg.Optimizer)
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no inputs", func(c *Config) { c.Inputs = nil }},
		{"empty input row", func(c *Config) { c.Inputs[1] = []float64{} }},
		{"ragged inputs", func(c *Config) { c.Inputs[2] = []float64{1, 2} }},
		{"target count", func(c *Config) { c.Targets = c.Targets[:3] }},
		{"no layers", func(c *Config) { c.Layers = nil }},
		{"zero width layer", func(c *Config) { c.Layers = []int{4, 0, 1} }},
		{"final layer width", func(c *Config) { c.Layers = []int{4, 2} }},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"unknown optimizer", func(c *Config) { c.Optimizer = "rmsprop" }},
		{"momentum out of range", func(c *Config) { c.Momentum = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_ZeroIterationsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 0
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
iterations: 10
optimizer: adam
learning_rate: 0.01
layers: [8, 1]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Iterations)
	assert.Equal(t, OptimizerAdam, cfg.Optimizer)
	assert.Equal(t, 0.01, cfg.LearningRate)
	assert.Equal(t, []int{8, 1}, cfg.Layers)

	// Untouched keys keep their defaults.
	def := DefaultConfig()
	assert.Equal(t, def.Inputs, cfg.Inputs)
	assert.Equal(t, def.Targets, cfg.Targets)
	assert.Equal(t, def.Seed, cfg.Seed)
}

func TestLoadConfig_CustomData(t *testing.T) {
	path := writeConfig(t, `
inputs:
  - [0, 0]
  - [1, 1]
targets: [-1, 1]
layers: [2, 1]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.NumInputs())
	assert.Equal(t, []float64{-1, 1}, cfg.Targets)
}

func TestLoadConfig_EmptyFileIsDefault(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "learnin_rate: 0.1\n"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "layers: [4, 1\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "targets: [1, 2]\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

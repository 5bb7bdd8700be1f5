package train

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) for any configuration that cannot
// be trained.
var ErrInvalidConfig = errors.New("invalid training config")

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD      = "sgd"
	OptimizerMomentum = "momentum"
	OptimizerAdam     = "adam"
)

// configValidate is the validator instance for Config.
var configValidate = validator.New()

// Config describes one full-batch training run.
type Config struct {
	// Inputs holds one row of raw features per example.
	Inputs [][]float64 `yaml:"inputs" validate:"required,min=1,dive,required,min=1"`

	// Targets holds one desired output per example.
	Targets []float64 `yaml:"targets" validate:"required,min=1"`

	// Layers lists the width of each layer after the input. The input width
	// comes from Inputs.
	Layers []int `yaml:"layers" validate:"required,min=1,dive,gt=0"`

	Iterations   int     `yaml:"iterations" validate:"gte=0"`
	LearningRate float64 `yaml:"learning_rate" validate:"gt=0"`
	Seed         int64   `yaml:"seed"`

	// Optimizer selects the update rule: sgd (plain nudge), momentum, or adam.
	Optimizer string  `yaml:"optimizer" validate:"oneof=sgd momentum adam"`
	Momentum  float64 `yaml:"momentum" validate:"gte=0,lt=1"`
}

// DefaultConfig returns the compiled-in toy problem: four examples with three
// features each, a 3→4→4→1 network, 50 iterations of plain gradient descent.
func DefaultConfig() Config {
	return Config{
		Inputs: [][]float64{
			{2.0, 3.0, -1.0},
			{3.0, -1.0, 0.5},
			{0.5, 1.0, 1.0},
			{1.0, 1.0, -1.0},
		},
		Targets:      []float64{1.0, -1.0, -1.0, 1.0},
		Layers:       []int{4, 4, 1},
		Iterations:   50,
		LearningRate: 0.05,
		Seed:         42,
		Optimizer:    OptimizerSGD,
		Momentum:     0.9,
	}
}

// NumInputs returns the feature width of every example.
func (c Config) NumInputs() int {
	if len(c.Inputs) == 0 {
		return 0
	}
	return len(c.Inputs[0])
}

// Validate checks field constraints and the relations between fields.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(c.Targets) != len(c.Inputs) {
		return fmt.Errorf("%w: %d targets for %d inputs", ErrInvalidConfig, len(c.Targets), len(c.Inputs))
	}

	width := c.NumInputs()
	for i, row := range c.Inputs {
		if len(row) != width {
			return fmt.Errorf("%w: input %d has %d features, want %d", ErrInvalidConfig, i, len(row), width)
		}
	}

	if last := c.Layers[len(c.Layers)-1]; last != 1 {
		return fmt.Errorf("%w: final layer has %d outputs, want 1", ErrInvalidConfig, last)
	}

	return nil
}

// LoadConfig reads a YAML file and overlays it onto DefaultConfig.
// Keys absent from the file keep their default values; unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseConfig decodes YAML into cfg, leaving fields the document does not
// mention untouched.
func ParseConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document decodes nothing.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

package train

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface of the conjugate-gradient
// trainer: training operator, warning/error thresholds, stopping criteria,
// history reservation flags and reporting periods. It is serializable to a
// tag-per-field YAML document so a configuration (not training state) can
// be saved and restored across runs.
type Config struct {
	// Method selects the conjugate-direction formula, PR or FR.
	Method Method `yaml:"training_direction_method"`

	// Warning thresholds: crossing one emits a diagnostic through the
	// Reporter and training continues.
	WarningParametersNorm float64 `yaml:"warning_parameters_norm"`
	WarningGradientNorm   float64 `yaml:"warning_gradient_norm"`
	// WarningTrainingRate is a lower bound: a returned rate at or below it
	// means the line search struggled to bracket a minimum.
	WarningTrainingRate float64 `yaml:"warning_training_rate"`

	// Error thresholds: crossing one is fatal to the run.
	ErrorParametersNorm float64 `yaml:"error_parameters_norm"`
	ErrorGradientNorm   float64 `yaml:"error_gradient_norm"`
	// ErrorTrainingRate is a lower bound, like WarningTrainingRate.
	ErrorTrainingRate float64 `yaml:"error_training_rate"`

	Stopping StoppingCriteria `yaml:"stopping_criteria"`
	Reserve  Reserve          `yaml:"reserve_history"`

	// DisplayPeriod is the iteration interval between progress
	// notifications to the Reporter. Zero disables them.
	DisplayPeriod int `yaml:"display_period"`

	// SavePeriod is the iteration interval between checkpoint requests to
	// the Saver. Zero disables them.
	SavePeriod int `yaml:"save_period"`
}

// DefaultConfig returns the documented defaults: Polak-Ribière directions,
// norm warnings at 1e6 and norm errors at 1e9, rate warning/error floors at
// 1e-9/1e-12, a thousand iterations or one hour of training, performance
// history reserved, and progress displayed every ten iterations.
func DefaultConfig() Config {
	return Config{
		Method:                PolakRibiere,
		WarningParametersNorm: 1e6,
		WarningGradientNorm:   1e6,
		WarningTrainingRate:   1e-9,
		ErrorParametersNorm:   1e9,
		ErrorGradientNorm:     1e9,
		ErrorTrainingRate:     1e-12,
		Stopping: StoppingCriteria{
			MinParametersIncrementNorm: 0,
			MinPerformanceIncrease:     0,
			PerformanceGoal:            math.Inf(-1),
			GradientNormGoal:           0,
			MaxSelectionFailures:       1000000,
			MaxIterations:              1000,
			MaxTime:                    3600,
		},
		Reserve:       Reserve{Performance: true},
		DisplayPeriod: 10,
		SavePeriod:    0,
	}
}

// Validate rejects configurations that cannot drive a run: negative
// thresholds, negative iteration or time bounds, or an error threshold
// tighter than its warning counterpart.
func (c Config) Validate() error {
	switch {
	case c.WarningParametersNorm < 0 || c.WarningGradientNorm < 0 || c.WarningTrainingRate < 0:
		return errors.New("train: warning thresholds must be non-negative")
	case c.ErrorParametersNorm < 0 || c.ErrorGradientNorm < 0 || c.ErrorTrainingRate < 0:
		return errors.New("train: error thresholds must be non-negative")
	case c.ErrorParametersNorm < c.WarningParametersNorm:
		return errors.New("train: error parameters norm below warning parameters norm")
	case c.ErrorGradientNorm < c.WarningGradientNorm:
		return errors.New("train: error gradient norm below warning gradient norm")
	case c.ErrorTrainingRate > c.WarningTrainingRate:
		return errors.New("train: error training rate above warning training rate")
	case c.Stopping.MaxIterations < 0:
		return errors.New("train: maximum iterations must be non-negative")
	case c.Stopping.MaxTime < 0:
		return errors.New("train: maximum time must be non-negative")
	case c.DisplayPeriod < 0 || c.SavePeriod < 0:
		return errors.New("train: display and save periods must be non-negative")
	}
	return nil
}

// MarshalYAML encodes the method as its short name.
func (m Method) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a short method name.
func (m *Method) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Save writes the configuration as a YAML document.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "train: encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "train: write config")
	}
	return nil
}

// LoadConfig reads a YAML configuration document, applying defaults for
// absent fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "train: read config")
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "train: decode config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

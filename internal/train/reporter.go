package train

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Reporter receives progress notifications and warning diagnostics from the
// trainer. It has no effect on control flow.
type Reporter interface {
	// Progress is emitted every DisplayPeriod iterations.
	Progress(iteration int, performance, gradientNorm float64)

	// Warning is emitted when a warning threshold is crossed.
	Warning(format string, args ...any)
}

// Saver receives periodic checkpoint requests. Failures are logged by the
// trainer and never stop training.
type Saver interface {
	Save(parameters []float64, iteration int) error
}

// LogReporter reports through a logrus logger with structured fields. The
// zero value is not usable; construct one with NewLogReporter.
type LogReporter struct {
	log *logrus.Logger
}

// NewLogReporter creates a reporter backed by the given logger, or by the
// standard logrus logger when nil.
func NewLogReporter(log *logrus.Logger) *LogReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogReporter{log: log}
}

// Progress logs the iteration index, performance and gradient norm.
func (r *LogReporter) Progress(iteration int, performance, gradientNorm float64) {
	r.log.WithFields(logrus.Fields{
		"iteration":     iteration,
		"performance":   performance,
		"gradient_norm": gradientNorm,
	}).Info("training progress")
}

// Warning logs a threshold diagnostic.
func (r *LogReporter) Warning(format string, args ...any) {
	r.log.Warnf(format, args...)
}

// NopReporter discards all notifications.
type NopReporter struct{}

// Progress implements Reporter.
func (NopReporter) Progress(int, float64, float64) {}

// Warning implements Reporter.
func (NopReporter) Warning(string, ...any) {}

// NopSaver discards all checkpoint requests.
type NopSaver struct{}

// Save implements Saver.
func (NopSaver) Save([]float64, int) error { return nil }

// FileSaver writes checkpoints as small YAML documents, overwriting the
// same path each time so the file always holds the latest snapshot.
type FileSaver struct {
	Path string
}

type checkpointDocument struct {
	Iteration  int       `yaml:"iteration"`
	Parameters []float64 `yaml:"parameters"`
}

// Save writes the parameter vector and iteration index to the configured
// path.
func (s *FileSaver) Save(parameters []float64, iteration int) error {
	data, err := yaml.Marshal(checkpointDocument{
		Iteration:  iteration,
		Parameters: parameters,
	})
	if err != nil {
		return errors.Wrap(err, "train: encode checkpoint")
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return errors.Wrap(err, "train: write checkpoint")
	}
	return nil
}

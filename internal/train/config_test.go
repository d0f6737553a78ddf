package train_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cgtrain/internal/train"
)

func TestDefaultConfig(t *testing.T) {
	config := train.DefaultConfig()

	assert.Equal(t, train.PolakRibiere, config.Method)
	assert.Equal(t, 1e6, config.WarningParametersNorm)
	assert.Equal(t, 1e9, config.ErrorParametersNorm)
	assert.Equal(t, 1e-12, config.ErrorTrainingRate)
	assert.Equal(t, 1000, config.Stopping.MaxIterations)
	assert.Equal(t, 3600.0, config.Stopping.MaxTime)
	assert.True(t, math.IsInf(config.Stopping.PerformanceGoal, -1))
	assert.True(t, config.Reserve.Performance)
	assert.False(t, config.Reserve.Parameters)
	assert.Equal(t, 10, config.DisplayPeriod)

	assert.NoError(t, config.Validate())
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cg.yaml")

	config := train.DefaultConfig()
	config.Method = train.FletcherReeves
	config.Stopping.GradientNormGoal = 0.001
	config.Stopping.MaxIterations = 250
	config.Reserve.Gradient = true
	config.SavePeriod = 25

	require.NoError(t, config.Save(path))

	loaded, err := train.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, train.FletcherReeves, loaded.Method)
	assert.Equal(t, 0.001, loaded.Stopping.GradientNormGoal)
	assert.Equal(t, 250, loaded.Stopping.MaxIterations)
	assert.True(t, loaded.Reserve.Gradient)
	assert.Equal(t, 25, loaded.SavePeriod)
	assert.True(t, math.IsInf(loaded.Stopping.PerformanceGoal, -1),
		"-inf performance goal must survive the round trip")
}

func TestLoadConfig_AppliesDefaultsForAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("training_direction_method: FR\n"), 0o644))

	loaded, err := train.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, train.FletcherReeves, loaded.Method)
	assert.Equal(t, 1000, loaded.Stopping.MaxIterations, "absent fields keep their defaults")
}

func TestLoadConfig_RejectsUnknownMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("training_direction_method: LBFGS\n"), 0o644))

	_, err := train.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := train.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*train.Config)
	}{
		{"negative warning threshold", func(c *train.Config) { c.WarningGradientNorm = -1 }},
		{"error norm below warning norm", func(c *train.Config) {
			c.WarningParametersNorm = 100
			c.ErrorParametersNorm = 10
		}},
		{"error rate above warning rate", func(c *train.Config) {
			c.WarningTrainingRate = 1e-12
			c.ErrorTrainingRate = 1e-6
		}},
		{"negative max iterations", func(c *train.Config) { c.Stopping.MaxIterations = -1 }},
		{"negative save period", func(c *train.Config) { c.SavePeriod = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := train.DefaultConfig()
			tt.adjust(&config)
			assert.Error(t, config.Validate())
		})
	}
}

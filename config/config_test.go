package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfaboss/boss"
	"github.com/katalvlaran/sfaboss/builder"
	"github.com/katalvlaran/sfaboss/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boss.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(write(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	opts, err := cfg.Options()
	require.NoError(t, err)
	e, err := boss.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, boss.Exhaustive, e.Strategy())
}

func TestLoad_Full(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := config.Load(write(t, `
seed: 7
strategy: random
ensemble_size: 4
ensemble_size_per_channel: 2
max_ensemble_size: 100
aggregator_folds: 5
checkpoint:
  dir: `+dir+`
  cleanup: false
report:
  train_estimate: true
log:
  level: warn
`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "random", cfg.Strategy)
	assert.Equal(t, 4, cfg.EnsembleSize)
	assert.Equal(t, 2, cfg.EnsembleSizePerChannel)
	assert.Equal(t, 100, cfg.MaxEnsembleSize)
	assert.Equal(t, 5, cfg.AggregatorFolds)
	assert.Equal(t, dir, cfg.Checkpoint.Dir)
	require.NotNil(t, cfg.Checkpoint.Cleanup)
	assert.False(t, *cfg.Checkpoint.Cleanup)
	assert.True(t, cfg.Report.TrainEstimate)

	opts, err := cfg.Options()
	require.NoError(t, err)
	e, err := boss.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, boss.Random, e.Strategy())

	train, err := builder.BuildLabeled(2, 3, 30, 1, builder.WithName("cfg"))
	require.NoError(t, err)
	require.NoError(t, e.Fit(train))
	assert.Equal(t, 4, e.Size())
	assert.DirExists(t, filepath.Join(dir, "cfg-7-Random4"), "cleanup disabled")
}

func TestLoad_TimeLimitForms(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Duration{
		`time_limit: 90s`:                          90 * time.Second,
		`time_limit: {unit: hour, amount: 2}`:      2 * time.Hour,
		"time_limit:\n  unit: days\n  amount: 1\n": 24 * time.Hour,
	}
	for body, want := range cases {
		cfg, err := config.Load(write(t, body))
		require.NoError(t, err, body)
		assert.Equal(t, want, cfg.TimeLimit.Duration, body)

		opts, err := cfg.Options()
		require.NoError(t, err)
		e, err := boss.New(opts...)
		require.NoError(t, err)
		assert.Equal(t, boss.Contract, e.Strategy(), "a time limit alone selects contract")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		body string
		want error
	}{
		{`strategy: greedy`, config.ErrStrategy},
		{`strategy: contract`, config.ErrInvalid},
		{`ensemble_size: 0`, config.ErrInvalid},
		{`max_ensemble_size: -1`, config.ErrInvalid},
		{`aggregator_folds: 1`, config.ErrInvalid},
		{`time_limit: soon`, config.ErrDuration},
		{`time_limit: {unit: fortnight, amount: 1}`, config.ErrDuration},
		{`time_limit: [1, 2]`, config.ErrDuration},
		{"log:\n  level: loud\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		_, err := config.Load(write(t, tc.body))
		assert.ErrorIs(t, err, tc.want, tc.body)
	}

	_, err := config.Load(write(t, `no_such_key: 1`))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions_Aggregated(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(write(t, `strategy: random-aggregated`))
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)

	_, err = boss.New(opts...)
	assert.ErrorIs(t, err, boss.ErrNoAggregator, "the aggregator comes from code")
}

func TestLogger(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, l)

	cfg.Log.Level = "debug"
	l, err = cfg.Logger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sfaboss/boss"
)

// Config is the file form of an ensemble configuration.
type Config struct {
	Seed     int64  `yaml:"seed"`
	Strategy string `yaml:"strategy"` // exhaustive | contract | random | random-aggregated

	EnsembleSize           int `yaml:"ensemble_size"`
	EnsembleSizePerChannel int `yaml:"ensemble_size_per_channel"`
	MaxEnsembleSize        int `yaml:"max_ensemble_size"`
	AggregatorFolds        int `yaml:"aggregator_folds"`

	// TimeLimit is "90s"-style or {unit: hour, amount: 2}. Setting it
	// without a strategy selects contract.
	TimeLimit Duration `yaml:"time_limit"`

	Checkpoint CheckpointConfig `yaml:"checkpoint"`
	Report     ReportConfig     `yaml:"report"`
	Log        LogConfig        `yaml:"log"`
}

type CheckpointConfig struct {
	Dir     string `yaml:"dir"`
	Cleanup *bool  `yaml:"cleanup"` // default true
}

type ReportConfig struct {
	TrainPath     string `yaml:"train_path"`
	TrainEstimate bool   `yaml:"train_estimate"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error; empty disables logging
}

// Duration is a time budget in either Go or symbolic unit form.
type Duration struct {
	time.Duration
}

// UnmarshalYAML accepts a scalar parsed by time.ParseDuration or a mapping
// {unit, amount} normalised by boss.Budget.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return errors.Wrapf(ErrDuration, "line %d: %v", value.Line, err)
		}
		d.Duration = parsed
		return nil
	case yaml.MappingNode:
		var form struct {
			Unit   string `yaml:"unit"`
			Amount int    `yaml:"amount"`
		}
		if err := value.Decode(&form); err != nil {
			return errors.Wrapf(ErrDuration, "line %d: %v", value.Line, err)
		}
		unit, err := boss.ParseTimeUnit(form.Unit)
		if err != nil {
			return errors.Wrapf(ErrDuration, "line %d: %v", value.Line, err)
		}
		budget, err := boss.Budget(unit, form.Amount)
		if err != nil {
			return errors.Wrapf(ErrDuration, "line %d: %v", value.Line, err)
		}
		d.Duration = budget
		return nil
	default:
		return errors.Wrapf(ErrDuration, "line %d: unsupported node", value.Line)
	}
}

// Default returns the configuration used when a file leaves a field unset.
func Default() *Config {
	return &Config{
		EnsembleSize:    boss.DefaultEnsembleSize,
		MaxEnsembleSize: boss.DefaultMaxEnsembleSize,
		AggregatorFolds: boss.DefaultAggregatorFolds,
	}
}

// Load reads, defaults and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Parse decodes YAML data. Unknown keys are rejected. An empty document
// yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "config: decode")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and strategy requirements.
func (c *Config) Validate() error {
	s, err := c.strategy()
	if err != nil {
		return err
	}
	switch {
	case c.EnsembleSize < 1:
		return errors.Wrapf(ErrInvalid, "ensemble_size %d", c.EnsembleSize)
	case c.EnsembleSizePerChannel < 0:
		return errors.Wrapf(ErrInvalid, "ensemble_size_per_channel %d", c.EnsembleSizePerChannel)
	case c.MaxEnsembleSize < 1:
		return errors.Wrapf(ErrInvalid, "max_ensemble_size %d", c.MaxEnsembleSize)
	case c.AggregatorFolds < 2:
		return errors.Wrapf(ErrInvalid, "aggregator_folds %d", c.AggregatorFolds)
	case c.TimeLimit.Duration < 0:
		return errors.Wrapf(ErrInvalid, "time_limit %v", c.TimeLimit.Duration)
	case s == boss.Contract && c.TimeLimit.Duration == 0:
		return errors.Wrap(ErrInvalid, "contract strategy needs time_limit")
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// Options maps the configuration onto ensemble options. The
// random-aggregated strategy still needs boss.WithAggregator from the caller.
func (c *Config) Options() ([]boss.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := c.strategy()

	opts := []boss.Option{
		boss.WithSeed(c.Seed),
		boss.WithStrategy(s),
		boss.WithEnsembleSize(c.EnsembleSize),
		boss.WithMaxEnsembleSize(c.MaxEnsembleSize),
		boss.WithAggregatorFolds(c.AggregatorFolds),
	}
	if c.EnsembleSizePerChannel > 0 {
		opts = append(opts, boss.WithEnsembleSizePerChannel(c.EnsembleSizePerChannel))
	}
	if s == boss.Contract {
		opts = append(opts, boss.WithTimeLimit(c.TimeLimit.Duration))
	}
	if c.Checkpoint.Dir != "" {
		opts = append(opts, boss.WithCheckpointDir(c.Checkpoint.Dir))
	}
	if c.Checkpoint.Cleanup != nil {
		opts = append(opts, boss.WithCheckpointCleanup(*c.Checkpoint.Cleanup))
	}
	if c.Report.TrainPath != "" {
		opts = append(opts, boss.WithTrainReport(c.Report.TrainPath))
	} else if c.Report.TrainEstimate {
		opts = append(opts, boss.WithTrainEstimate(true))
	}

	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}
	return append(opts, boss.WithLogger(logger)), nil
}

// Logger builds a production zap logger at the configured level, or a no-op
// logger when no level is set.
func (c *Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	if lvl == nil {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.Level = *lvl
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "config: build logger")
	}
	return logger, nil
}

func (c *Config) level() (*zap.AtomicLevel, error) {
	if c.Log.Level == "" {
		return nil, nil
	}
	lvl, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "log level %q", c.Log.Level)
	}
	return &lvl, nil
}

// strategy resolves the strategy name; unset means contract when a time
// limit is given, exhaustive otherwise.
func (c *Config) strategy() (boss.Strategy, error) {
	if c.Strategy == "" {
		if c.TimeLimit.Duration > 0 {
			return boss.Contract, nil
		}
		return boss.Exhaustive, nil
	}
	for _, s := range []boss.Strategy{boss.Exhaustive, boss.Contract, boss.Random, boss.RandomAggregated} {
		if s.String() == c.Strategy {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrStrategy, "%q", c.Strategy)
}

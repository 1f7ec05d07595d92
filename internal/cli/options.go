// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dolittle007/ont-chopper/core/adapter"
	"github.com/dolittle007/ont-chopper/core/peaks"
	"github.com/dolittle007/ont-chopper/internal/cmdutil"
)

// EnvPrefix prefixes environment overrides, e.g. CHOPPER_BATCH_SIZE.
const EnvPrefix = "CHOPPER"

// Options holds every setting of a run. The mapstructure keys are the flag
// names, so flags, environment and config files share one vocabulary.
type Options struct {
	// Input / output
	Input        string `mapstructure:"input"`
	Unclassified string `mapstructure:"unclassified"`
	Rescued      string `mapstructure:"rescued"`

	// Detection
	PhredThreshold int     `mapstructure:"phred-threshold"`
	MinAdapterLen  int     `mapstructure:"min-adapter-len"`
	MaxAdapterLen  int     `mapstructure:"max-adapter-len"`
	PolyALen       int     `mapstructure:"polya-len"`
	Method         string  `mapstructure:"method"`
	MinPerc        float64 `mapstructure:"minperc"`
	Window         int     `mapstructure:"window"`

	// Filtering
	MinSeqLen int `mapstructure:"min-seq-len"`

	// Performance
	Threads   int `mapstructure:"threads"`
	BatchSize int `mapstructure:"batch-size"`

	// Reporting
	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`
}

// UsageError marks a bad flag, config value or missing argument.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// RegisterFlags installs all run flags on fs. --config is registered by the
// caller since it is not part of Options.
func RegisterFlags(fs *pflag.FlagSet) {
	d := adapter.DefaultParams()

	fs.StringP("input", "i", "", "input FASTQ (plain or gzip, '-' for stdin) [*]")
	fs.StringP("unclassified", "u", "", "output FASTQ for reads without adapters [*]")
	fs.StringP("rescued", "r", "", "output FASTQ for segments cut out of chimeric reads [*]")

	fs.IntP("phred-threshold", "s", d.PhredThreshold, "phred score at or below which a base counts as low quality")
	fs.Int("min-adapter-len", d.MinAdapterLen, "minimum length of an internal low-quality run")
	fs.Int("max-adapter-len", d.MaxAdapterLen, "maximum distance of a poly-A run from the 3' end")
	fs.Int("polya-len", d.PolyALen, "minimum poly-A run length for a terminal adapter")
	fs.String("method", string(d.Method), "interior detection method: quality | valley")
	fs.Float64("minperc", peaks.DefaultMinPerc, "valley method: minimum percent change of a peak/valley")
	fs.Int("window", peaks.DefaultWindow, "valley method: peak/valley window half-width")

	fs.Int("min-seq-len", 150, "segments must be longer than this to be rescued")

	fs.IntP("threads", "t", 1, "number of worker threads (0 = all CPUs)")
	fs.IntP("batch-size", "b", 10000, "reads held in memory per batch")

	fs.String("log-level", "info", "log level: trace | debug | info | warn | error")
	fs.BoolP("quiet", "q", false, "disable the progress bar")
}

// Load layers flags over environment over the optional config file over
// flag defaults, decodes the result and validates it.
func Load(v *viper.Viper, fs *pflag.FlagSet, configFile string) (Options, error) {
	var o Options
	if err := v.BindPFlags(fs); err != nil {
		return o, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return o, usagef("read config %s: %w", configFile, err)
		}
	}
	if err := v.Unmarshal(&o); err != nil {
		return o, usagef("decode settings: %w", err)
	}
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

// Validate checks ranges and required values. Every failure is a
// *UsageError.
func (o Options) Validate() error {
	var errs []error
	req := func(v, name string) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("--%s is required", name))
		}
	}
	atLeast := func(v, lo int, name string) {
		if v < lo {
			errs = append(errs, fmt.Errorf("--%s must be ≥ %d (got %d)", name, lo, v))
		}
	}

	req(o.Input, "input")
	req(o.Unclassified, "unclassified")
	req(o.Rescued, "rescued")

	atLeast(o.PhredThreshold, 0, "phred-threshold")
	atLeast(o.MinAdapterLen, 1, "min-adapter-len")
	atLeast(o.MaxAdapterLen, 1, "max-adapter-len")
	atLeast(o.PolyALen, 1, "polya-len")
	atLeast(o.Window, 1, "window")
	atLeast(o.MinSeqLen, 0, "min-seq-len")
	atLeast(o.Threads, 0, "threads")
	atLeast(o.BatchSize, 1, "batch-size")

	if o.MinPerc < 0 {
		errs = append(errs, fmt.Errorf("--minperc must be ≥ 0 (got %g)", o.MinPerc))
	}
	switch adapter.Method(o.Method) {
	case adapter.MethodQuality, adapter.MethodValley:
	default:
		errs = append(errs, fmt.Errorf("--method must be quality or valley (got %q)", o.Method))
	}
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		errs = append(errs, err)
	}
	// each output owns its file; two "-" writers would both close stdout
	if o.Unclassified != "" && o.Unclassified == o.Rescued {
		errs = append(errs, errors.New("--unclassified and --rescued must be different files (at most one may be '-')"))
	}

	if len(errs) > 0 {
		return &UsageError{Err: errors.Join(errs...)}
	}
	return nil
}

// Level is the parsed log level. Call after Validate.
func (o Options) Level() slog.Level {
	lv, _ := cmdutil.ParseLevel(o.LogLevel)
	return lv
}

// AdapterParams converts the detection settings.
func (o Options) AdapterParams() adapter.Params {
	p := adapter.DefaultParams()
	p.PhredThreshold = o.PhredThreshold
	p.MinAdapterLen = o.MinAdapterLen
	p.MaxAdapterLen = o.MaxAdapterLen
	p.PolyALen = o.PolyALen
	p.Method = adapter.Method(o.Method)
	p.MinPerc = o.MinPerc
	p.Window = o.Window
	return p
}

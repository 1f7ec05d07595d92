// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dolittle007/ont-chopper/internal/cli"
	"github.com/dolittle007/ont-chopper/internal/cmdutil"
	"github.com/dolittle007/ont-chopper/internal/pipeline"
	"github.com/dolittle007/ont-chopper/internal/version"
	"github.com/dolittle007/ont-chopper/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// NewRootCommand builds the chopper command. Help and version go to stdout;
// logs and the progress bar go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "chopper -i reads.fq -u unclassified.fq -r rescued.fq",
		Short: "Split chimeric ONT reads at internal adapters and trim poly-A tails",
		Long: `chopper finds adapter remnants inside nanopore reads by their low basecall
quality (or as quality valleys between peaks) and at the 3' end by poly-A
runs. Reads without adapters are written unchanged to --unclassified; the
sequence between adapters is written to --rescued as "start:end|id" reads.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &cli.UsageError{Err: fmt.Errorf("unexpected arguments %q", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := cli.Load(viper.New(), cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), opts, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})
	cli.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "optional config file (yaml, toml or json)")
	return cmd
}

func execute(ctx context.Context, opts cli.Options, stderr io.Writer) error {
	log := cmdutil.NewLogger(stderr, opts.Level())
	log.Info("start", "input", opts.Input, "method", opts.Method, "threads", opts.Threads, "version", version.Version)

	sinks, err := writers.Open(opts.Unclassified, opts.Rescued)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		Threads:   opts.Threads,
		BatchSize: opts.BatchSize,
		MinSeqLen: opts.MinSeqLen,
		Params:    opts.AdapterParams(),
		Logger:    log,
	}
	if !opts.Quiet {
		cfg.Progress = stderr
	}

	st, err := pipeline.Run(ctx, cfg, opts.Input, sinks.Unclassified, sinks.Rescued)
	if cerr := sinks.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	log.Info("done",
		"reads", st.Reads,
		"unclassified", st.Unclassified,
		"rescued", st.Rescued,
		"segments", st.Segments,
		"dropped", st.Dropped,
	)
	return err
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	var ue *cli.UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ue):
		return ExitUsage
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case writers.IsBrokenPipe(err):
		return ExitOK
	}
	return ExitRuntime
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(parent)
	code := ExitCode(err)
	if err != nil && code != ExitOK {
		_, _ = fmt.Fprintln(stderr, "chopper:", err)
		if code == ExitUsage {
			_, _ = fmt.Fprintln(stderr, "Run 'chopper --help' for usage.")
		}
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

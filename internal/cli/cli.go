package cli

import (
	"log/slog"
	"rgbsteg/internal/logging"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	cpuProfile    string
	memProfileDir string
	verbose       bool

	profiler *Profiler
}

func (o *rootOpts) logger(cmd *cobra.Command) *logging.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

func RootCommand() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "rgbsteg",
		Short:         "Hide data in the low order bits of image channels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.cpuProfile == "" && opts.memProfileDir == "" {
				return nil
			}
			profiler, err := StartProfiler(opts.cpuProfile, opts.memProfileDir)
			if err != nil {
				return err
			}
			opts.profiler = profiler
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.profiler == nil {
				return nil
			}
			return opts.profiler.Stop()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Write a CPU profile to this file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump periodic heap profiles into this directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log timing stats and debug information to stderr")

	rootCmd.AddCommand(ImageCommands(opts), ServeAppCommand())
	return rootCmd
}

func Execute() error {
	return RootCommand().Execute()
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hicpipe/hicpipe/internal/banner"
	"github.com/hicpipe/hicpipe/internal/cli"
	"github.com/hicpipe/hicpipe/internal/config"
	"github.com/hicpipe/hicpipe/internal/engine"
	"github.com/hicpipe/hicpipe/internal/exitcode"
	"github.com/hicpipe/hicpipe/internal/genome"
	"github.com/hicpipe/hicpipe/internal/logging"
	"github.com/hicpipe/hicpipe/internal/rundir"
	"github.com/hicpipe/hicpipe/internal/samples"
	sighandler "github.com/hicpipe/hicpipe/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	f := &cli.Flags{}
	exit := exitcode.Success

	rootCmd := &cobra.Command{
		Use:     "hicpipe [flags] <genome>",
		Short:   "Hi-C contact matrix pipeline launcher",
		Long:    "hicpipe resolves the pipeline configuration, prepares the run directory and launches the Hi-C workflow engine.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, f); err != nil {
				exit = exitcode.Error
				return err
			}

			genomeArg := ""
			if len(args) > 0 {
				genomeArg = args[0]
			}

			code, err := run(cmd, f, genomeArg)
			exit = code
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, f)
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		if exit == exitcode.Success {
			exit = exitcode.Error
		}
	}

	logging.Debug("exit: " + exitcode.Name(exit))
	os.Exit(exit)
}

// run resolves the configuration, prepares the run directory and launches
// the workflow engine. It returns the process exit code alongside the error.
func run(cmd *cobra.Command, f *cli.Flags, genomeArg string) (int, error) {
	// -------------------------------------------------------------------
	// Resolve the configuration: built-in defaults < defaults file <
	// user config < CLI overrides. The result is immutable from here on.
	// -------------------------------------------------------------------
	overrides := cli.BuildOverrides(cmd, f, genomeArg)
	cfg, err := config.LoadWithPrecedence(f.DefaultsFile, f.ConfigFile, overrides)
	if err != nil {
		return exitcode.Error, err
	}

	logging.SetVerbose(cfg.Verbose)

	if err := config.Validate(cfg); err != nil {
		return exitcode.ConfigInvalid, err
	}
	if err := genome.ValidateEnzyme(cfg.Enzyme); err != nil {
		return exitcode.ConfigInvalid, err
	}
	if cfg.Genome == "" {
		return exitcode.Error, fmt.Errorf("no genome specified (pass it as the positional argument)")
	}
	if cfg.Indir == "" {
		return exitcode.Error, fmt.Errorf("no input directory specified (--input-dir)")
	}
	if cfg.Outdir == "" {
		return exitcode.Error, fmt.Errorf("no output directory specified (--output-dir)")
	}

	if m, err := config.ToMap(cfg); err == nil {
		logging.PrintConfig("Config", m)
		if defaults, derr := config.ToMap(config.NewDefaultConfig()); derr == nil {
			logging.PrintConfig("Changed from defaults", config.Diff(m, defaults))
		}
	}

	// -------------------------------------------------------------------
	// Genome configuration
	// -------------------------------------------------------------------
	maindir := homeDir()
	org, err := genome.Load(cfg.Genome, maindir)
	if err != nil {
		return exitcode.GenomeNotFound, err
	}
	if err := org.Validate(); err != nil {
		return exitcode.GenomeNotFound, err
	}
	logging.PrintConfig("Genome", org.Data)

	// -------------------------------------------------------------------
	// Input samples
	// -------------------------------------------------------------------
	infiles, err := samples.Discover(cfg.Indir, cfg.Ext)
	if err != nil {
		return exitcode.Error, err
	}
	if len(infiles) == 0 {
		return exitcode.NoSamples, fmt.Errorf("no %s files found in %s", cfg.Ext, cfg.Indir)
	}
	names := samples.Names(infiles, cfg.Ext, cfg.Reads)
	paired, err := samples.IsPaired(infiles, cfg.Ext, cfg.Reads)
	if err != nil {
		return exitcode.Error, err
	}
	if !paired {
		return exitcode.NoSamples, fmt.Errorf("input files in %s do not form complete read pairs", cfg.Indir)
	}

	if cfg.MergeSamples {
		entries, err := samples.ParseSheet(*cfg.SampleSheet)
		if err != nil {
			return exitcode.ConfigInvalid, err
		}
		logging.Debug(fmt.Sprintf("sample sheet: %d entries", len(entries)))
	}

	// -------------------------------------------------------------------
	// Run directory and scratch space
	// -------------------------------------------------------------------
	if err := rundir.Setup(cfg.Outdir); err != nil {
		return exitcode.Error, err
	}
	backup, err := rundir.WriteConfigBackup(cfg.Outdir, cfg)
	if err != nil {
		return exitcode.Error, err
	}

	logging.Info("resolved config written to " + backup)

	tmp, err := rundir.MakeTempDir(cfg.Tempdir, os.TempDir())
	if err != nil {
		return exitcode.Error, err
	}
	defer os.RemoveAll(tmp)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("interrupt received, cleaning up")
		os.RemoveAll(tmp)
	})

	// -------------------------------------------------------------------
	// Engine invocation
	// -------------------------------------------------------------------
	banner.PrintStartupBanner(cfg.Genome, cfg.Indir, cfg.Outdir, len(names), paired)

	inv := engine.NewInvocation(cfg, filepath.Join(maindir, "workflows", "HiC", "Snakefile"), backup, f.DryRun)
	logging.Debug("engine: snakemake " + strings.Join(inv.Args(), " "))

	logging.Stage("Workflow engine")
	start := time.Now()
	runner := &engine.ExecRunner{Env: []string{"TMPDIR=" + tmp}}
	if err := runner.Run(ctx, inv); err != nil {
		banner.PrintErrorBanner(err.Error())
		if ctx.Err() != nil {
			return exitcode.Interrupted, err
		}
		return exitcode.EngineFailed, err
	}

	if err := rundir.CleanLogs(cfg.Outdir); err != nil {
		logging.Warn(err.Error())
	}

	banner.PrintCompletionBanner(int(time.Since(start).Seconds()))
	logging.Success("run directory: " + cfg.Outdir)
	return exitcode.Success, nil
}

// homeDir locates the hicpipe installation, which holds the workflow
// definition and the registered organism configs. HICPIPE_HOME overrides
// the directory of the executable.
func homeDir() string {
	if dir := os.Getenv("HICPIPE_HOME"); dir != "" {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

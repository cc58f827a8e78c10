package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/config"
	"github.com/bobmcallan/uac-mcp/internal/mcp"
)

type cliOptions struct {
	configFiles []string
	transport   string
	port        int
	logLevel    string
	showVersion bool
}

func main() {
	config.LoadVersionFromFile()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "uac-mcp",
		Short:         "MCP server exposing the Unity API Communicator as tools",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "uac-mcp version %s\n", config.GetFullVersion())
				return nil
			}
			return serve(cmd.Context(), opts, changedFlags(cmd.Flags()))
		},
	}

	root.PersistentFlags().StringArrayVarP(&opts.configFiles, "config", "c", nil, "configuration file path (repeatable, later files win)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.Flags().StringVar(&opts.transport, "transport", "", "MCP transport: stdio or http")
	root.Flags().IntVarP(&opts.port, "port", "p", 0, "HTTP transport port (overrides config)")
	root.Flags().BoolVar(&opts.showVersion, "version", false, "print version information")

	root.AddCommand(
		newToolsCmd(opts),
		newStatusCmd(opts),
	)
	return root
}

// changedFlags lists the flags set on the command line as name=value.
func changedFlags(flags *pflag.FlagSet) []string {
	var set []string
	flags.Visit(func(f *pflag.Flag) {
		set = append(set, f.Name+"="+f.Value.String())
	})
	return set
}

// loadConfig resolves config files, env and flags into a validated config.
func loadConfig(opts *cliOptions) (*config.Config, error) {
	files := opts.configFiles
	if len(files) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				files = append(files, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(files...)
	if err != nil {
		return nil, err
	}
	config.ApplyFlagOverrides(cfg, opts.transport, opts.port, opts.logLevel)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, opts *cliOptions, flags []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := common.NewLoggerFromConfig(cfg.Logging)

	logger.Info().
		Str("version", config.GetVersion()).
		Str("transport", cfg.Server.Transport).
		Str("editor", cfg.Remote.BaseURL()).
		Str("config_files", fmt.Sprintf("%v", opts.configFiles)).
		Str("flags", fmt.Sprintf("%v", flags)).
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := mcp.NewServer(ctx, cfg, logger)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to initialize MCP server")
		return err
	}

	switch cfg.Server.Transport {
	case config.TransportHTTP:
		err = srv.ServeHTTP(ctx)
	default:
		err = srv.ServeStdio()
	}
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("transport failed")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried before the working directory.
func configSearchPaths() []string {
	candidates := []string{
		"uac-mcp.toml",
		"config/uac-mcp.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "uac-mcp.toml"),
		filepath.Join(binDir, "config", "uac-mcp.toml"),
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}

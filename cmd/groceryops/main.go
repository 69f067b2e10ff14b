package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/internal/logging"
)

const (
	envDBURL     = "GROCERYOPS_DB_URL"
	envLogFormat = "GROCERYOPS_LOG_FORMAT"
	envLogLevel  = "GROCERYOPS_LOG_LEVEL"
	defaultDBURL = "sqlite:groceryops.db"
)

// logFile is the log output opened for this invocation.
var logFile *logging.LogFile

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groceryops",
		Short:   "Grocery list stack CLI",
		Long:    "Manage the grocery list deployment on DigitalOcean (managed MongoDB and App Platform).",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv(envDBURL)
	if defaultDB == "" {
		defaultDB = defaultDBURL
	}
	cmd.PersistentFlags().StringP("file", "f", stackcfg.DefaultConfigPath, "Path to groceryops.yml")
	cmd.PersistentFlags().String("db-url", defaultDB, "Run history database URL (env "+envDBURL+") (sqlite:/path/to.db | memory:)")
	cmd.PersistentFlags().String("log-format", "", "Log format (human|text|json) (env "+envLogFormat+")")
	cmd.PersistentFlags().String("log-level", "", "Log level (DEBUG|INFO|WARN|ERROR) (env "+envLogLevel+")")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		l, err := setupLogger(c)
		if err != nil {
			return err
		}
		l = l.With("runId", uuid.NewString())
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdGraph())
	cmd.AddCommand(newCmdStack())
	return cmd
}

// setupLogger builds the logger from the logging section of the config
// file, overridden by flags and then by environment variables.
func setupLogger(c *cobra.Command) (logging.Logger, error) {
	cfg := logConfigFromFile(c)

	if f := findFlag(c, "log-format"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	if f := findFlag(c, "log-level"); f != nil && f.Changed {
		cfg.Level = f.Value.String()
	}
	if env := os.Getenv(envLogFormat); env != "" { // env overrides flag
		cfg.Format = env
	}
	if env := os.Getenv(envLogLevel); env != "" {
		cfg.Level = env
	}

	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if err := logging.CleanupOldLogFiles(cfg.Dir, cfg.RetentionDays); err != nil {
		return nil, err
	}
	lf, err := logging.NewLogFile(&cfg)
	if err != nil {
		return nil, err
	}
	logFile = lf
	return logging.NewWithWriter(cfg.Format, level, writerOrStderr(lf.Writer()))
}

// logConfigFromFile reads the logging section of the config file. A
// missing or broken file yields defaults; commands report file errors
// themselves.
func logConfigFromFile(c *cobra.Command) logging.LogConfig {
	cfg := logging.LogConfig{Output: "-", Dir: defaultLogDir()}
	root, err := stackcfg.Load(configPath(c))
	if err != nil {
		return cfg
	}
	l := root.Logging
	cfg.Format = l.Format
	cfg.Level = l.Level
	cfg.RetentionDays = l.RetentionDays
	if l.Output != "" {
		cfg.Output = l.Output
	}
	if l.Dir != "" {
		cfg.Dir = l.Dir
	}
	return cfg
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".groceryops", "logs")
}

func writerOrStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// findFlag looks a flag up through the command and its parents.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// configPath returns the --file flag value.
func configPath(cmd *cobra.Command) string {
	if f := findFlag(cmd, "file"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return stackcfg.DefaultConfigPath
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if logFile != nil {
		defer logFile.Close()
	}
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		code := 1
		var exitErr ExitCodeError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(code)
	}
}

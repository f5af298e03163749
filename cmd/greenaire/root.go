package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/greenaire/site/internal/config"
	"github.com/greenaire/site/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// logFileName is the live log file inside log.dir.
const logFileName = "greenaire.log"

type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "greenaire",
		Short:         "Green Aire marketing site server and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", config.DefaultPath, "config file path")

	root.AddCommand(
		newServeCmd(opts),
		newContactCmd(opts),
		newConfigCmd(opts),
		newLogsCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildLogger logs JSON lines to stdout and, when log.dir is set, to a rotating file.
func buildLogger(component string, cfg config.LogConfig, stdout io.Writer) (*logging.Logger, func() error, error) {
	writers := []io.Writer{stdout}
	closer := func() error { return nil }
	if cfg.Dir != "" {
		fw, err := logging.NewFileWriter(cfg.Dir, logFileName, cfg.MaxSizeMB, cfg.MaxFiles)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, fw)
		closer = fw.Close
	}
	return logging.New(component, logging.ParseLevel(cfg.Level), writers...), closer, nil
}

func logFilePath(cfg config.LogConfig) string {
	return filepath.Join(cfg.Dir, logFileName)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of greenaire",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "greenaire %s\n", Version)
		},
	}
}

func stderr(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stderr
	}
	return cmd.ErrOrStderr()
}

// Package cli wires the arithmetic library, config and MCP server into the
// mcp-go-arith command.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sunfmin/mcp-go-arith/pkg/config"
	"github.com/sunfmin/mcp-go-arith/pkg/logger"
)

type options struct {
	configPath string
	debug      bool
	overflow   string

	cfg     config.Config
	cleanup func() error
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	cmd := NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintln(os.Stderr, red("Error:"), err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "mcp-go-arith",
		Short:         "Integer arithmetic as a library, CLI and MCP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.setup()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.cleanup != nil {
				return opts.cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.overflow, "overflow", "", "overflow policy: wrap, saturate or fail")

	cmd.AddCommand(
		serveCmd(opts, version),
		calcCmd(opts),
		convertCmd(),
		configCmd(opts),
		versionCmd(version),
	)
	return cmd
}

func (o *options) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.debug {
		cfg.Log.Debug = true
	}
	if o.overflow != "" {
		cfg.Overflow = o.overflow
		if _, err := cfg.Policy(); err != nil {
			return err
		}
	}

	cleanup, err := logger.Setup(cfg.Logger())
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.cleanup = cleanup
	return nil
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

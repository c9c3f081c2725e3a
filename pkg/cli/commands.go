package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sunfmin/mcp-go-arith/pkg/arith"
	"github.com/sunfmin/mcp-go-arith/pkg/config"
	"github.com/sunfmin/mcp-go-arith/pkg/logger"
	"github.com/sunfmin/mcp-go-arith/pkg/mcp"
)

func serveCmd(opts *options, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the arithmetic tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := mcp.NewMCPArithServer(opts.cfg, version)
			if err != nil {
				return err
			}

			logger.Info("Starting MCP server", "name", opts.cfg.Name, "version", version, "overflow", s.Calculator().Policy)
			if err := server.ServeStdio(s.Server()); err != nil {
				logger.Error("Server error", "error", err)
				return errors.Wrap(err, "serve stdio")
			}
			return nil
		},
	}
}

func calcCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> <a> <b>",
		Short: "Apply add, subtract, multiply or divide to two integers",
		Long: "Apply an operation to two integers. <op> is a name or symbol " +
			"(add/+, subtract/-, multiply/*, divide//). Use -- before negative operands.",
		Example: "  mcp-go-arith calc divide 10 2\n  mcp-go-arith calc -- - -3 4",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := arith.ParseOp(args[0])
			if err != nil {
				return err
			}
			a, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[2])
			if err != nil {
				return err
			}

			policy, err := opts.cfg.Policy()
			if err != nil {
				return err
			}

			result, err := arith.NewCalculator(policy).Compute(op, a, b)
			if err != nil {
				return err
			}
			if result.Overflowed {
				yellow := color.New(color.FgYellow).SprintfFunc()
				fmt.Fprintln(cmd.ErrOrStderr(), yellow("warning: %d %s %d overflowed (%s)", a, op.Symbol(), b, policy))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Value)
			return err
		},
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <inches>",
		Short: "Convert inches to millimeters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inches, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "invalid length %q", args[0])
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g mm\n", arith.InchToMillimeters(inches))
			return err
		},
	}
}

func configCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	c.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write a config file with default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.Default()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return err
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name     = %s\n", opts.cfg.Name)
			fmt.Fprintf(out, "overflow = %s\n", opts.cfg.Overflow)
			fmt.Fprintf(out, "debug    = %t\n", opts.cfg.Log.Debug)
			_, err := fmt.Fprintf(out, "log file = %s\n", opts.cfg.Log.File)
			return err
		},
	})

	return c
}

func parseOperand(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return v, nil
}

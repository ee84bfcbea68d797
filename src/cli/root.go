// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/config"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/rpc/params"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/logger"
	"github.com/spf13/cobra"
)

// ErrMethodRequired is returned when no RPC method name is supplied.
var ErrMethodRequired = errors.New("method name is required")

// options holds the flags of a single command tree.
type options struct {
	configPath string
	request    bool
	id         string
	pretty     bool
	verbose    bool
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := newRootCmd(version, log)
	rootCmd.SetArgs(os.Args[1:])
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Flags must precede METHOD so that
// parameters such as "-1" are not mistaken for flags.
func newRootCmd(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	exe := posix.ExecutableName("rpc-param-converter")

	rootCmd := &cobra.Command{
		Use:   exe + " [flags] METHOD [PARAM...]",
		Short: "Convert command-line parameters into typed JSON-RPC parameters",
		Long: `Converts positional parameters for a JSON-RPC method into the JSON array
sent as the request "params" member. Parameters listed in the conversion
table are parsed as JSON (numbers, booleans, null, arrays, objects); all
other parameters are sent as strings.`,
		Example: fmt.Sprintf(`  %[1]s getblockhash 5
  %[1]s sendtoaddress 1AddrXYZ 1.5
  %[1]s --request createmultisig 2 '["key1","key2"]'
  %[1]s rules sendmany`, exe),
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, log, args)
		},
	}

	// "help" is an RPC method of its own; free the name for conversion.
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().SetInterspersed(false)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (JSON or YAML, default: $"+config.EnvConfigFile+")")
	rootCmd.Flags().BoolVarP(&opts.request, "request", "r", false, "print the full JSON-RPC request instead of the params array")
	rootCmd.Flags().StringVar(&opts.id, "id", "", "request id used with --request (default from config)")
	rootCmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "indent JSON output")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log which parameters were parsed as JSON")

	rootCmd.AddCommand(newRulesCmd(opts))
	return rootCmd
}

// loadConfig loads the configuration named by --config, or by the
// environment when the flag is empty.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, opts *options, log logger.Logger, args []string) error {
	if len(args) == 0 {
		return ErrMethodRequired
	}
	method, raw := args[0], args[1:]

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.Log.Format == logger.FormatJSON {
		log = logger.New(logger.FormatJSON, cmd.ErrOrStderr())
	}

	conv := params.NewConverter(cfg.Table())
	out, err := conv.ConvertJSON(method, raw)
	if err != nil {
		return err
	}

	if opts.verbose {
		for _, i := range conv.Table().Indices(method) {
			if i < len(raw) {
				log.Printf("%s parameter %d parsed as JSON: %s", method, i, raw[i])
			}
		}
	}

	if opts.request {
		id := opts.id
		if id == "" {
			id = cfg.JSONRPC.ID
		}
		if out, err = jsonrpc.NewRequest(method, jsonrpc.ParseID(id), out, cfg.JSONRPC.Version); err != nil {
			return err
		}
	}

	return writeJSON(cmd, out, opts.pretty || cfg.Output.Pretty)
}

func writeJSON(cmd *cobra.Command, data []byte, pretty bool) error {
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("failed to indent output: %w", err)
		}
		data = buf.Bytes()
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

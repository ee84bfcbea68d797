// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/rpc/params"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newRulesCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules [METHOD]",
		Short: "List the parameter positions parsed as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			rules := cfg.Table().Rules()
			if len(args) == 1 {
				rules = filterRules(rules, args[0])
				if len(rules) == 0 && !asJSON {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "No conversion rules for %s; all parameters are sent as strings.\n", args[0])
					return err
				}
			}

			if asJSON {
				return writeRulesJSON(cmd.OutOrStdout(), rules)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderRulesTable(rules))
			return err
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print rules as JSON")
	return cmd
}

func filterRules(rules []params.Rule, method string) []params.Rule {
	out := make([]params.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

func writeRulesJSON(w io.Writer, rules []params.Rule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rules)
}

// renderRulesTable renders one markdown row per method with its flagged
// positions. rules must be sorted by method.
func renderRulesTable(rules []params.Rule) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Method", "JSON Parameters"})

	var rows [][]string
	for _, r := range rules {
		idx := strconv.Itoa(r.Index)
		if n := len(rows); n > 0 && rows[n-1][0] == r.Method {
			rows[n-1][1] += ", " + idx
			continue
		}
		rows = append(rows, []string{r.Method, idx})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

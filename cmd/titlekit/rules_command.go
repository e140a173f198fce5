package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"titlekit/internal/episodetitle"
	"titlekit/internal/logging"
	"titlekit/internal/pipeline"
)

func newRulesCommand() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the resolved rule execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := pipeline.New(episodetitle.Rules(), logging.NewNop())
			if err != nil {
				return err
			}

			if jsonFlag {
				type ruleInfo struct {
					Position  int      `json:"position"`
					ID        string   `json:"id"`
					DependsOn []string `json:"depends_on,omitempty"`
				}
				infos := make([]ruleInfo, 0, len(engine.Order()))
				for i, r := range engine.Order() {
					infos = append(infos, ruleInfo{Position: i + 1, ID: r.ID(), DependsOn: r.DependsOn()})
				}
				return writeJSON(cmd, infos)
			}

			rows := make([][]string, 0, len(engine.Order()))
			for i, r := range engine.Order() {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					r.ID(),
					strings.Join(r.DependsOn(), ", "),
				})
			}
			out := renderTable(
				[]string{"#", "Rule", "Depends On"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the rule order as JSON")
	return cmd
}

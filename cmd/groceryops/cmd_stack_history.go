package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/usecase/stack"
)

func newCmdStackHistory() *cobra.Command {
	var limit int
	var all, asJSON bool
	c := &cobra.Command{
		Use:   "history",
		Short: "List recorded stack runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &stack.HistoryInput{Limit: limit}
			if !all {
				root, _, err := loadStackConfig(cmd)
				if err != nil {
					return err
				}
				in.Stack = root.StackRef().Stack
			}
			repos, err := buildRepositories(cmd)
			if err != nil {
				return err
			}
			u := &stack.UseCase{Repos: &stack.Repos{Run: repos.Run}}
			out, err := u.History(cmd.Context(), in)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Runs)
			}
			if len(out.Runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tOPERATION\tSTACK\tRESULT\tSTARTED\tELAPSED\tCHANGES")
			for _, r := range out.Runs {
				fmt.Fprintf(tw, "%s\t%s\t%s/%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Operation, r.Project, r.Stack, r.Result,
					r.StartedAt.Local().Format(time.DateTime), r.Elapsed().Round(time.Second), formatSummary(r.Summary))
			}
			return tw.Flush()
		},
	}
	c.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")
	c.Flags().BoolVar(&all, "all", false, "Show runs of every stack")
	c.Flags().BoolVar(&asJSON, "json", false, "Print runs as JSON")
	return c
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/usecase/stack"
)

// newCmdGraph prints the declaration graph of the deployment.
func newCmdGraph() *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "graph",
		Short: "Show resources in declaration order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "dot" {
				return fmt.Errorf("unsupported format: %s", format)
			}
			root, err := stackcfg.Load(configPath(cmd))
			if err != nil {
				return err
			}
			u := &stack.UseCase{}
			out, err := u.Graph(cmd.Context(), &stack.GraphInput{Config: root, DOT: format == "dot"})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if format == "dot" {
				fmt.Fprint(w, out.DOT)
				return nil
			}
			for i, n := range out.Nodes {
				deps := "-"
				if len(n.DependsOn) > 0 {
					deps = strings.Join(n.DependsOn, ",")
				}
				fmt.Fprintf(w, "%d. %s (%s) <- %s\n", i+1, n.Name, n.Kind, deps)
			}
			return nil
		},
	}
	c.Flags().StringVar(&format, "format", "text", "Output format (text|dot)")
	return c
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/usecase/stack"
)

// newCmdConfig returns a command that reads and validates the configuration.
func newCmdConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Read and validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &stack.UseCase{}
			out, err := u.Config(cmd.Context(), &stack.ConfigInput{Path: configPath(cmd)})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "project=%s stack=%s protection=%s\n", out.Stack.Project, out.Stack.Stack, protectionName(string(out.Protection)))
			keys := make([]string, 0, len(out.Values))
			for k := range out.Values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "  %s=%s\n", k, out.Values[k])
			}
			return nil
		},
	}
}

func protectionName(p string) string {
	if p == "" {
		return "none"
	}
	return p
}

package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/usecase/stack"
)

func newCmdStackOutputs() *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "outputs",
		Short: "Show the stack outputs",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root, resourceID, err := loadStackConfig(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "stack.outputs", resourceID)
			defer func() { cleanup(err) }()

			u, err := buildStackUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Outputs(ctx, &stack.OutputsInput{Config: root})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Outputs)
			}
			keys := make([]string, 0, len(out.Outputs))
			for k := range out.Outputs {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, out.Outputs[k])
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "Print outputs as JSON")
	return c
}

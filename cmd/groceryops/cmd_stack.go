package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/config/stackcfg"
	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/internal/terminal"
	"github.com/kompox/groceryops/usecase/stack"
)

// newCmdStack returns the parent command for engine operations.
func newCmdStack() *cobra.Command {
	c := &cobra.Command{
		Use:   "stack",
		Short: "Stack related commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help if no subcommand provided
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.PersistentFlags().String("backend-url", "", "Pulumi backend URL (default from PULUMI_BACKEND_URL or the logged in backend)")
	c.AddCommand(newCmdStackPreview())
	c.AddCommand(newCmdStackUp())
	c.AddCommand(newCmdStackRefresh())
	c.AddCommand(newCmdStackDestroy())
	c.AddCommand(newCmdStackOutputs())
	c.AddCommand(newCmdStackHistory())
	return c
}

// loadStackConfig loads the config file and resolves the stack resource ID
// used in span logs.
func loadStackConfig(cmd *cobra.Command) (*stackcfg.Root, string, error) {
	root, err := stackcfg.Load(configPath(cmd))
	if err != nil {
		return nil, "", err
	}
	ref := root.StackRef()
	return root, ref.Project + "/" + ref.Stack, nil
}

// confirm asks for confirmation unless yes is set. Without a terminal the
// command fails so scripts must opt in with --yes.
func confirm(cmd *cobra.Command, yes bool, prompt string) error {
	if yes {
		return nil
	}
	ok, err := terminal.ConfirmTerminal(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
	if errors.Is(err, terminal.ErrNotInteractive) {
		return fmt.Errorf("%w: pass --yes to run without a terminal", model.ErrConfirmationNeeded)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ExitCodeError{Code: 2, Err: errors.New("cancelled")}
	}
	return nil
}

func printRun(w io.Writer, op model.StackOperation, out *stack.RunOutput) {
	fmt.Fprintf(w, "%s %s/%s: %s\n", op, out.Stack.Project, out.Stack.Stack, formatSummary(out.Summary))
	if out.LiveURL != "" {
		fmt.Fprintf(w, "%s: %s\n", model.ExportLiveURL, out.LiveURL)
	}
	if out.RunID != "" {
		fmt.Fprintf(w, "run: %s\n", out.RunID)
	}
}

func formatSummary(s model.ChangeSummary) string {
	if len(s) == 0 {
		return "no changes"
	}
	ops := make([]string, 0, len(s))
	for op := range s {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	var out string
	for i, op := range ops {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", op, s[op])
	}
	return out
}

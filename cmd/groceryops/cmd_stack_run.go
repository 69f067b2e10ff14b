package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/domain/model"
	"github.com/kompox/groceryops/usecase/stack"
)

func newCmdStackPreview() *cobra.Command {
	var refresh bool
	c := &cobra.Command{
		Use:   "preview",
		Short: "Preview changes to the stack",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root, resourceID, err := loadStackConfig(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "stack.preview", resourceID)
			defer func() { cleanup(err) }()

			u, err := buildStackUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Preview(ctx, &stack.PreviewInput{Config: root, Progress: cmd.OutOrStdout(), Refresh: refresh})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), model.OpPreview, out)
			return nil
		},
	}
	c.Flags().BoolVar(&refresh, "refresh", false, "Refresh state before previewing")
	return c
}

func newCmdStackUp() *cobra.Command {
	var refresh, yes bool
	c := &cobra.Command{
		Use:   "up",
		Short: "Create or update the stack's resources",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root, resourceID, err := loadStackConfig(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "stack.up", resourceID)
			defer func() { cleanup(err) }()

			// Refuse before prompting for an operation protection blocks.
			if err = root.Deployment().CheckProtection(model.OpUp); err != nil {
				return err
			}
			if err = confirm(cmd, yes, fmt.Sprintf("Apply changes to stack %s?", resourceID)); err != nil {
				return err
			}
			u, err := buildStackUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Up(ctx, &stack.UpInput{Config: root, Progress: cmd.OutOrStdout(), Refresh: refresh})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), model.OpUp, out)
			return nil
		},
	}
	c.Flags().BoolVar(&refresh, "refresh", false, "Refresh state before updating")
	c.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return c
}

func newCmdStackRefresh() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reconcile the stack state with DigitalOcean",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root, resourceID, err := loadStackConfig(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "stack.refresh", resourceID)
			defer func() { cleanup(err) }()

			u, err := buildStackUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Refresh(ctx, &stack.RefreshInput{Config: root, Progress: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), model.OpRefresh, out)
			return nil
		},
	}
}

func newCmdStackDestroy() *cobra.Command {
	var yes bool
	c := &cobra.Command{
		Use:   "destroy",
		Short: "Delete all of the stack's resources",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root, resourceID, err := loadStackConfig(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "stack.destroy", resourceID)
			defer func() { cleanup(err) }()

			// Refuse before prompting for an operation protection blocks.
			if err = root.Deployment().CheckProtection(model.OpDestroy); err != nil {
				return err
			}
			if err = confirm(cmd, yes, fmt.Sprintf("Destroy stack %s including its database?", resourceID)); err != nil {
				return err
			}
			u, err := buildStackUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Destroy(ctx, &stack.DestroyInput{Config: root, Progress: cmd.OutOrStdout(), Confirmed: true})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), model.OpDestroy, out)
			return nil
		},
	}
	c.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return c
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
)

var allowlistCmd = &cobra.Command{
	Use:   "allowlist",
	Short: "Manage allowlisted values",
}

var allowlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all allowlist items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := client.ListAllowlist(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var (
	allowValue string
	allowDesc  string
)

var allowlistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a value to the allowlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if allowValue == "" {
			return fmt.Errorf("--value is required")
		}
		created, err := client.CreateAllowlistItem(cmd.Context(), tszclient.AllowlistItem{
			Value:       allowValue,
			Description: allowDesc,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var allowlistRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an allowlist item by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid allowlist id %q", args[0])
		}
		if err := client.DeleteAllowlistItem(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Allowlist item %d removed\n", id)
		return nil
	},
}

func init() {
	allowlistCmd.AddCommand(allowlistListCmd)
	allowlistCmd.AddCommand(allowlistAddCmd)
	allowlistCmd.AddCommand(allowlistRemoveCmd)

	allowlistAddCmd.Flags().StringVar(&allowValue, "value", "", "Value to ignore during detection")
	allowlistAddCmd.Flags().StringVar(&allowDesc, "description", "", "Why this value is allowlisted")
}

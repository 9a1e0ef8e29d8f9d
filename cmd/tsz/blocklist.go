package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
)

var blocklistCmd = &cobra.Command{
	Use:   "blocklist",
	Short: "Manage strictly blocked values",
}

var blocklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all blocklist items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := client.ListBlocklist(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var (
	blockValue string
	blockDesc  string
)

var blocklistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a value to the blocklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if blockValue == "" {
			return fmt.Errorf("--value is required")
		}
		created, err := client.CreateBlocklistItem(cmd.Context(), tszclient.BlocklistItem{
			Value:       blockValue,
			Description: blockDesc,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var blocklistRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a blocklist item by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid blocklist id %q", args[0])
		}
		if err := client.DeleteBlocklistItem(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Blocklist item %d removed\n", id)
		return nil
	},
}

func init() {
	blocklistCmd.AddCommand(blocklistListCmd)
	blocklistCmd.AddCommand(blocklistAddCmd)
	blocklistCmd.AddCommand(blocklistRemoveCmd)

	blocklistAddCmd.Flags().StringVar(&blockValue, "value", "", "Value to strictly block")
	blocklistAddCmd.Flags().StringVar(&blockDesc, "description", "", "Why this value is blocked")
}

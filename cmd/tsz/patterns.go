package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Manage detection patterns",
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns, err := client.ListPatterns(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(patterns)
	},
}

var (
	patName           string
	patRegex          string
	patDesc           string
	patCategory       string
	patBlockThreshold float64
	patAllowThreshold float64
)

var patternsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		if patName == "" || patRegex == "" {
			return fmt.Errorf("--name and --regex are required")
		}
		created, err := client.CreatePattern(cmd.Context(), tszclient.Pattern{
			Name:           patName,
			Regex:          patRegex,
			Description:    patDesc,
			Category:       patCategory,
			IsActive:       true,
			BlockThreshold: patBlockThreshold,
			AllowThreshold: patAllowThreshold,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var patternsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a pattern by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pattern id %q", args[0])
		}
		if err := client.DeletePattern(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Pattern %d removed\n", id)
		return nil
	},
}

func init() {
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsAddCmd)
	patternsCmd.AddCommand(patternsRemoveCmd)

	patternsAddCmd.Flags().StringVar(&patName, "name", "", "Pattern name")
	patternsAddCmd.Flags().StringVar(&patRegex, "regex", "", "Detection regex")
	patternsAddCmd.Flags().StringVar(&patDesc, "description", "", "Pattern description")
	patternsAddCmd.Flags().StringVar(&patCategory, "category", "", "Pattern category")
	patternsAddCmd.Flags().Float64Var(&patBlockThreshold, "block-threshold", 0, "Confidence threshold above which matches block")
	patternsAddCmd.Flags().Float64Var(&patAllowThreshold, "allow-threshold", 0, "Confidence threshold below which matches are ignored")
}

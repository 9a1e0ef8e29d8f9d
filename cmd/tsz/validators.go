package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
)

var validatorsCmd = &cobra.Command{
	Use:   "validators",
	Short: "Manage format validators",
}

var validatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all validators",
	RunE: func(cmd *cobra.Command, args []string) error {
		validators, err := client.ListValidators(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(validators)
	},
}

var (
	valName     string
	valType     string
	valRule     string
	valDesc     string
	valExpected string
)

var validatorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new validator",
	RunE: func(cmd *cobra.Command, args []string) error {
		if valName == "" || valType == "" || valRule == "" {
			return fmt.Errorf("--name, --type and --rule are required")
		}
		created, err := client.CreateValidator(cmd.Context(), tszclient.FormatValidator{
			Name:             valName,
			Type:             valType,
			Rule:             valRule,
			Description:      valDesc,
			ExpectedResponse: valExpected,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var validatorsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a validator by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid validator id %q", args[0])
		}
		if err := client.DeleteValidator(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Validator %d removed\n", id)
		return nil
	},
}

func init() {
	validatorsCmd.AddCommand(validatorsListCmd)
	validatorsCmd.AddCommand(validatorsAddCmd)
	validatorsCmd.AddCommand(validatorsRemoveCmd)

	validatorsAddCmd.Flags().StringVar(&valName, "name", "", "Validator name")
	validatorsAddCmd.Flags().StringVar(&valType, "type", "", "Validator type (BUILTIN, REGEX, SCHEMA, AI_PROMPT)")
	validatorsAddCmd.Flags().StringVar(&valRule, "rule", "", "Validation rule")
	validatorsAddCmd.Flags().StringVar(&valDesc, "description", "", "Validator description")
	validatorsAddCmd.Flags().StringVar(&valExpected, "expected-response", "", "Expected response for AI_PROMPT validators")
}

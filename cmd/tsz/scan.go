package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
)

var (
	scanText       string
	scanFile       string
	scanRID        string
	scanFormat     string
	scanGuardrails []string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan text or a file for PII and guardrail violations",
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case scanFile != "":
			b, err := os.ReadFile(scanFile)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			text = string(b)
		case scanText != "":
			text = scanText
		default:
			return fmt.Errorf("either --text or --file must be provided")
		}

		// Always send a correlation id so gateway audit logs can be
		// tied back to this invocation.
		rid := scanRID
		if rid == "" {
			rid = uuid.New().String()
		}

		opts := []tszclient.DetectOption{tszclient.WithRID(rid)}
		if scanFormat != "" {
			opts = append(opts, tszclient.WithExpectedFormat(scanFormat))
		}
		if len(scanGuardrails) > 0 {
			opts = append(opts, tszclient.WithGuardrails(scanGuardrails...))
		}

		resp, err := client.DetectText(cmd.Context(), text, opts...)
		if err != nil {
			return fmt.Errorf("detection failed: %w", err)
		}

		cmd.PrintErrf("rid: %s\n", rid)
		return printJSON(resp)
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanText, "text", "t", "", "Text content to scan")
	scanCmd.Flags().StringVarP(&scanFile, "file", "f", "", "File path to scan")
	scanCmd.Flags().StringVar(&scanRID, "rid", "", "Correlation id for audit logs (generated when empty)")
	scanCmd.Flags().StringVar(&scanFormat, "format", "", "Expected format hint (e.g. email, json)")
	scanCmd.Flags().StringSliceVarP(&scanGuardrails, "guardrail", "g", nil, "Guardrail to enable (repeatable; empty uses the gateway default set)")
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
)

var (
	chatModel      string
	chatSystem     string
	chatRID        string
	chatGuardrails []string
	chatStream     bool
)

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Send a chat completion through the safety gateway",
	Long: `chat sends an OpenAI-compatible chat completion request through the
TSZ gateway, which screens the conversation before and after the
upstream LLM call. The response is printed verbatim; its schema belongs
to the upstream provider.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if chatModel == "" {
			return fmt.Errorf("--model is required")
		}

		messages := []map[string]any{}
		if chatSystem != "" {
			messages = append(messages, map[string]any{"role": "system", "content": chatSystem})
		}
		messages = append(messages, map[string]any{"role": "user", "content": strings.Join(args, " ")})

		headers := map[string]string{}
		if chatRID != "" {
			headers[tszclient.HeaderRID] = chatRID
		}
		if len(chatGuardrails) > 0 {
			headers[tszclient.HeaderGuardrails] = strings.Join(chatGuardrails, ",")
		}

		resp, err := client.ChatCompletions(cmd.Context(), tszclient.ChatCompletionRequest{
			Model:    chatModel,
			Messages: messages,
			Stream:   chatStream,
		}, headers)
		if err != nil {
			return fmt.Errorf("chat completion failed: %w", err)
		}

		return printJSON(resp)
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "Upstream model identifier (required)")
	chatCmd.Flags().StringVar(&chatSystem, "system", "", "Optional system prompt")
	chatCmd.Flags().StringVar(&chatRID, "rid", "", "Correlation id header (X-TSZ-RID)")
	chatCmd.Flags().StringSliceVarP(&chatGuardrails, "guardrail", "g", nil, "Guardrail selection header (X-TSZ-Guardrails)")
	chatCmd.Flags().BoolVar(&chatStream, "stream", false, "Request a streaming upstream response")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
	"gopkg.in/yaml.v3"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage guardrail templates",
}

var templateFile string

var templatesImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a template from a YAML or JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if templateFile == "" {
			return fmt.Errorf("--file is required")
		}

		b, err := os.ReadFile(templateFile)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		def, err := parseTemplate(b, templateFile)
		if err != nil {
			return err
		}

		if err := client.ImportTemplate(cmd.Context(), *def); err != nil {
			return err
		}
		cmd.Printf("Template %q imported\n", def.Name)
		return nil
	},
}

// parseTemplate accepts either a bare TemplateDefinition or the
// {"template": {...}} import wrapper, in YAML or JSON depending on the
// file extension.
func parseTemplate(data []byte, path string) (*tszclient.TemplateDefinition, error) {
	unmarshal := yaml.Unmarshal
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".json" {
		unmarshal = json.Unmarshal
	}

	var wrapper tszclient.TemplateImportRequest
	if err := unmarshal(data, &wrapper); err == nil && wrapper.Template.Name != "" {
		return &wrapper.Template, nil
	}

	var def tszclient.TemplateDefinition
	if err := unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid template file: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("invalid template: name is missing")
	}
	return &def, nil
}

func init() {
	templatesCmd.AddCommand(templatesImportCmd)
	templatesImportCmd.Flags().StringVarP(&templateFile, "file", "f", "", "Template file path (.yaml or .json)")
}

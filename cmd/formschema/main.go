// Command formschema inspects form-schema files: it validates them against
// the per-kind validation schemas, converts between JSON and YAML, and prints
// derived default-value maps.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
	"github.com/dculussoftwares/dculus-forms-sub000/codec"
	"github.com/dculussoftwares/dculus-forms-sub000/validation"
)

func main() {
	root := &cobra.Command{
		Use:           "formschema",
		Short:         "Inspect and convert form-schema files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(validateCmd(), convertCmd(), defaultsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "formschema:", err)
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a form-schema file and print every issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, warns, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			for _, w := range warns {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s at %s\n", w.Code, w.Path)
			}
			iss := validation.ValidateSchema(schema)
			for _, it := range iss {
				fmt.Fprintf(cmd.OutOrStdout(), "error: %s at %s: %s\n", it.Code, it.Path, it.Message)
			}
			if len(iss) > 0 || (strict && len(warns) > 0) {
				return fmt.Errorf("%d issue(s), %d warning(s)", len(iss), len(warns))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat decode warnings as failures")
	return cmd
}

func convertCmd() *cobra.Command {
	var out string
	var sanitize bool
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a form-schema file between JSON and YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			if sanitize {
				schema.SanitizeContent()
			}
			if out == "" {
				return fmt.Errorf("missing -o output path")
			}
			var data []byte
			if isYAMLPath(out) {
				data, err = codec.MarshalSchemaYAML(schema)
			} else {
				data, err = codec.MarshalSchemaIndent(schema)
			}
			if err != nil {
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.json, .yaml)")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "sanitize rich-text content while converting")
	return cmd
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <file>",
		Short: "Print the derived default-value map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(forms.GenerateDefaultValues(schema), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func loadSchema(path string) (*forms.FormSchema, forms.Issues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if isYAMLPath(path) {
		return codec.UnmarshalSchemaYAMLWithMeta(data)
	}
	return codec.UnmarshalSchemaWithMeta(data)
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

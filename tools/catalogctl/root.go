package main

import (
	"encoding/json"
	"fmt"
	"io"

	"StrideAI/app/dal/catalog"

	"github.com/spf13/cobra"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:           "catalogctl",
	Short:         "Inspect the shop catalog",
	Long:          "Loads a product catalog (the built-in one by default) and runs the storefront filters against it.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Catalog file, JSON or YAML (default: built-in catalog)")
}

func openStore() (*catalog.MemoryStore, error) {
	return catalog.LoadStore(catalogPath)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

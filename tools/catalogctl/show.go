package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	p, ok := s.ByID(args[0])
	if !ok {
		return fmt.Errorf("product %q not found", args[0])
	}
	return writeJSON(cmd.OutOrStdout(), p)
}

package main

import (
	"fmt"
	"strings"

	"StrideAI/app/common/consts/biz"
	"StrideAI/app/common/filter"
	"StrideAI/app/dal/catalog"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products matching a storefront selection",
		RunE:  runList,
	}

	cmd.Flags().String("category", "", "Category, e.g. Balls")
	cmd.Flags().String("activity", "", "Sport, e.g. Tennis")
	cmd.Flags().String("demographic", "", "Audience (carried, not filtered on)")
	cmd.Flags().String("featured", "", "new or bestseller")
	cmd.Flags().Float64("max-price", 0, "Price ceiling, 0 for none")
	cmd.Flags().Bool("sale", false, "Shortcut for the Sale link")
	cmd.Flags().Bool("ids-only", false, "Only print product ids")

	rootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	activity, _ := cmd.Flags().GetString("activity")
	demographic, _ := cmd.Flags().GetString("demographic")
	featured, _ := cmd.Flags().GetString("featured")
	maxPrice, _ := cmd.Flags().GetFloat64("max-price")
	sale, _ := cmd.Flags().GetBool("sale")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}

	f := filter.Filter{
		Category:    catalog.Category(category),
		Activity:    catalog.Activity(activity),
		Demographic: catalog.Demographic(demographic),
		Featured:    filter.Featured(featured),
		MaxPrice:    maxPrice,
	}.Normalize()
	if sale {
		f = filter.Filter{MaxPrice: biz.SalePriceCap}
	}

	products := filter.Apply(s.All(), f)
	out := cmd.OutOrStdout()
	if idsOnly {
		if len(products) == 0 {
			return nil
		}
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.Id)
		}
		_, err = fmt.Fprintln(out, strings.Join(ids, "\n"))
		return err
	}

	return writeJSON(out, map[string]any{
		"title":    filter.Title(f, ""),
		"filter":   f,
		"count":    len(products),
		"products": products,
	})
}

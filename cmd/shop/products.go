package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

var (
	searchQuery string
	maxPrice    int64
	inStockOnly bool
	category    string
	sortMode    string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the catalog with optional search, filters and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseSortMode(sortMode)
		if err != nil {
			return err
		}

		s := shop.Session
		s.SetQuery(searchQuery)
		if maxPrice > 0 {
			s.SetPriceCeiling(domain.Money(maxPrice))
		}
		s.SetOnlyInStock(inStockOnly)
		s.SetCategory(category)
		s.SetSort(mode)

		renderProducts(cmd.OutOrStdout(), s.Visible(), s.Summary())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the detail of one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		if err := shop.Session.Select(id); err != nil {
			return errors.New(domain.ProductNotFoundMessage)
		}

		product, _ := shop.Session.Selected()
		renderDetail(cmd.OutOrStdout(), product, shop.Session.DetailQuantity())
		return nil
	},
}

func init() {
	f := productsCmd.Flags()
	f.StringVarP(&searchQuery, "query", "q", "", "Search in name and description")
	f.Int64Var(&maxPrice, "max-price", 0, "Hide products above this price")
	f.BoolVar(&inStockOnly, "in-stock", false, "Only products with stock")
	f.StringVar(&category, "category", domain.AllCategories, "Category to show")
	f.StringVar(&sortMode, "sort", string(domain.SortFeatured), "featured, price-asc, price-desc, name-asc or stock-desc")
}

func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <id> [quantity]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		quantity := 1
		if len(args) == 2 {
			if quantity, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
		}

		if err := shop.Session.AddToCart(cmd.Context(), id, quantity); err != nil {
			switch {
			case errors.Is(err, domain.ErrProductNotFound):
				return errors.New(domain.ProductNotFoundMessage)
			case errors.Is(err, domain.ErrOutOfStock):
				return errors.New("Producto sin stock")
			}
			return err
		}

		renderNotice(cmd.OutOrStdout(), shop.Session.Notice())
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <id> <quantity>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		shop.Session.SetQuantityInput(cmd.Context(), id, args[1])
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

var cartIncCmd = &cobra.Command{
	Use:   "inc <id>",
	Short: "Add one unit to a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		shop.Session.Increment(cmd.Context(), id)
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

var cartDecCmd = &cobra.Command{
	Use:   "dec <id>",
	Short: "Remove one unit from a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		shop.Session.Decrement(cmd.Context(), id)
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		shop.Session.RemoveFromCart(cmd.Context(), id)
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shop.Session.ClearCart(cmd.Context())
		renderCart(cmd.OutOrStdout(), shop.Session.Cart(), shop.Session.Summary())
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd, cartSetCmd, cartIncCmd, cartDecCmd, cartRemoveCmd, cartClearCmd)
}

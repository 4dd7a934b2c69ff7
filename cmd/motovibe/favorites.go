package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/umithief/motovibe6/internal/storefront"
)

func favoritesCmd(sh *shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh.app.Navigate(storefront.ViewFavorites)

			ids := sh.app.Favorites()
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet")
				return nil
			}

			for _, id := range ids {
				product, err := sh.backend.GetProduct(cmd.Context(), id)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  (unavailable)\n", id)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s ₺\n", product.ID, product.Name, product.Price.StringFixed(2))
			}

			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [productID]",
		Short: "Add or remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			_, err = sh.app.ToggleFavorite(id)

			return err
		},
	})

	return cmd
}

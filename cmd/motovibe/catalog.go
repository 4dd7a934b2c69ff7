package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

func productsCmd(sh *shell) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := sh.backend.ListProducts(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tRATING")
			for _, p := range products {
				if category != "" && !strings.EqualFold(string(p.Category), category) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s ₺\t%d\t%.1f\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock, p.Rating)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show one category, e.g. Kask")

	return cmd
}

func productCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "product [id]",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			product, err := sh.backend.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			sh.app.ViewProduct(cmd.Context(), product)

			printProduct(cmd, product, sh.isFavorite(product.ID))

			return nil
		},
	}
}

func printProduct(cmd *cobra.Command, p *entity.Product, favorite bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", p.Name)
	if favorite {
		fmt.Fprintln(out, "  ♥ favori")
	}
	fmt.Fprintf(out, "  Kategori: %s\n", p.Category)
	fmt.Fprintf(out, "  Fiyat:    %s ₺\n", p.Price.StringFixed(2))
	fmt.Fprintf(out, "  Stok:     %d\n", p.Stock)
	fmt.Fprintf(out, "  Puan:     %.1f\n", p.Rating)
	fmt.Fprintf(out, "  %s\n", p.Description)
	for _, f := range p.Features {
		fmt.Fprintf(out, "  - %s\n", f)
	}
	for i, img := range p.Images {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, img)
	}
}

func (sh *shell) isFavorite(id uuid.UUID) bool {
	for _, fav := range sh.app.Favorites() {
		if fav == id {
			return true
		}
	}

	return false
}

func categoriesCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the homepage categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := sh.backend.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tCOUNT")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Type, c.Count)
			}

			return w.Flush()
		},
	}
}

func slidesCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "slides",
		Short: "List the homepage slides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slides, err := sh.backend.ListSlides(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tACTION")
			for _, s := range slides {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Title, s.Action)
			}

			return w.Flush()
		},
	}
}

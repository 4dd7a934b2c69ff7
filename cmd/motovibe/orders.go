package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

type cartLine struct {
	productID uuid.UUID
	quantity  int
}

// parseCartLine reads "<productID>[:qty]".
func parseCartLine(s string) (cartLine, error) {
	idPart, qtyPart, hasQty := strings.Cut(s, ":")

	id, err := uuid.Parse(idPart)
	if err != nil {
		return cartLine{}, fmt.Errorf("invalid product id %q", idPart)
	}

	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(qtyPart)
		if err != nil || qty < 1 {
			return cartLine{}, fmt.Errorf("invalid quantity %q", qtyPart)
		}
	}

	return cartLine{productID: id, quantity: qty}, nil
}

func checkoutCmd(sh *shell) *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Buy the given products",
		Example: "  motovibe checkout --item 01900000-0000-7000-8001-000000000001:2 " +
			"--item 01900000-0000-7000-8001-000000000003",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			lines := make([]cartLine, 0, len(items))
			for _, raw := range items {
				line, err := parseCartLine(raw)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}

			for _, line := range lines {
				product, err := sh.backend.GetProduct(ctx, line.productID)
				if err != nil {
					return err
				}
				sh.app.AddToCart(ctx, *product)
				if line.quantity > 1 {
					sh.app.UpdateQuantity(product.ID, line.quantity-1)
				}
			}

			if err := sh.app.StartCheckout(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s ₺ (%d items)\n", sh.app.CartTotal().StringFixed(2), sh.app.CartCount())

			order, err := sh.app.ConfirmPayment(ctx)
			if err != nil {
				return err
			}
			if order == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty, nothing to do")
				return nil
			}

			printOrder(cmd, order)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "Product to buy as <productID>[:qty], repeatable")

	return cmd
}

func ordersCmd(sh *shell) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders, or any user's as admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			var filter *uuid.UUID
			if userID != "" {
				id, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid user id %q", userID)
				}
				filter = &id
			}

			orders, err := sh.backend.ListOrders(cmd.Context(), sh.app.Token(), filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tDATE\tSTATUS\tTOTAL")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s ₺\n", o.ID, o.Code, o.Date.Format("02.01.2006 15:04"), o.Status.Label(), o.Total.StringFixed(2))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Only orders of this user (admin)")

	return cmd
}

func orderCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "order [id]",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			order, err := sh.backend.GetOrder(cmd.Context(), sh.app.Token(), id)
			if err != nil {
				return err
			}
			printOrder(cmd, order)

			return nil
		},
	}
}

func orderStatusCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:       "order-status [id] [status]",
		Short:     "Move an order to a new status (admin)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"preparing", "shipped", "delivered", "cancelled"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			status := entity.OrderStatus(args[1])
			if !status.IsValid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			order, err := sh.backend.UpdateOrderStatus(cmd.Context(), sh.app.Token(), id, status)
			if err != nil {
				return err
			}
			printOrder(cmd, order)

			return nil
		},
	}
}

func printOrder(cmd *cobra.Command, o *entity.Order) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Order %s (%s)\n", o.Code, o.ID)
	fmt.Fprintf(out, "  Date:   %s\n", o.Date.Format("02.01.2006 15:04"))
	fmt.Fprintf(out, "  Status: %s\n", o.Status.Label())
	for _, item := range o.Items {
		fmt.Fprintf(out, "  %d x %s  %s ₺\n", item.Quantity, item.Name, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(out, "  Total:  %s ₺\n", o.Total.StringFixed(2))
}

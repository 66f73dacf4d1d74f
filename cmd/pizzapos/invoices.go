package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Fmfizzy/PizzaPOS/api"
	receipt "github.com/Fmfizzy/PizzaPOS/receipt/logic"
)

func newInvoicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invoices [id]",
		Short: "List placed orders, or show one invoice's lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.apiClient()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				invoices, err := client.Invoices(ctx)
				if err != nil {
					return err
				}
				printInvoices(out, invoices, a.layout())
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			invoice, err := client.Invoice(ctx, id)
			if err != nil {
				return err
			}
			if len(invoice.Items) == 0 {
				if invoice.Items, err = client.InvoiceItems(ctx, id); err != nil {
					return err
				}
			}
			printInvoice(out, invoice, a.layout())
			return nil
		},
	}
}

func printInvoices(w io.Writer, invoices []api.Invoice, layout receipt.Layout) {
	if len(invoices) == 0 {
		fmt.Fprintln(w, "No invoices.")
		return
	}
	table := newTable(w, "ID", "Order #", "Total", "Tax", "Status", "Placed")
	for _, inv := range invoices {
		table.Append([]string{
			strconv.Itoa(inv.ID),
			inv.OrderNo,
			layout.Money(inv.TotalAmount),
			layout.Money(inv.TaxAmount),
			inv.Status,
			humanize.Time(inv.CreatedAt),
		})
	}
	table.Render()
	fmt.Fprintf(w, "%s invoice%s\n", humanize.Comma(int64(len(invoices))), plural(len(invoices)))
}

func printInvoice(w io.Writer, inv api.Invoice, layout receipt.Layout) {
	fmt.Fprintf(w, "Invoice %d, order #%s, %s (%s)\n",
		inv.ID, inv.OrderNo, inv.Status, humanize.Time(inv.CreatedAt))
	table := newTable(w, "Item", "Toppings", "Qty", "Unit", "Subtotal")
	for _, it := range inv.Items {
		table.Append([]string{
			it.ItemName,
			describeInvoiceToppings(it.Toppings),
			strconv.Itoa(it.Quantity),
			layout.Money(it.UnitPrice),
			layout.Money(it.Subtotal),
		})
	}
	table.Render()
	fmt.Fprintf(w, "Tax: %s\n", layout.Money(inv.TaxAmount))
	fmt.Fprintf(w, "Total: %s\n", layout.Money(inv.TotalAmount))
}

func describeInvoiceToppings(toppings []api.InvoiceItemTopping) string {
	out := ""
	for i, t := range toppings {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%dx)", t.Name, t.Quantity)
	}
	return out
}

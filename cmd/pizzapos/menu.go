package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Fmfizzy/PizzaPOS/menu"
	receipt "github.com/Fmfizzy/PizzaPOS/receipt/logic"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the menu from the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.apiClient().Menu(cmd.Context())
			if err != nil {
				return err
			}
			printMenu(cmd.OutOrStdout(), catalog, a.layout())
			return nil
		},
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printMenu(w io.Writer, catalog *menu.Catalog, layout receipt.Layout) {
	if catalog.Empty() {
		fmt.Fprintln(w, "Menu is empty.")
		return
	}

	fmt.Fprintln(w, "Pizzas")
	pizzas := newTable(w, "ID", "Name", "S", "M", "L", "Available")
	for _, p := range catalog.Pizzas {
		row := []string{strconv.Itoa(p.ID), p.Name}
		for _, size := range menu.Sizes {
			if price, ok := p.Prices.Price(size); ok {
				row = append(row, layout.Money(price))
			} else {
				row = append(row, "-")
			}
		}
		pizzas.Append(append(row, yesNo(p.Available)))
	}
	pizzas.Render()

	fmt.Fprintln(w, "Beverages")
	beverages := newTable(w, "ID", "Name", "Price", "Available")
	for _, b := range catalog.Beverages {
		beverages.Append([]string{strconv.Itoa(b.ID), b.Name, layout.Money(b.Price), yesNo(b.Available)})
	}
	beverages.Render()

	fmt.Fprintln(w, "Toppings")
	toppings := newTable(w, "ID", "Name", "Price", "Available")
	for _, t := range catalog.Toppings {
		toppings.Append([]string{strconv.Itoa(t.ID), t.Name, layout.Money(t.Price), yesNo(t.Available)})
	}
	toppings.Render()
}

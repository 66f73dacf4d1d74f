package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Fmfizzy/PizzaPOS/api"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

func newItemsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage menu items",
	}
	cmd.AddCommand(
		newItemsCreateCmd(a),
		newItemsUpdateCmd(a),
		newItemsDeleteCmd(a),
		newItemsUploadCmd(a),
		newItemsPriceCmd(a),
	)
	return cmd
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, pos.NewInvalidArgumentf("Price %q is not a number", s)
	}
	return d, nil
}

type createFlags struct {
	name        string
	category    string
	description string
	image       string
	price       string
	small       string
	medium      string
	large       string
}

// item builds the menu item the flags describe.
func (f createFlags) item() (menu.Item, error) {
	category, err := menu.ParseCategory(f.category)
	if err != nil {
		return nil, err
	}
	info := menu.Info{
		Name:        f.name,
		Category:    category,
		Description: f.description,
		Available:   true,
		ImagePath:   f.image,
	}

	if category == menu.CategoryBeverage {
		if f.price == "" {
			return nil, pos.NewInvalidArgument(menu.ErrMsgBeveragePriceRequired)
		}
		price, err := parsePrice(f.price)
		if err != nil {
			return nil, err
		}
		return &menu.Beverage{Info: info, Price: price}, nil
	}

	prices := menu.PriceTable{}
	for size, raw := range map[menu.Size]string{menu.SizeSmall: f.small, menu.SizeMedium: f.medium, menu.SizeLarge: f.large} {
		if raw == "" {
			continue
		}
		price, err := parsePrice(raw)
		if err != nil {
			return nil, err
		}
		prices[size] = price
	}
	return &menu.Pizza{Info: info, Prices: prices}, nil
}

func newItemsCreateCmd(a *app) *cobra.Command {
	var f createFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pizza (with a price per size) or a beverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item, err := f.item()
			if err != nil {
				return err
			}
			rec, err := a.apiClient().CreateMenuItem(cmd.Context(), item)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q with ID %d\n", rec.Category, rec.Name, rec.ID)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "item name")
	flags.StringVar(&f.category, "category", string(menu.CategoryPizza), "pizza or beverage")
	flags.StringVar(&f.description, "description", "", "description")
	flags.StringVar(&f.image, "image", "", "image path returned by items upload")
	flags.StringVar(&f.price, "price", "", "beverage price")
	flags.StringVar(&f.small, "small", "", "small pizza price")
	flags.StringVar(&f.medium, "medium", "", "medium pizza price")
	flags.StringVar(&f.large, "large", "", "large pizza price")
	return cmd
}

func newItemsUpdateCmd(a *app) *cobra.Command {
	var (
		name, description, image, price string
		available                        bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an item; only the flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			var req api.UpdateItemRequest
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("available") {
				req.IsAvailable = &available
			}
			if flags.Changed("price") {
				d, err := parsePrice(price)
				if err != nil {
					return err
				}
				f := d.InexactFloat64()
				req.Price = &f
			}
			req.ImagePath = image

			rec, err := a.apiClient().UpdateItem(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q (ID %d)\n", rec.Name, rec.ID)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "new name")
	flags.StringVar(&description, "description", "", "new description")
	flags.StringVar(&image, "image", "", "new image path")
	flags.StringVar(&price, "price", "", "new beverage price")
	flags.BoolVar(&available, "available", true, "whether the item can be ordered")
	return cmd
}

func newItemsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.apiClient().DeleteItem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
			return nil
		},
	}
}

func newItemsUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an item image and print its stored path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			path, err := a.apiClient().UploadImage(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newItemsPriceCmd(a *app) *cobra.Command {
	var priceID int
	cmd := &cobra.Command{
		Use:   "price <pizza-id> <size> <price>",
		Short: "Set one size's price for a pizza",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			size, err := menu.ParseSize(args[1])
			if err != nil {
				return err
			}
			price, err := parsePrice(args[2])
			if err != nil {
				return err
			}
			if err := pos.RequireNonNegativeAmount(price, menu.ErrMsgNegativePrice); err != nil {
				return err
			}

			client := a.apiClient()
			req := api.PizzaPriceRequest{ItemID: itemID, Size: string(size), Price: price.InexactFloat64()}
			var stored api.PizzaPrice
			if priceID > 0 {
				stored, err = client.UpdatePizzaPrice(cmd.Context(), priceID, req)
			} else {
				stored, err = client.CreatePizzaPrice(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s price for item %d is %s (price ID %d)\n",
				size.Title(), stored.ItemID, stored.Price.StringFixed(2), stored.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&priceID, "id", 0, "update this existing price instead of creating one")
	return cmd
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
	receipt "github.com/Fmfizzy/PizzaPOS/receipt/logic"
	"github.com/Fmfizzy/PizzaPOS/terminal"
)

const orderHelp = `Commands:
  menu                                   show the menu
  pizza <id> [size] [topping[:qty]...]   add a pizza (size s|m|l, default large)
  drink <id>                             add a beverage
  qty <line> <n>                         set a line's quantity
  + <line>                               one more
  - <line>                               one less (stops at 1)
  rm <line>                              remove a line
  show                                   show the cart
  receipt                                print the receipt
  place                                  place the order
  clear                                  empty the cart
  refresh                                reload the menu and order number
  help                                   this text
  quit                                   leave
Lines are numbered as in "show".`

func newOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Take orders interactively",
		Long:  "Take orders interactively.\n\n" + orderHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			session, closeSession, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			sh := newShell(session, cmd.InOrStdin(), cmd.OutOrStdout(), a.layout())
			return sh.run(ctx)
		},
	}
}

// openSession connects to --remote when set, otherwise starts a terminal in
// this process and loads its menu.
func (a *app) openSession(ctx context.Context) (terminal.Session, func(), error) {
	if a.remote != "" {
		client, err := terminal.Dial(a.remote)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}

	term := a.newTerminal()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = term.Run(runCtx)
	}()
	if err := term.Refresh(ctx); err != nil {
		a.logger.Warn("initial refresh failed", zap.Error(err))
	}
	return term, func() {
		cancel()
		<-done
	}, nil
}

// shell reads order commands line by line.
type shell struct {
	session terminal.Session
	in      *bufio.Scanner
	out     io.Writer
	layout  receipt.Layout
}

func newShell(session terminal.Session, in io.Reader, out io.Writer, layout receipt.Layout) *shell {
	return &shell{session: session, in: bufio.NewScanner(in), out: out, layout: layout}
}

var errQuit = errors.New("quit")

func (s *shell) run(ctx context.Context) error {
	fmt.Fprintln(s.out, `Type "help" for commands.`)
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		err := s.exec(ctx, s.in.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintln(s.out, "error:", describe(err))
		}
	}
}

// describe shows rejections as their message and anything else in full.
func describe(err error) string {
	if cmdErr := pos.AsCommandError(err); cmdErr != nil {
		return cmdErr.Message
	}
	return err.Error()
}

func (s *shell) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "help", "?":
		fmt.Fprintln(s.out, orderHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "menu":
		catalog, err := s.session.Menu(ctx)
		if err != nil {
			return err
		}
		printMenu(s.out, catalog, s.layout)
		return nil
	case "refresh":
		if err := s.session.Refresh(ctx); err != nil {
			return err
		}
		snap, err := s.session.Snapshot(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Menu reloaded. Next order #%s\n", snap.OrderNo)
		return nil
	case "pizza":
		id, size, toppings, err := parsePizzaArgs(args)
		if err != nil {
			return err
		}
		return s.added(s.session.AddPizza(ctx, id, size, toppings))
	case "drink":
		if len(args) != 1 {
			return usage("drink <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return s.added(s.session.AddBeverage(ctx, id))
	case "qty":
		if len(args) != 2 {
			return usage("qty <line> <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return pos.NewInvalidArgumentf("Quantity %q is not a number", args[1])
		}
		return s.onLine(ctx, args[0], func(id string) (cart.LineItem, error) {
			return s.session.SetQuantity(ctx, id, n)
		})
	case "+":
		if len(args) != 1 {
			return usage("+ <line>")
		}
		return s.onLine(ctx, args[0], func(id string) (cart.LineItem, error) {
			return s.session.Increment(ctx, id)
		})
	case "-":
		if len(args) != 1 {
			return usage("- <line>")
		}
		return s.onLine(ctx, args[0], func(id string) (cart.LineItem, error) {
			return s.session.Decrement(ctx, id)
		})
	case "rm":
		if len(args) != 1 {
			return usage("rm <line>")
		}
		id, err := s.lineID(ctx, args[0])
		if err != nil {
			return err
		}
		if _, err := s.session.RemoveItem(ctx, id); err != nil {
			return err
		}
		return s.show(ctx)
	case "show":
		return s.show(ctx)
	case "receipt":
		text, err := s.session.Receipt(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, text)
		return nil
	case "place":
		res, err := s.session.PlaceOrder(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Order #%s placed (invoice %d, total %s). Next order #%s\n",
			res.OrderNo, res.Invoice.ID, s.layout.Money(res.Invoice.TotalAmount), res.NextOrderNo)
		return nil
	case "clear":
		if err := s.session.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Cart cleared.")
		return nil
	}
	return pos.NewInvalidArgumentf("Unknown command %q; type help", fields[0])
}

func usage(u string) error {
	return pos.NewInvalidArgumentf("Usage: %s", u)
}

func (s *shell) added(li cart.LineItem, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added %s\n", describeLine(li, s.layout))
	return nil
}

func (s *shell) onLine(ctx context.Context, ref string, fn func(id string) (cart.LineItem, error)) error {
	id, err := s.lineID(ctx, ref)
	if err != nil {
		return err
	}
	li, err := fn(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s\n", describeLine(li, s.layout))
	return nil
}

// lineID resolves a 1-based line number from "show" to the line's ID.
func (s *shell) lineID(ctx context.Context, ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return "", pos.NewInvalidArgumentf("Line %q is not a number", ref)
	}
	snap, err := s.session.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(snap.Items) {
		return "", pos.NewFailedPreconditionf("No line %d in the cart", n)
	}
	return snap.Items[n-1].ID, nil
}

func (s *shell) show(ctx context.Context) error {
	snap, err := s.session.Snapshot(ctx)
	if err != nil {
		return err
	}
	printCart(s.out, snap, s.layout)
	return nil
}

func describeLine(li cart.LineItem, layout receipt.Layout) string {
	name := li.Name
	if li.Size != "" {
		name += " (" + li.Size.Title() + ")"
	}
	if len(li.Toppings) > 0 {
		name += " + " + menu.DescribeToppings(li.Toppings)
	}
	return fmt.Sprintf("%d x %s = %s", li.Quantity, name, layout.Money(li.TotalPrice))
}

func printCart(w io.Writer, snap terminal.Snapshot, layout receipt.Layout) {
	fmt.Fprintf(w, "Order #%s\n", snap.OrderNo)
	if len(snap.Items) == 0 {
		fmt.Fprintln(w, "Cart is empty.")
		return
	}
	table := newTable(w, "#", "Item", "Size", "Toppings", "Qty", "Unit", "Total")
	for i, li := range snap.Items {
		table.Append([]string{
			strconv.Itoa(i + 1),
			li.Name,
			li.Size.Abbrev(),
			menu.DescribeToppings(li.Toppings),
			strconv.Itoa(li.Quantity),
			layout.Money(li.UnitPrice),
			layout.Money(li.TotalPrice),
		})
	}
	table.Render()

	units := 0
	for _, li := range snap.Items {
		units += li.Quantity
	}
	fmt.Fprintf(w, "%s item%s\n", humanize.Comma(int64(units)), plural(units))
	fmt.Fprintf(w, "Subtotal: %s\n", layout.Money(snap.Totals.Subtotal))
	fmt.Fprintf(w, "%s %s\n", receipt.TaxLabel(), layout.Money(snap.Totals.Tax))
	fmt.Fprintf(w, "Grand Total: %s\n", layout.Money(snap.Totals.GrandTotal))
	if snap.Placing {
		fmt.Fprintln(w, "(order is being placed)")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, pos.NewInvalidArgumentf("ID %q is not a positive number", s)
	}
	return id, nil
}

// parsePizzaArgs reads "<id> [size] [topping[:qty]...]". The size may be
// left out, in which case the first remaining argument is a topping.
func parsePizzaArgs(args []string) (int, menu.Size, []terminal.ToppingChoice, error) {
	if len(args) == 0 {
		return 0, "", nil, usage("pizza <id> [size] [topping[:qty]...]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, "", nil, err
	}
	rest := args[1:]

	var size menu.Size
	if len(rest) > 0 {
		if parsed, err := menu.ParseSize(rest[0]); err == nil {
			size = parsed
			rest = rest[1:]
		}
	}

	toppings := make([]terminal.ToppingChoice, 0, len(rest))
	for _, arg := range rest {
		idPart, qtyPart, hasQty := strings.Cut(arg, ":")
		tid, err := strconv.Atoi(idPart)
		if err != nil {
			return 0, "", nil, pos.NewInvalidArgumentf("Topping %q is neither a size nor a topping ID", arg)
		}
		qty := 1
		if hasQty {
			if qty, err = strconv.Atoi(qtyPart); err != nil {
				return 0, "", nil, pos.NewInvalidArgumentf("Topping quantity %q is not a number", qtyPart)
			}
		}
		toppings = append(toppings, terminal.ToppingChoice{ToppingID: tid, Quantity: qty})
	}
	return id, size, toppings, nil
}

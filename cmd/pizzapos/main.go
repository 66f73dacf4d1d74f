// pizzapos runs the pizza shop order terminal and manages the shop's menu
// and invoices through the backend REST API.
//
// Usage:
//
//	pizzapos serve                 run the terminal gRPC service
//	pizzapos order                 take orders interactively
//	pizzapos menu                  print the menu
//	pizzapos invoices [id]         list invoices or show one
//	pizzapos items create ...      manage menu items
//	pizzapos health                probe a running terminal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fmfizzy/PizzaPOS/api"
	"github.com/Fmfizzy/PizzaPOS/config"
	"github.com/Fmfizzy/PizzaPOS/pos"
	"github.com/Fmfizzy/PizzaPOS/pricing"
	receipt "github.com/Fmfizzy/PizzaPOS/receipt/logic"
	"github.com/Fmfizzy/PizzaPOS/terminal"
)

// app carries the loaded configuration to every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	envFile string
	apiURL  string
	port    string
	remote  string
	debug   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pizzapos",
		Short:         "Pizza shop point of sale",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env", ".env", "optional .env file to load")
	flags.StringVar(&a.apiURL, "api", "", "backend REST API base URL (overrides POS_API_URL)")
	flags.StringVar(&a.port, "port", "", "terminal gRPC port (overrides PORT)")
	flags.StringVar(&a.remote, "remote", "", "address of a running terminal; order and health use it instead of an in-process one")
	flags.BoolVar(&a.debug, "debug", false, "development logging (overrides POS_DEBUG)")

	root.AddCommand(
		newServeCmd(a),
		newOrderCmd(a),
		newMenuCmd(a),
		newInvoicesCmd(a),
		newItemsCmd(a),
		newHealthCmd(a),
	)
	return root
}

// load reads the configuration, applies flag overrides and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.APIURL = a.apiURL
	}
	if flags.Changed("port") {
		cfg.Port = a.port
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	a.cfg = cfg

	logger, err := pos.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) apiClient() *api.Client {
	return api.NewClient(a.cfg.APIURL,
		api.WithTimeout(a.cfg.HTTPTimeout),
		api.WithLogger(a.logger.Named("api")))
}

func (a *app) layout() receipt.Layout {
	return receipt.Layout{
		Width:     a.cfg.ReceiptWidth,
		NameWidth: a.cfg.NameWidth,
		QtyWidth:  receipt.DefaultLayout().QtyWidth,
		Currency:  a.cfg.Currency,
	}
}

func (a *app) newTerminal() *terminal.Terminal {
	shop := receipt.Shop{Name: a.cfg.ShopName, Address: a.cfg.ShopAddress, Phone: a.cfg.ShopPhone}
	return terminal.New(a.apiClient(),
		terminal.WithLogger(a.logger.Named("terminal")),
		terminal.WithCalculator(pricing.NewCalculator(a.cfg.StrictPricing)),
		terminal.WithFormatter(receipt.NewFormatter(a.layout(), shop)))
}

// terminalAddr is where order and health reach a remote terminal.
func (a *app) terminalAddr() string {
	if a.remote != "" {
		return a.remote
	}
	return "localhost:" + a.cfg.Port
}

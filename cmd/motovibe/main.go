// Command motovibe is the storefront shell: browse the catalog, sign in, check
// out and follow orders against the local store or the API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/config"
	logs "github.com/umithief/motovibe6/internal/infra/log"
	"github.com/umithief/motovibe6/internal/infra/persistence/bolt"
	"github.com/umithief/motovibe6/internal/storefront"
)

var Version = "dev"

// shell is what every command runs against. It is filled in before the
// command runs and torn down after it.
type shell struct {
	mode   string
	apiURL string
	data   string

	cfg     *config.Config
	logger  *slog.Logger
	db      *bbolt.DB
	backend storefront.Backend
	app     *storefront.App
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	sh := &shell{}
	rootCmd := &cobra.Command{
		Use:               "motovibe",
		Short:             "MotoVibe storefront",
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: sh.open,
		PersistentPostRun: sh.close,
	}

	rootCmd.PersistentFlags().StringVar(&sh.mode, "mode", "", "Backend: local or remote (default from config)")
	rootCmd.PersistentFlags().StringVar(&sh.apiURL, "api-url", "", "API server URL for remote mode")
	rootCmd.PersistentFlags().StringVar(&sh.data, "data", "", "Path of the local store file")

	rootCmd.AddCommand(productsCmd(sh))
	rootCmd.AddCommand(productCmd(sh))
	rootCmd.AddCommand(categoriesCmd(sh))
	rootCmd.AddCommand(slidesCmd(sh))
	rootCmd.AddCommand(registerCmd(sh))
	rootCmd.AddCommand(loginCmd(sh))
	rootCmd.AddCommand(logoutCmd(sh))
	rootCmd.AddCommand(whoamiCmd(sh))
	rootCmd.AddCommand(checkoutCmd(sh))
	rootCmd.AddCommand(ordersCmd(sh))
	rootCmd.AddCommand(orderCmd(sh))
	rootCmd.AddCommand(orderStatusCmd(sh))
	rootCmd.AddCommand(favoritesCmd(sh))
	rootCmd.AddCommand(forumCmd(sh))
	rootCmd.AddCommand(dashboardCmd(sh))
	rootCmd.AddCommand(statsCmd(sh))
	rootCmd.AddCommand(logsCmd(sh))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (sh *shell) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if sh.mode != "" {
		cfg.Storefront.Mode = sh.mode
	}
	if sh.apiURL != "" {
		cfg.Storefront.APIURL = sh.apiURL
	}
	if sh.data != "" {
		cfg.Storefront.DataPath = sh.data
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := bolt.Open(cfg.Storefront.DataPath, 0)
	if err != nil {
		return err
	}

	var backend storefront.Backend
	switch cfg.Storefront.Mode {
	case storefront.ModeLocal:
		backend, err = storefront.NewLocalBackend(db, cfg, logger)
	case storefront.ModeRemote:
		backend, err = storefront.NewRemoteBackend(cfg.Storefront, logger)
	default:
		err = fmt.Errorf("unknown storefront mode %q", cfg.Storefront.Mode)
	}
	if err != nil {
		_ = db.Close()
		return err
	}

	notifier := storefront.NewNotifier(EventBus.New(), storefront.DefaultToastTTL)
	if err := notifier.Subscribe(func(t storefront.Toast) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", t.Type, t.Message)
	}); err != nil {
		_ = backend.Close()
		_ = db.Close()
		return err
	}

	app := storefront.NewApp(backend, storefront.NewPreferences(bolt.NewSettingsStore(db)), notifier, logger)
	if err := app.Start(cmd.Context()); err != nil {
		_ = backend.Close()
		_ = db.Close()
		return err
	}

	sh.cfg, sh.logger, sh.db, sh.backend, sh.app = cfg, logger, db, backend, app

	return nil
}

func (sh *shell) close(cmd *cobra.Command, _ []string) {
	if sh.app == nil {
		return
	}

	sh.app.Close(context.WithoutCancel(cmd.Context()))
	if err := sh.backend.Close(); err != nil {
		sh.logger.Warn("Failed to close backend", slog.Any("error", err))
	}
	if err := sh.db.Close(); err != nil {
		sh.logger.Warn("Failed to close store", slog.Any("error", err))
	}
}

// requireSession fails early for commands that need a signed-in user.
func (sh *shell) requireSession() error {
	if sh.app.Session() == nil {
		return fmt.Errorf("not signed in, run `motovibe login` first")
	}

	return nil
}

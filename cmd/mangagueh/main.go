package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Urdemonlord/mangagueh/internal/adapter"
	"github.com/Urdemonlord/mangagueh/internal/adapter/source"
	"github.com/Urdemonlord/mangagueh/internal/domain"
	"github.com/Urdemonlord/mangagueh/internal/service"
	"github.com/Urdemonlord/mangagueh/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var errNotTerminal = errors.New("mangagueh needs an interactive terminal")

func main() {
	// Environment overrides may live in a local .env
	_ = godotenv.Load()

	var (
		showVersion bool
		route       string
		configPath  string
		writeConfig bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&route, "route", "", "page to open: /, /popular or /latest")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&writeConfig, "write-config", false, "write the effective config and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("mangagueh %s\n", Version)
		return
	}

	if err := run(configPath, route, writeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, route string, writeConfig bool) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if writeConfig {
		path, err := adapter.SaveConfig(cfg, configPath)
		if err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", path)
		return nil
	}

	if route == "" {
		route = cfg.UI.DefaultRoute
	}
	if _, ok := tui.RouteFor(route); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRoute, route)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting mangagueh", "version", Version, "route", route)

	// Create catalog client
	repo, err := source.NewCatalogFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Create services
	catalogSvc := service.NewCatalogService(repo, logger, cfg.Catalog.RequestTimeout)
	launcher := adapter.NewLauncher(cfg.Browser.Command, cfg.Browser.Args, logger)

	// Create TUI model
	model := tui.NewModel(catalogSvc, launcher, tui.Options{
		InitialRoute: route,
		List: tui.ListOptions{
			Debounce:          cfg.UI.Debounce,
			GridColumns:       cfg.UI.GridColumns,
			ResetPageOnChange: cfg.UI.ResetPageOnChange,
		},
		Logger: logger,
	})

	// Run the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

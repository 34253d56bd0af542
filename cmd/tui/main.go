package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zacharyhyde/listprofit/internal/config"
	"github.com/zacharyhyde/listprofit/internal/export"
	"github.com/zacharyhyde/listprofit/internal/logger"
	"github.com/zacharyhyde/listprofit/internal/ui"
	"github.com/zacharyhyde/listprofit/internal/ui/router"
	"github.com/zacharyhyde/listprofit/internal/ui/screen"
)

// AppModel represents the main TUI application model
type AppModel struct {
	router   *router.Router
	cfg      *config.Config
	exporter *export.ComparisonExporter
	width    int
	height   int
}

// NewAppModel creates a new application model
func NewAppModel(cfg *config.Config, exporter *export.ComparisonExporter) *AppModel {
	welcome := screen.NewWelcomeScreen(cfg)

	return &AppModel{
		router:   router.New(welcome),
		cfg:      cfg,
		exporter: exporter,
	}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Init(),
		ui.ListenBus(),
		tea.EnterAltScreen,
	)
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.router.SetSize(msg.Width, msg.Height)

		updatedRouter, cmd := m.router.Update(msg)
		m.router = updatedRouter.(*router.Router)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		default:
			updatedRouter, cmd := m.router.Update(msg)
			m.router = updatedRouter.(*router.Router)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case ui.RouterMsg:
		if cmd := m.handleNavigation(msg.To); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		updatedRouter, cmd := m.router.Update(msg)
		m.router = updatedRouter.(*router.Router)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Continue listening for events
	cmds = append(cmds, ui.ListenBus())

	return m, tea.Batch(cmds...)
}

// handleNavigation handles navigation to different screens. Screens are
// replaced rather than pushed: the wizard manages its own step history,
// so esc must reach it instead of popping a stack.
func (m *AppModel) handleNavigation(route ui.Route) tea.Cmd {
	var newScreen router.Screen

	switch route {
	case ui.RouteWelcome:
		newScreen = screen.NewWelcomeScreen(m.cfg)

	case ui.RouteCalculator:
		newScreen = screen.NewCalculatorScreen(m.cfg, m.exporter)

	default:
		return nil
	}

	return m.router.Replace(newScreen)
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	return m.router.View()
}

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	logPath := flag.String("log", "", "Optional log file (stdout would corrupt the TUI)")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, *logPath)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Starting email profit calculator TUI",
		zap.Int("list_size", cfg.ListSize))

	exporter := export.NewComparisonExporter(cfg.ExportDir, appLogger)

	program := tea.NewProgram(
		NewAppModel(cfg, exporter),
		tea.WithAltScreen(),
	)

	go func() {
		if _, err := program.Run(); err != nil {
			appLogger.Error("TUI application failed", zap.Error(err))
		}
		stop()
	}()

	<-rootCtx.Done()

	appLogger.Info("Shutting down TUI application")
	program.Quit()
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/toastd/toastd/expire"
	"github.com/toastd/toastd/internal/config"
	"github.com/toastd/toastd/internal/server"
	"github.com/toastd/toastd/internal/tui"
	"github.com/toastd/toastd/toast"
)

var (
	listenAddr string
	ttlFlag    int
	configPath string
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "toastd",
	Short:   "Self-expiring toast notifications for the terminal",
	Long:    "A terminal toast-notification board. Raise toasts locally or from other processes over WebSocket; each one counts down and disappears on its own.",
	Version: Version,
	RunE:    runBoard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.toastd/config.toml)")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "accept remote notices on this address (e.g. 127.0.0.1:9090)")
	rootCmd.Flags().IntVar(&ttlFlag, "ttl", 0, "toast lifetime in seconds (overrides config)")
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ttl := cfg.Toast.TTLSeconds
	if ttlFlag != 0 {
		ttl = ttlFlag
	}

	toasts := toast.New(
		toast.WithTTL(expire.Seconds(ttl)),
		toast.WithMaxVisible(cfg.Toast.MaxVisible),
		toast.WithStyles(themedStyles(cfg.Theme)),
	)

	var opts []tui.AppOption

	if listenAddr != "" {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		srv := server.New(listenAddr)
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("starting listener: %w", err)
		}
		opts = append(opts, tui.WithNotices(srv.Hub().Notices, srv.Addr()))
	}

	app := tui.NewApp(toasts, opts...)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}

func themedStyles(theme config.ThemeConfig) toast.Styles {
	return toast.Styles{
		Info:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info)),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warn)),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)),
		Gauge: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Gauge)),
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"curato/internal/app"
	"curato/internal/cachemanager"
	"curato/internal/config"
	"curato/internal/content"
	"curato/internal/log"
	"curato/internal/mode"
	"curato/internal/registry"
	"curato/internal/selection"
	"curato/internal/store"
	"curato/internal/tracing"
	"curato/internal/ui/forms"
	"curato/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color
	// BEFORE any Bubble Tea program starts, so the OSC 11 response
	// cannot race with Bubble Tea's input loop and leak into inputs.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "curato",
	Short:   "A terminal back office for learning content",
	Long:    `A terminal user interface for creating and managing learning content: categories, modules, videos, and articles backed by a local SQLite database.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .curato/config.yaml, then ~/.config/curato/config.yaml)")
	rootCmd.Flags().String("db", "",
		"path to the records database file")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic refresh when the database changes on disk")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to .curato/debug.log")

	_ = viper.BindPFlag("db_path", rootCmd.Flags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("db_path", defaults.DBPath)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("default_type", defaults.DefaultType)
	viper.SetDefault("ui.show_counts", defaults.UI.ShowCounts)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("cache.disabled", defaults.Cache.Disabled)
	viper.SetDefault("cache.ttl_seconds", defaults.Cache.TTLSeconds)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .curato/config.yaml (current directory)
		// 2. ~/.config/curato/config.yaml (user config)
		if _, err := os.Stat(".curato/config.yaml"); err == nil {
			viper.SetConfigFile(".curato/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "curato"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a default at
		// .curato/config.yaml and continue with defaults on failure.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".curato/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// contentTypes returns the registrable content types in display order.
func contentTypes() []registry.Descriptor {
	return []registry.Descriptor{
		{ID: content.TypeCategory, Label: content.Labels[content.TypeCategory]},
		{ID: content.TypeModule, Label: content.Labels[content.TypeModule]},
		{ID: content.TypeVideo, Label: content.Labels[content.TypeVideo]},
		{ID: content.TypeArticle, Label: content.Labels[content.TypeArticle]},
	}
}

// buildRegistry registers every content type with its form renderer.
func buildRegistry(deps forms.Deps) (*registry.Registry, error) {
	renderers := map[string]registry.Renderer{
		content.TypeCategory: func() registry.Form { return forms.NewCategoryForm(deps) },
		content.TypeModule:   func() registry.Form { return forms.NewModuleForm(deps) },
		content.TypeVideo:    func() registry.Form { return forms.NewVideoForm(deps) },
		content.TypeArticle:  func() registry.Form { return forms.NewArticleForm(deps) },
	}

	reg := registry.New()
	for _, desc := range contentTypes() {
		if err := reg.Register(desc, renderers[desc.ID]); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		closeLog, err := log.Init(".curato/debug.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer closeLog()
	}

	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	tracingCfg := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  "curato",
	}
	if tracingCfg.FilePath == "" {
		tracingCfg.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tracingCfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}()

	s, err := store.Open(dbPath, provider)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg, err := buildRegistry(forms.Deps{Store: s, Ctx: ctx})
	if err != nil {
		return fmt.Errorf("registering content types: %w", err)
	}

	listCache := cachemanager.NewReadThroughCache(
		cachemanager.NewInMemoryCacheManager[string, []content.Record](
			"record-list",
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			cachemanager.DefaultCleanupInterval,
		),
		func(ctx context.Context, typeID string) ([]content.Record, error) {
			return s.List(ctx, typeID)
		},
		cfg.Cache.Disabled,
	)

	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		configFilePath = ".curato/config.yaml"
	}

	services := mode.Services{
		Store:      s,
		Registry:   reg,
		ListCache:  listCache,
		Config:     &cfg,
		ConfigPath: configFilePath,
		DBPath:     dbPath,
		Ctx:        ctx,
	}

	sel := selection.NewControllerWithDefault(reg, cfg.DefaultType)

	model, err := app.New(services, sel)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, runErr := p.Run()

	if closeErr := model.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}

	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

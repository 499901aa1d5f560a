package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kamal-hamza/skillsheet/internal/adapters/repository"
	"github.com/kamal-hamza/skillsheet/internal/adapters/source"
	"github.com/kamal-hamza/skillsheet/internal/core/ports"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/internal/data"
	"github.com/kamal-hamza/skillsheet/pkg/assets"
	"github.com/kamal-hamza/skillsheet/pkg/config"
	"github.com/kamal-hamza/skillsheet/pkg/settings"
	"github.com/kamal-hamza/skillsheet/pkg/sprite"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
	"github.com/kamal-hamza/skillsheet/pkg/workspace"
)

var (
	// Global workspace and configuration
	appWorkspace  *workspace.Workspace
	appConfig     *config.Config
	appConfigPath string
	appLogger     *zap.Logger
	appSettings   *settings.Store

	// Asset routing
	appResolver *assets.Resolver
	appBase     assets.BaseProvider
	appSheet    sprite.Sheet

	// Roster source and a description of where it came from
	moduleSource ports.ModuleSource
	sourceLabel  string

	// Services
	rosterService *services.RosterService
	browseService *services.BrowseService
	statsService  *services.StatsService

	// Repositories
	settingsRepo *repository.FileSettingsRepository

	// Global flags
	configFile   string
	verbose      bool
	manifestFile string
	dataDir      string
	indexHTML    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skillsheet",
	Short: "skillsheet - KOF97 move lists in the terminal",
	Long: ui.StyleTitle.Render("skillsheet") + " - KOF97 出招表\n\n" +
		"Browse character move lists, resolve asset URLs against a CDN or the\n" +
		"deployment base path, and render sprite-sheet avatars.",
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/skillsheet/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&manifestFile, "manifest", "", "Roster manifest to load instead of the bundled roster")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory of character records to scan when no manifest is given")
	rootCmd.PersistentFlags().StringVar(&indexHTML, "index-html", "", "Deployed index.html to detect the runtime base path from")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that need nothing loaded
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = logger

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	appConfigPath = appWorkspace.ConfigPath
	if configFile != "" {
		appConfigPath = configFile
	}

	cfg, err := config.Load(appConfigPath)
	if err != nil {
		return err
	}
	if err := config.LoadDotEnv(); err != nil {
		appLogger.Warn("ignoring .env", zap.Error(err))
	}
	cfg.ApplyEnv(os.LookupEnv)
	applyFlagOverrides(cfg)
	appConfig = cfg

	initSettings(cmd.Context())

	src, label, err := buildSource(appConfig, appWorkspace, appLogger)
	if err != nil {
		return err
	}
	moduleSource = src
	sourceLabel = label
	appLogger.Debug("roster source selected", zap.String("source", sourceLabel))

	appBase = buildBase(appConfig)
	appResolver = assets.NewResolver(appConfig.Routing(), appBase)
	appSheet = appConfig.Sheet()

	// Initialize services
	rosterService = services.NewRosterService(moduleSource, appLogger)
	browseService = services.NewBrowseService(rosterService, appConfig.PageSize, appConfig.SkillsPageSize)
	statsService = services.NewStatsService(rosterService)

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	// Diagnostics stay quiet unless asked for; user output goes through pkg/ui
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func applyFlagOverrides(cfg *config.Config) {
	if manifestFile != "" {
		cfg.Data.Manifest = manifestFile
		cfg.Data.Dir = ""
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
		if manifestFile == "" {
			cfg.Data.Manifest = ""
		}
	}
	if indexHTML != "" {
		cfg.IndexHTML = indexHTML
	}
}

// initSettings loads display settings and keeps the terminal styles in sync
// with them. A broken settings file falls back to in-memory defaults.
func initSettings(ctx context.Context) {
	if ctx == nil {
		ctx = getContext()
	}

	settingsRepo = repository.NewFileSettingsRepository(appWorkspace.SettingsPath)
	store, err := settings.NewStore(ctx, settingsRepo)
	if err != nil {
		appLogger.Warn("using default settings", zap.String("path", settingsRepo.Path()), zap.Error(err))
		store, _ = settings.NewStore(ctx, nil)
	}
	appSettings = store

	// An explicit color_theme in config beats the stored color scheme
	if appConfig.ColorTheme == "" || appConfig.ColorTheme == "auto" {
		ui.ApplySettings(appSettings.Get())
	} else {
		ui.SetPrimary(appSettings.Get().PrimaryColor)
		ui.SetTheme(appConfig.ColorTheme)
	}
	appSettings.Subscribe(ui.ApplySettings)
}

// buildSource picks the roster source: an explicit manifest, a scanned
// directory, the local copy made by init, or the bundled roster.
func buildSource(cfg *config.Config, ws *workspace.Workspace, logger *zap.Logger) (ports.ModuleSource, string, error) {
	switch {
	case cfg.Data.Manifest != "":
		src, err := source.FromFile(cfg.Data.Manifest, logger)
		if err != nil {
			return nil, "", err
		}
		return src, cfg.Data.Manifest, nil

	case cfg.Data.Dir != "":
		abs, err := filepath.Abs(cfg.Data.Dir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve data dir: %w", err)
		}
		return source.NewDirSource(os.DirFS(abs), ".", logger), abs, nil

	case ws != nil && ws.HasRoster():
		src, err := source.FromFile(ws.ManifestPath(), logger)
		if err != nil {
			return nil, "", err
		}
		return src, ws.ManifestPath(), nil
	}

	return source.NewManifestSource(data.FS, data.Manifest, logger), "bundled", nil
}

// buildBase returns the deployment base provider. With index_html set the
// base is sniffed from the page's script tags, falling back to base_path.
func buildBase(cfg *config.Config) assets.BaseProvider {
	static := assets.StaticBase(cfg.BasePath)
	if cfg.IndexHTML == "" {
		return static
	}
	return assets.NewScriptTagBase(assets.FileDocument(cfg.IndexHTML), static)
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

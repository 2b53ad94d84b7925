package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/adapters/hostenv"
	"github.com/kamal-hamza/folio/internal/adapters/imagestore"
	"github.com/kamal-hamza/folio/internal/adapters/repository"
	"github.com/kamal-hamza/folio/internal/core/ports"
	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/config"
	"github.com/kamal-hamza/folio/pkg/ui"
	"github.com/kamal-hamza/folio/pkg/vault"
)

var (
	// Global vault instance
	appVault  *vault.Vault
	appConfig *config.Config
	appLogger *slog.Logger
	logFile   io.Closer

	// Stores
	artworkStore ports.ArtworkStore
	memoryImages *imagestore.MemoryStore // set only with --memory

	// Services
	listService   *services.ListService
	uploadService *services.UploadService
	statsService  *services.StatsService

	// Host integration
	fileOpener ports.FileOpener
	clipboard  ports.Clipboard

	// Global flags
	useMemory bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - A portfolio catalog for your artwork",
	Long: ui.StyleTitle.Render("folio") + " - Artwork Catalog\n\n" +
		"Catalog your creative works and browse them in a terminal gallery.\n" +
		"Newest works are featured first; everything else is one keypress away.",
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "Use a temporary in-memory catalog seeded with sample artworks")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that don't touch the catalog
	switch cmd.Name() {
	case "init", "version", "help", "completion":
		return nil
	}

	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	appVault = v

	if !useMemory && !appVault.Exists() {
		fmt.Println(ui.FormatError("Vault not initialized"))
		fmt.Println(ui.FormatInfo("Run 'folio init' to initialize the vault, or pass --memory"))
		return fmt.Errorf("vault not initialized")
	}

	cfg, err := config.Load(appVault.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	// The gallery owns the terminal, so its diagnostics go to the vault log
	logger, closer, err := newLogger(cmd.Name() == "gallery")
	if err != nil {
		return err
	}
	appLogger = logger
	logFile = closer
	slog.SetDefault(appLogger)

	wireStores()
	wireServices()

	appLogger.Debug("app initialized",
		"command", cmd.Name(),
		"memory", useMemory,
		"vault", appVault.RootPath,
	)
	return nil
}

func newLogger(ownsTerminal bool) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: appConfig.SlogLevel()}
	if !ownsTerminal {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil, nil
	}
	if !appVault.Exists() {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}

	f, err := os.OpenFile(appVault.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

func wireStores() {
	latency := []repository.MemoryOption{
		repository.WithListLatency(appConfig.ListLatency()),
		repository.WithUploadLatency(appConfig.UploadLatency()),
	}

	if useMemory {
		memoryImages = imagestore.NewMemoryStore()
		opts := append(latency, repository.WithSeed(repository.SampleArtworks()))
		artworkStore = repository.NewMemoryStore(memoryImages, opts...)
		return
	}

	images := imagestore.NewFileStore(appVault.ImagesPath)
	artworkStore = repository.NewFileStore(appVault.CatalogPath(), images, latency...)
}

func wireServices() {
	listService = services.NewListService(artworkStore)
	uploadService = services.NewUploadService(artworkStore)
	statsService = services.NewStatsService(artworkStore)

	fileOpener = hostenv.NewSystemOpener(appConfig.ImageViewer)
	clipboard = hostenv.NewSystemClipboard()
}

func shutdownApp(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

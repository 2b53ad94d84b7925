package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "folio"

// Vault represents the managed storage directory for folio
type Vault struct {
	RootPath   string
	ImagesPath string
	CachePath  string
	SitePath   string
	ConfigPath string
}

// New creates a new Vault instance with XDG-compliant paths
func New() (*Vault, error) {
	rootPath, err := getVaultRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to determine vault root: %w", err)
	}
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}

	return NewAt(rootPath, configPath), nil
}

// NewAt creates a vault rooted at an explicit directory
func NewAt(rootPath, configPath string) *Vault {
	return &Vault{
		RootPath:   rootPath,
		ImagesPath: filepath.Join(rootPath, "images"),
		CachePath:  filepath.Join(rootPath, "cache"),
		SitePath:   filepath.Join(rootPath, "site"),
		ConfigPath: configPath,
	}
}

// getVaultRoot returns the vault root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getVaultRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName), nil
	}

	return filepath.Join(homeDir, ".local", "share", appName), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName+"-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// Initialize creates the vault directory structure if it doesn't exist
func (v *Vault) Initialize() error {
	directories := []string{
		v.RootPath,
		v.ImagesPath,
		v.CachePath,
		v.SitePath,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the vault has been initialized
func (v *Vault) Exists() bool {
	info, err := os.Stat(v.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CatalogPath returns the path to the catalog file
func (v *Vault) CatalogPath() string {
	return filepath.Join(v.RootPath, "catalog.yaml")
}

// LogPath returns the path to the diagnostic log
func (v *Vault) LogPath() string {
	return filepath.Join(v.RootPath, "folio.log")
}

// GetImagePath returns the full path for a stored image
func (v *Vault) GetImagePath(filename string) string {
	return filepath.Join(v.ImagesPath, filename)
}

// GetCachePath returns the full path for a cached file
func (v *Vault) GetCachePath(filename string) string {
	return filepath.Join(v.CachePath, filename)
}

// ExportPath returns where the static site is written.
// An empty override means the vault's site directory.
func (v *Vault) ExportPath(override string) string {
	if override != "" {
		return override
	}
	return v.SitePath
}

// CleanCache removes all files in the cache directory
func (v *Vault) CleanCache() error {
	entries, err := os.ReadDir(v.CachePath)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(v.CachePath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}

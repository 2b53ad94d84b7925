package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/folio/internal/adapters/imagestore"
	"github.com/kamal-hamza/folio/internal/core/domain"
)

// GetPreferredEditor returns the editor command from config, env, or default
func GetPreferredEditor() string {
	// 1. Check Config
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	// 2. Check Environment
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	// 3. Fallback
	return "vi"
}

// resolveImageTarget turns an artwork's image reference into something the
// host opener understands. Local files become paths; in-memory blobs are
// written out to a scratch file first.
func resolveImageTarget(a domain.Artwork) (string, error) {
	ref := a.ImageURL
	switch {
	case ref == "":
		return "", fmt.Errorf("artwork %q has no image", a.Title)

	case strings.HasPrefix(ref, "file://"):
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("invalid image url: %w", err)
		}
		return filepath.FromSlash(u.Path), nil

	case strings.HasPrefix(ref, imagestore.BlobPrefix):
		if memoryImages == nil {
			return "", fmt.Errorf("image %s is not available outside --memory mode", ref)
		}
		data, _, ok := memoryImages.Get(ref)
		if !ok {
			return "", fmt.Errorf("image not found: %s", ref)
		}
		return writeScratchImage(strings.TrimPrefix(ref, imagestore.BlobPrefix), data)

	default:
		return ref, nil
	}
}

func writeScratchImage(name string, data []byte) (string, error) {
	dir := filepath.Join(os.TempDir(), "folio")
	if appVault != nil && appVault.Exists() {
		dir = appVault.CachePath
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

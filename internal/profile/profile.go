// Package profile locates the local-storage LevelDB directory inside a
// Chromium-family browser profile. It only builds paths; whether the
// directory exists (or is locked by a running browser) surfaces when the
// store is opened.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var ErrUnknownBrowser = errors.New("profile: unknown browser")

// vendor directory under the per-OS browser data root, keyed by the
// browser name accepted on the command line.
var vendorDirs = map[string]string{
	"chrome":   "google-chrome",
	"chromium": "chromium",
	"edge":     "microsoft-edge",
	"brave":    filepath.Join("BraveSoftware", "Brave-Browser"),
}

var vendorDirsDarwin = map[string]string{
	"chrome":   filepath.Join("Google", "Chrome"),
	"chromium": "Chromium",
	"edge":     "Microsoft Edge",
	"brave":    filepath.Join("BraveSoftware", "Brave-Browser"),
}

var vendorDirsWindows = map[string]string{
	"chrome":   filepath.Join("Google", "Chrome", "User Data"),
	"chromium": filepath.Join("Chromium", "User Data"),
	"edge":     filepath.Join("Microsoft", "Edge", "User Data"),
	"brave":    filepath.Join("BraveSoftware", "Brave-Browser", "User Data"),
}

// StoreDir returns the local-storage LevelDB directory for the named browser
// and profile. profileDir overrides browser/profile resolution entirely and
// is taken as the browser profile directory itself.
func StoreDir(browser, profileName, profileDir string) (string, error) {
	if profileDir != "" {
		return filepath.Join(profileDir, "Local Storage", "leveldb"), nil
	}

	if profileName == "" {
		profileName = "Default"
	}

	root, err := dataRoot(browser)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, profileName, "Local Storage", "leveldb"), nil
}

func dataRoot(browser string) (string, error) {
	vendors := vendorDirs
	switch runtime.GOOS {
	case "darwin":
		vendors = vendorDirsDarwin
	case "windows":
		vendors = vendorDirsWindows
	}

	vendor, ok := vendors[browser]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBrowser, browser)
	}

	// Chromium keeps profile data under %LocalAppData% on Windows, which
	// os.UserCacheDir resolves to; elsewhere it lives in the config dir.
	var base string
	var err error
	if runtime.GOOS == "windows" {
		base, err = os.UserCacheDir()
	} else {
		base, err = os.UserConfigDir()
	}
	if err != nil {
		return "", fmt.Errorf("resolve user data dir: %w", err)
	}
	return filepath.Join(base, vendor), nil
}

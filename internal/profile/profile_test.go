package profile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDirWithExplicitProfileDir(t *testing.T) {
	dir, err := StoreDir("", "", filepath.Join("some", "profile"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("some", "profile", "Local Storage", "leveldb"), dir)
}

func TestStoreDirKnownBrowsers(t *testing.T) {
	suffix := filepath.Join("Default", "Local Storage", "leveldb")
	for _, browser := range []string{"chrome", "chromium", "edge", "brave"} {
		dir, err := StoreDir(browser, "", "")
		require.NoError(t, err, browser)
		assert.True(t, strings.HasSuffix(dir, suffix), "%s: %s", browser, dir)
		assert.True(t, filepath.IsAbs(dir), browser)
	}
}

func TestStoreDirCustomProfileName(t *testing.T) {
	dir, err := StoreDir("chrome", "Profile 2", "")
	require.NoError(t, err)
	assert.Contains(t, dir, filepath.Join("Profile 2", "Local Storage", "leveldb"))
}

func TestStoreDirUnknownBrowser(t *testing.T) {
	_, err := StoreDir("netscape", "", "")
	assert.ErrorIs(t, err, ErrUnknownBrowser)
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/openbook-dex/openbook-v2/tree/master/programs/openbook-v2/src/state/orderbook", cfg.ListingURL)
	assert.Equal(t, ".rs", cfg.Suffix)
	assert.Equal(t, "https://raw.githubusercontent.com", cfg.RawBaseURL)
	assert.Equal(t, "a.js-navigation-open.Link--primary", cfg.LinkSelector)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 500, cfg.PreviewLength)
	assert.False(t, cfg.RenderJS)
	assert.False(t, cfg.RespectRobots)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LISTING_URL", "https://github.com/org/repo/tree/main/src")
	t.Setenv("SUFFIX", ".go")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PREVIEW_LENGTH", "42")
	t.Setenv("RESPECT_ROBOTS", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/org/repo/tree/main/src", cfg.ListingURL)
	assert.Equal(t, ".go", cfg.Suffix)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 42, cfg.PreviewLength)
	assert.True(t, cfg.RespectRobots)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoad_InvalidDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLevel_UnknownFallsBackToInfo(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
}

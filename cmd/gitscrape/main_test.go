package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gitscraper/internal/config"
)

func TestRootCmd_PrintsPreview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/org/repo/tree/main/src", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<a class="js-navigation-open Link--primary" href="/org/repo/blob/main/src/a.rs">a.rs</a>
			<a class="js-navigation-open Link--primary" href="/org/repo/blob/main/src/b.rs">b.rs</a>
		</body></html>`))
	})
	mux.HandleFunc("/org/repo/main/src/a.rs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fn a(){}"))
	})
	mux.HandleFunc("/org/repo/main/src/b.rs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fn b(){}"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	chdir(t, t.TempDir())
	t.Setenv("RAW_BASE_URL", server.URL)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{server.URL + "/org/repo/tree/main/src", "--preview", "12"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "fn a(){}\n\nfn\n", out.String())
}

func TestRootCmd_NothingFetchedStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{server.URL + "/org/repo/tree/main/src"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "\n", out.String())
}

func TestRootCmd_InvalidSelectorFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LINK_SELECTOR", "a[")

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"http://127.0.0.1:1/listing"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{ListingURL: "env-url", Suffix: ".rs", PreviewLength: 500, LogLevel: "info"}
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--suffix", ".go", "--debug", "--respect-robots"}))

	flags := cliFlags{suffix: ".go", debug: true, respectRobots: true}
	applyFlags(cmd, cfg, &flags, []string{"arg-url"})

	assert.Equal(t, "arg-url", cfg.ListingURL)
	assert.Equal(t, ".go", cfg.Suffix)
	assert.Equal(t, 500, cfg.PreviewLength, "unset flags keep config values")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RespectRobots)
	assert.False(t, cfg.RenderJS)
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

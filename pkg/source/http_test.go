package source_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devzarghami/translate/pkg/source"
)

func TestHTTP(t *testing.T) {
	t.Parallel()

	t.Run("fetches JSON by content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"navbar":{"title":"Welcome"}}`))
		}))
		defer srv.Close()

		tree, err := source.HTTP(srv.URL).Fetch(t.Context())
		require.NoError(t, err)

		value, ok := tree.Lookup("navbar.title")
		require.True(t, ok)
		require.Equal(t, "Welcome", value)
	})

	t.Run("falls back to URL extension for YAML", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte("navbar:\n  title: Welcome\n"))
		}))
		defer srv.Close()

		tree, err := source.HTTP(srv.URL + "/locales/en.yaml").Fetch(t.Context())
		require.NoError(t, err)

		value, ok := tree.Lookup("navbar.title")
		require.True(t, ok)
		require.Equal(t, "Welcome", value)
	})

	t.Run("sends configured headers", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"greeting":"Hello"}`))
		}))
		defer srv.Close()

		src := source.HTTP(srv.URL,
			source.WithHTTPClient(srv.Client()),
			source.WithHTTPHeader("Authorization", "Bearer token"),
		)

		tree, err := src.Fetch(t.Context())
		require.NoError(t, err)

		value, ok := tree.Lookup("greeting")
		require.True(t, ok)
		require.Equal(t, "Hello", value)
	})

	t.Run("fails on non-200 responses", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := source.HTTP(srv.URL).Fetch(t.Context())
		require.ErrorIs(t, err, source.ErrUnexpectedStatus)
	})

	t.Run("fails on unreachable hosts", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := source.HTTP(srv.URL).Fetch(t.Context())
		require.Error(t, err)
	})
}

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/pkg/logger"
)

const comicsJSON = `[
	{"id":1,"title":"Saga #1","author":"Brian K. Vaughan","series":"Saga","mainCharacter":"Alana","image":"/img/saga.png","price":4,"comicType":"PHYSICAL_COPY"},
	{"id":2,"title":"Paper Girls #1","author":"Brian K. Vaughan","series":"Paper Girls","mainCharacter":"Erin","image":"https://cdn.test/pg.png","price":3.5,"comicType":"ONLY_DIGITAL"}
]`

func backend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/comics" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(comicsJSON))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o, err := parseFlags(nil, "http://api.test")
		require.NoError(t, err)
		assert.Equal(t, "http://api.test", o.apiURL)
	})

	t.Run("unknown facet", func(t *testing.T) {
		_, err := parseFlags([]string{"-facet", "publisher"}, "")
		assert.Error(t, err)
	})

	t.Run("value without facet", func(t *testing.T) {
		_, err := parseFlags([]string{"-value", "Saga"}, "")
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	srv := backend(t)

	t.Run("prices follow the tier", func(t *testing.T) {
		var out bytes.Buffer
		opts := options{apiURL: srv.URL, tier: "UNLIMITED"}
		require.NoError(t, run(context.Background(), opts, srv.Client(), &out, logger.Discard()))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], "$2.00")
		assert.Contains(t, lines[1], srv.URL+"/img/saga.png")
		assert.Contains(t, lines[2], "FREE WITH UNLIMITED")
		assert.Contains(t, lines[2], "https://cdn.test/pg.png")
	})

	t.Run("filtered heading", func(t *testing.T) {
		var out bytes.Buffer
		opts := options{apiURL: srv.URL, facet: "series", value: "Saga"}
		require.NoError(t, run(context.Background(), opts, srv.Client(), &out, logger.Discard()))

		assert.True(t, strings.HasPrefix(out.String(), "FILTERED RESULTS (1)"))
		assert.Contains(t, out.String(), "$4.00")
		assert.NotContains(t, out.String(), "Paper Girls")
	})

	t.Run("facet listing", func(t *testing.T) {
		var out bytes.Buffer
		opts := options{apiURL: srv.URL, facets: true}
		require.NoError(t, run(context.Background(), opts, srv.Client(), &out, logger.Discard()))

		assert.Contains(t, out.String(), "  All Series\n  Paper Girls\n  Saga\n")
	})

	t.Run("backend failure", func(t *testing.T) {
		down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer down.Close()

		err := run(context.Background(), options{apiURL: down.URL}, down.Client(), &bytes.Buffer{}, logger.Discard())
		assert.Error(t, err)
	})

	t.Run("cancellation stops a stalled backend", func(t *testing.T) {
		stalled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer stalled.Close()

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		err := run(ctx, options{apiURL: stalled.URL}, &http.Client{}, &bytes.Buffer{}, logger.Discard())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

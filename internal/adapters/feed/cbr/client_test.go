package cbr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kmalkov/cbr_rates_app/internal/adapters/feed/cbr"
	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestFetch_DecodesLegacyEncoding(t *testing.T) {
	utf8Body := `<?xml version="1.0" encoding="windows-1251"?><ValCurs Date="02.03.2025"><Valute ID="R01235"><Name>Доллар США</Name></Valute></ValCurs>`
	legacyBody, err := charmap.Windows1251.NewEncoder().String(utf8Body)
	require.NoError(t, err)

	var gotDateReq string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDateReq = r.URL.Query().Get("date_req")
		w.Header().Set("Content-Type", "application/xml; charset=windows-1251")
		_, _ = w.Write([]byte(legacyBody))
	}))
	defer srv.Close()

	client := cbr.NewClient(srv.URL, 5*time.Second)
	date := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	body, err := client.Fetch(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, "02/03/2025", gotDateReq)
	assert.Equal(t, utf8Body, body)
	assert.True(t, strings.Contains(body, "Доллар США"))
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := cbr.NewClient(srv.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server already down

	client := cbr.NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestFetch_HonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	client := cbr.NewClient(srv.URL, 10*time.Second)
	_, err := client.Fetch(ctx, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

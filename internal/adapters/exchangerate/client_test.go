package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestRates(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"base": "USD", "date": "2024-01-15", "rates": {"USD": 1, "INR": 83.12, "EUR": 0.91}}`))
	}))
	defer srv.Close()

	rates, err := NewClient(srv.Client(), srv.URL+"/v4/latest").LatestRates(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, "/v4/latest/USD", gotPath)
	assert.Equal(t, "83.12", rates["INR"].String())
	assert.Equal(t, "0.91", rates["EUR"].String())
}

func TestLatestRates_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported code", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.Client(), srv.URL).LatestRates(context.Background(), "XXX")
	assert.Error(t, err)
}

package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("1,10000\n"))
	}))
	defer srv.Close()

	client := NewHTTPClient(time.Second)
	status, body, headers, err := client.Get(context.Background(), srv.URL, http.Header{"Accept": []string{"text/csv"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1,10000\n", string(body))
	assert.Equal(t, "text/csv", headers.Get("Content-Type"))
}

func TestHTTPClient_GetCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient(0).Get(ctx, srv.URL, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Get(gomock.Any(), "http://example.com/payments.csv", nil).Return(0, nil, nil, errors.New("connection refused"))

	client := NewHTTPClient(time.Second)
	client.SetClient(mock)

	_, _, _, err := client.Get(context.Background(), "http://example.com/payments.csv", nil)
	assert.EqualError(t, err, "connection refused")
}

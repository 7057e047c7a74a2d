package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kml-smoke/core/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	resp, err := httpclient.NewClient(0).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestClient_GetTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := httpclient.NewClient(20 * time.Millisecond).Get(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestClient_PostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Route A", r.FormValue("route_name"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "Bike routes.kml", hdr.Filename)
		assert.Equal(t, "<kml/>", string(data))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := httpclient.NewClient(time.Second).PostMultipart(context.Background(), srv.URL, httpclient.Upload{
		Field:    "file",
		FileName: "Bike routes.kml",
		Content:  strings.NewReader("<kml/>"),
		Fields:   map[string]string{"route_name": "Route A"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := httpclient.NewClient(time.Second).Get(context.Background(), addr)
	assert.Error(t, err)
}

package checks

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kml-smoke/core/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func closedURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()
	return addr
}

func runFrontend(urls ...string) (*FrontendResult, string) {
	out := &bytes.Buffer{}
	checker := NewFrontendChecker(httpclient.NewClient(time.Second), urls, zap.NewNop(), out)
	return checker.Check(context.Background()), out.String()
}

func TestFrontendChecker_SecondCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title> Tour Profile </title></head><body></body></html>"))
	}))
	defer srv.Close()

	first := closedURL()
	result, out := runFrontend(first, srv.URL)

	assert.Equal(t, Passed, result.Outcome)
	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, "Tour Profile", result.Title)
	require.Len(t, result.Attempts, 2)
	assert.NotEmpty(t, result.Attempts[0].Error)
	assert.Equal(t, http.StatusOK, result.Attempts[1].StatusCode)
	assert.Contains(t, out, "Frontend not accessible at: "+first)
	assert.Contains(t, out, "Frontend accessible at: "+srv.URL)
}

func TestFrontendChecker_ShortCircuit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("second candidate must not be probed")
	}))
	defer second.Close()

	result, _ := runFrontend(srv.URL, second.URL)
	assert.True(t, result.OK())
	assert.Len(t, result.Attempts, 1)
	assert.Equal(t, "", result.Title)
}

func TestFrontendChecker_NoneReachable(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	result, out := runFrontend(closedURL(), notFound.URL)

	assert.Equal(t, Failed, result.Outcome)
	assert.False(t, result.OK())
	assert.Empty(t, result.URL)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, http.StatusNotFound, result.Attempts[1].StatusCode)
	assert.Contains(t, out, "Frontend not accessible at:")
}

func TestFrontendChecker_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer slow.Close()

	out := &bytes.Buffer{}
	checker := NewFrontendChecker(httpclient.NewClient(50*time.Millisecond), []string{slow.URL}, zap.NewNop(), out)
	result := checker.Check(context.Background())

	assert.Equal(t, Failed, result.Outcome)
	assert.Contains(t, out.String(), "Frontend not accessible at: "+slow.URL)
}

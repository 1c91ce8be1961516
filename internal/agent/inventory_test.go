package agent

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocinet/ocinet/internal/config"
	"github.com/ocinet/ocinet/internal/server"
)

func TestFetchNetworkConfig_Compacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/network/config", r.URL.Path)
		io.WriteString(w, "{\n  \"vcns\": [],\n  \"subnets\": []\n}\n")
	}))
	defer srv.Close()

	// A trailing slash on the base URL must not double up.
	got, err := NewInventoryClient(srv.URL+"/", time.Second).FetchNetworkConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"vcns":[],"subnets":[]}`, got)
}

func TestFetchNetworkConfig_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "ListVcns: NotAuthorizedOrNotFound"}`)
	}))
	defer srv.Close()

	_, err := NewInventoryClient(srv.URL, time.Second).FetchNetworkConfig(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "ListVcns: NotAuthorizedOrNotFound")
}

func TestFetchNetworkConfig_CompartmentNotSetBecomesContext(t *testing.T) {
	h := server.NewRouter(nil, nil, &config.ServerConfig{RequestTimeout: time.Minute})
	srv := httptest.NewServer(h)
	defer srv.Close()

	got, err := NewInventoryClient(srv.URL, time.Second).FetchNetworkConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"error":"OCI_COMPARTMENT_OCID environment variable not set"}`, got)

	// The agent starts and sends the error object as context.
	model := &fakeModel{answer: "set the compartment"}
	var out bytes.Buffer
	require.NoError(t, New(model, got, strings.NewReader("why is it empty?\n"), &out).Run(context.Background()))
	require.Equal(t, 1, model.callCount())
	assert.Contains(t, textOf(t, model.calls[0].messages[1]), `Context: {"error":"OCI_COMPARTMENT_OCID environment variable not set"}`)
}

func TestFetchNetworkConfig_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewInventoryClient(srv.URL, time.Second).FetchNetworkConfig(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500: Internal Server Error")
}

func TestFetchNetworkConfig_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer srv.Close()

	_, err := NewInventoryClient(srv.URL, time.Second).FetchNetworkConfig(context.Background())
	assert.Error(t, err)
}

func TestFetchNetworkConfig_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewInventoryClient(url, time.Second).FetchNetworkConfig(context.Background())
	assert.Error(t, err)
}

func TestFetchNetworkConfig_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewInventoryClient(srv.URL, 20*time.Millisecond).FetchNetworkConfig(context.Background())
	assert.Error(t, err)
}

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"k8s.io/klog/v2"
)

// InventoryClient reads the network inventory from the inventory server.
type InventoryClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	return &InventoryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchNetworkConfig returns the /network/config body as compact JSON text.
// Any non-2xx status is an error carrying the server's error message. A 200
// error object, as sent for an unset compartment, is returned as context.
func (c *InventoryClient) FetchNetworkConfig(ctx context.Context) (string, error) {
	url := c.baseURL + "/network/config"
	logger := klog.FromContext(ctx).WithValues("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building inventory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading inventory response: %w", err)
	}
	logger.V(1).Info("Fetched network inventory", "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return "", fmt.Errorf("inventory server returned %d: %s", resp.StatusCode, e.Error)
		}
		return "", fmt.Errorf("inventory server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return "", fmt.Errorf("decoding inventory: %w", err)
	}
	return buf.String(), nil
}

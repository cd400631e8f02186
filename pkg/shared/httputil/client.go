package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeoutSecs = 30

// NewClient builds an HTTP client with the given timeout, optionally routed
// through a proxy. An empty proxy URL means a direct connection.
func NewClient(proxyURL string, timeoutSecs int) (*http.Client, error) {
	if timeoutSecs <= 0 {
		timeoutSecs = defaultTimeoutSecs
	}
	client := &http.Client{Timeout: time.Duration(timeoutSecs) * time.Second}
	if proxy := strings.TrimSpace(proxyURL); proxy != "" {
		parsed, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(parsed)}
	}
	return client, nil
}

// Get sends a GET request with the given headers.
// Returns the response body, status code, and any error.
func Get(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return do(client, req)
}

// PostForm submits a URL-encoded form with the given headers.
// Returns the response body, status code, and any error.
func PostForm(ctx context.Context, client *http.Client, url string, form url.Values, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return do(client, req)
}

func do(client *http.Client, req *http.Request) ([]byte, int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	return data, resp.StatusCode, nil
}

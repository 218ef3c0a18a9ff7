package client

import (
	"compress/gzip"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
}

// FetchError is returned for any failed page fetch: transport errors,
// non-2xx responses and unreadable bodies.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves raw page markup over one shared HTTP client
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher builds a Fetcher. An empty proxyURL means a direct connection.
func NewFetcher(proxyURL string, timeout time.Duration) *Fetcher {
	httpClient := CreateProxyHTTPClient(proxyURL)
	if timeout > 0 {
		httpClient.Timeout = timeout
	}
	return &Fetcher{httpClient: httpClient}
}

// NewFetcherWithClient wraps an existing client, mostly for tests.
func NewFetcherWithClient(httpClient *http.Client) *Fetcher {
	return &Fetcher{httpClient: httpClient}
}

// Fetch performs a single GET and returns the response body as text
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}

	headers := GetRandomHeaders()
	for key, values := range headers {
		req.Header[key] = values
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: pageURL, Status: resp.StatusCode}
	}

	body, err := ReadResponseBody(resp)
	if err != nil {
		return "", &FetchError{URL: pageURL, Status: resp.StatusCode, Err: err}
	}

	return string(body), nil
}

// Close drops the pooled connections held by the underlying client
func (f *Fetcher) Close() {
	f.httpClient.CloseIdleConnections()
}

// CreateProxyHTTPClient creates an HTTP client with proxy support
func CreateProxyHTTPClient(proxyURL string) *http.Client {
	if proxyURL == "" {
		return CreateHTTPClient()
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return CreateHTTPClient()
	}

	httpClient := CreateHTTPClient()
	httpClient.Transport.(*http.Transport).Proxy = http.ProxyURL(proxy)
	return httpClient
}

// CreateHTTPClient creates a standard HTTP client
func CreateHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   DefaultTimeout,
	}
}

// GetRandomHeaders returns a set of browser-like HTTP headers
func GetRandomHeaders() http.Header {
	headers := http.Header{}

	headers.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	headers.Set("Accept-Language", "uk-UA,uk;q=0.9,en-US;q=0.8,en;q=0.7")
	// Only gzip: ReadResponseBody cannot decode br.
	headers.Set("Accept-Encoding", "gzip")
	headers.Set("Connection", "keep-alive")
	headers.Set("Upgrade-Insecure-Requests", "1")
	headers.Set("Sec-Fetch-Dest", "document")
	headers.Set("Sec-Fetch-Mode", "navigate")
	headers.Set("Sec-Fetch-Site", "none")

	return headers
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}

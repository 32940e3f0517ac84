package journal

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
)

// contains http utils to deal with remote quote services

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskCache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a disk cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// HTTPQuotes fetches prices from a per-symbol JSON endpoint. The URL template
// must contain a single %s placeholder for the symbol, and Path is the
// JSONPath of the price inside the response document.
//
// Responses are cached on disk with daily expiry; wrap an HTTPQuotes in
// [NewCachedQuotes] for finer grained freshness.
type HTTPQuotes struct {
	URL      string // e.g. "https://quotes.example.com/v1/price?symbol=%s"
	Path     string // e.g. "$.data.last"
	Currency string

	client *http.Client
}

// NewHTTPQuotes creates a provider for the given endpoint template.
func NewHTTPQuotes(url, path, currency string) *HTTPQuotes {
	return &HTTPQuotes{URL: url, Path: path, Currency: currency, client: daily()}
}

func (h *HTTPQuotes) Quote(symbol string) (Money, error) {
	if !strings.Contains(h.URL, "%s") {
		return Money{}, fmt.Errorf("quote URL template %q has no %%s placeholder", h.URL)
	}
	addr := fmt.Sprintf(h.URL, symbol)

	var jobj any
	if err := jwget(h.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	val, err := extractPrice(jobj, h.Path)
	if err != nil {
		return Money{}, fmt.Errorf("error reading quote for %q: %w", symbol, err)
	}
	return M(val, h.Currency), nil
}

// extractPrice applies a JSONPath to a decoded document and coerces the
// result into a float price.
func extractPrice(jobj any, path string) (float64, error) {
	jval := jobj
	if path != "" {
		var err error
		jval, err = jsonpathGet(path, jobj)
		if err != nil {
			return 0, err
		}
	}
	return asPrice(jval)
}

package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/calconv/backend/internal/domain"
)

// Client handles communication with the USDA FoodData Central API
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	debug      bool
}

// NewClient creates a new USDA API client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 10 << 20

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[USDA] "+format, args...)
	}
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CalorieConverter/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
	}

	return resp, nil
}

// SearchFoods searches the USDA database. An empty food list is a valid
// response and is returned without error.
func (c *Client) SearchFoods(ctx context.Context, query string, pageSize int) (*domain.USDASearchResponse, error) {
	c.debugLog("SearchFoods called with query: %q pageSize: %d", query, pageSize)

	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("pageSize", strconv.Itoa(pageSize))
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		log.Printf("[USDA] Request error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxResponseBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUSDAAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[USDA] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrUSDAAPIFailure, resp.StatusCode)
	}

	var searchResp domain.USDASearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[USDA] JSON decode error: %v", err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrUSDAAPIFailure, err)
	}

	c.debugLog("Found %d foods for query: %q", len(searchResp.Foods), query)
	return &searchResp, nil
}

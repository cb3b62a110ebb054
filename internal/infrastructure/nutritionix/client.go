package nutritionix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/calconv/backend/internal/domain"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 10 << 20

// Client handles communication with the Nutritionix natural-language API
type Client struct {
	httpClient *http.Client
	appID      string
	appKey     string
	baseURL    string
	debug      bool
}

// NewClient creates a new Nutritionix API client
func NewClient(appID, appKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		appID:   appID,
		appKey:  appKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[NUTRITIONIX] "+format, args...)
	}
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// NaturalNutrients parses a free-text food query. A response without foods
// is returned as-is; callers decide what an empty list means.
func (c *Client) NaturalNutrients(ctx context.Context, query string) (*domain.NutritionixResponse, error) {
	c.debugLog("NaturalNutrients called with query: %q", query)

	payload, err := json.Marshal(domain.NutritionixRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/natural/nutrients", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.appKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CalorieConverter/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[NUTRITIONIX] Request error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNutritionixAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxResponseBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrNutritionixAPIFailure, err)
	}

	// Nutritionix answers 404 "we couldn't match any of your foods"
	// when the query parses to nothing.
	if resp.StatusCode == http.StatusNotFound {
		c.debugLog("No foods matched query: %q", query)
		return &domain.NutritionixResponse{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[NUTRITIONIX] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrNutritionixAPIFailure, resp.StatusCode)
	}

	var nutrientsResp domain.NutritionixResponse
	if err := json.Unmarshal(body, &nutrientsResp); err != nil {
		log.Printf("[NUTRITIONIX] JSON decode error: %v", err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrNutritionixAPIFailure, err)
	}

	c.debugLog("Found %d foods for query: %q", len(nutrientsResp.Foods), query)
	return &nutrientsResp, nil
}

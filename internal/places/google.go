package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxResults = 10

// GoogleClient queries the Google Places text-search endpoint.
type GoogleClient struct {
	baseURL string
	apiKey  string
	radius  int
	client  *http.Client
}

func NewGoogleClient(baseURL, apiKey string, radiusMeters int, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		radius:  radiusMeters,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Types            []string `json:"types"`
	} `json:"results"`
}

// Search runs a text search scoped to the given location. Results are capped
// at maxResults and deduplicated by lowercased name.
func (c *GoogleClient) Search(ctx context.Context, query, location string) ([]Candidate, error) {
	q := strings.TrimSpace(query)
	if location != "" {
		q = q + " " + location
	}

	params := url.Values{}
	params.Set("query", q)
	params.Set("key", c.apiKey)
	params.Set("radius", strconv.Itoa(c.radius))
	params.Set("type", "store")

	endpoint := c.baseURL + "/textsearch/json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return nil, fmt.Errorf("places http status %d: %s", res.StatusCode, string(body))
	}

	var parsed textSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch parsed.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("places status %s", parsed.Status)
	}

	seen := make(map[string]struct{}, len(parsed.Results))
	out := make([]Candidate, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Candidate{
			Name:    strings.TrimSpace(r.Name),
			Address: strings.TrimSpace(r.FormattedAddress),
			Types:   r.Types,
		})
		if len(out) == maxResults {
			break
		}
	}
	return out, nil
}

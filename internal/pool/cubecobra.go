package pool

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://cubecobra.com"

// CubeCobra fetches cube lists from the CubeCobra API. The cubelist endpoint
// returns plain text, one card name per line.
type CubeCobra struct {
	baseURL string
	client  *http.Client
}

// NewCubeCobra builds a client against baseURL, or the public CubeCobra site
// when empty.
func NewCubeCobra(baseURL string) *CubeCobra {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &CubeCobra{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch downloads the card list for the cube id. Transport failures and
// non-2xx responses both come back as ErrUnavailable.
func (c *CubeCobra) Fetch(ctx context.Context, id string) ([]string, error) {
	url := fmt.Sprintf("%s/cube/api/cubelist/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrUnavailable, url, res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	cards := splitList(string(body))
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: cube %s is empty", ErrUnavailable, id)
	}
	return cards, nil
}

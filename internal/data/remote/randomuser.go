// Package remote holds clients for external identity sources.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"localserve/internal/data/entity"
)

// IdentitySource returns raw person identities used to build provider records.
type IdentitySource interface {
	FetchIdentities(ctx context.Context, count int) ([]entity.Identity, error)
}

// RandomUserClient talks to the randomuser.me compatible API.
type RandomUserClient struct {
	baseURL    string
	httpClient *http.Client
}

type randomUserResponse struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Picture struct {
			Large string `json:"large"`
		} `json:"picture"`
		Phone string `json:"phone"`
	} `json:"results"`
}

func NewRandomUserClient(baseURL string, timeout time.Duration) *RandomUserClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RandomUserClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *RandomUserClient) FetchIdentities(ctx context.Context, count int) ([]entity.Identity, error) {
	if c == nil || c.baseURL == "" {
		return nil, fmt.Errorf("identity source not configured")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var payload randomUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	identities := make([]entity.Identity, 0, len(payload.Results))
	for _, r := range payload.Results {
		identities = append(identities, entity.Identity{
			FirstName: r.Name.First,
			LastName:  r.Name.Last,
			Photo:     r.Picture.Large,
			Phone:     r.Phone,
		})
	}

	return identities, nil
}

var _ IdentitySource = (*RandomUserClient)(nil)

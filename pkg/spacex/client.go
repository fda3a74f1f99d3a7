package spacex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches historical launches from the SpaceX REST API.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Option func(*Client)

// Launch is the raw provider payload for a single launch.
type Launch struct {
	FlightNumber int    `json:"flight_number"`
	MissionName  string `json:"mission_name"`
	LaunchDate   int64  `json:"launch_date_unix"`
	LaunchSite   struct {
		SiteName string `json:"site_name"`
	} `json:"launch_site"`
	Links struct {
		MissionPatchSmall string `json:"mission_patch_small"`
		MissionPatchLarge string `json:"mission_patch"`
	} `json:"links"`
	Rocket struct {
		RocketID   string `json:"rocket_id"`
		RocketName string `json:"rocket_name"`
		RocketType string `json:"rocket_type"`
	} `json:"rocket"`
}

var ErrBadStatusCode error = errors.New("invalid status code from spacex")

func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.spacexdata.com/v3",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Launches returns every launch known to the provider, oldest first.
func (c *Client) Launches(ctx context.Context) ([]Launch, error) {
	u := fmt.Sprintf("%s/%s", c.baseURL, "launches")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching launches: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrBadStatusCode
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var launches []Launch
	if err := json.Unmarshal(body, &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

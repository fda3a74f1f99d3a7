package spacex_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/astanton/launchbook/pkg/spacex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	doFunc func(*http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestClient(doFunc func(*http.Request) (*http.Response, error)) *spacex.Client {
	return spacex.NewClient(
		spacex.WithHTTPClient(&mockHTTPClient{doFunc: doFunc}),
		spacex.WithBaseURL("https://test.spacex.com/v3"),
	)
}

func TestLaunches(t *testing.T) {
	t.Run("decodes the provider payload", func(t *testing.T) {
		payload := []map[string]interface{}{
			{
				"flight_number":    42,
				"mission_name":     "CRS-12",
				"launch_date_unix": 1502803200,
				"launch_site":      map[string]interface{}{"site_name": "KSC LC 39A"},
				"links": map[string]interface{}{
					"mission_patch":       "https://img/large.png",
					"mission_patch_small": "https://img/small.png",
				},
				"rocket": map[string]interface{}{
					"rocket_id":   "falcon9",
					"rocket_name": "Falcon 9",
					"rocket_type": "FT",
				},
			},
		}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		var gotPath string
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			gotPath = req.URL.Path
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(body)),
			}, nil
		})

		launches, err := client.Launches(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "/v3/launches", gotPath)
		require.Len(t, launches, 1)
		assert.Equal(t, 42, launches[0].FlightNumber)
		assert.Equal(t, "CRS-12", launches[0].MissionName)
		assert.Equal(t, int64(1502803200), launches[0].LaunchDate)
		assert.Equal(t, "KSC LC 39A", launches[0].LaunchSite.SiteName)
		assert.Equal(t, "https://img/large.png", launches[0].Links.MissionPatchLarge)
		assert.Equal(t, "https://img/small.png", launches[0].Links.MissionPatchSmall)
		assert.Equal(t, "Falcon 9", launches[0].Rocket.RocketName)
	})

	t.Run("non-200 status is a sentinel error", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusBadGateway,
				Body:       io.NopCloser(strings.NewReader("")),
			}, nil
		})

		launches, err := client.Launches(context.Background())

		assert.Nil(t, launches)
		assert.ErrorIs(t, err, spacex.ErrBadStatusCode)
	})

	t.Run("transport errors are wrapped", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		_, err := client.Launches(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetching launches")
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("{not json")),
			}, nil
		})

		_, err := client.Launches(context.Background())
		assert.Error(t, err)
	})
}

package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/internal/ports"
	"github.com/astanton/launchbook/pkg/spacex"
	"golang.org/x/sync/singleflight"
)

// Catalog caches the provider's launch list in memory for the lifetime of
// the instance. The first successful fetch populates the cache; concurrent
// first accesses share a single upstream call. A failed fetch is not
// cached, so the next caller retries.
type Catalog struct {
	provider ports.LaunchProvider

	group singleflight.Group
	mu    sync.RWMutex
	cache []models.Launch
}

func NewCatalog(provider ports.LaunchProvider) *Catalog {
	return &Catalog{provider: provider}
}

func (c *Catalog) AllLaunches(ctx context.Context) ([]models.Launch, error) {
	c.mu.RLock()
	cached := c.cache
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := c.group.Do("launches", func() (interface{}, error) {
		raw, err := c.provider.Launches(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching launches: %w", err)
		}
		launches := make([]models.Launch, len(raw))
		for i, r := range raw {
			launches[i] = launchFromProvider(r)
		}
		c.mu.Lock()
		c.cache = launches
		c.mu.Unlock()
		return launches, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Launch), nil
}

// LaunchByID returns nil when the id is unknown.
func (c *Catalog) LaunchByID(ctx context.Context, id int) (*models.Launch, error) {
	launches, err := c.AllLaunches(ctx)
	if err != nil {
		return nil, err
	}
	for i := range launches {
		if launches[i].ID == id {
			launch := launches[i]
			return &launch, nil
		}
	}
	return nil, nil
}

// LaunchesByIDs returns launches in the order of ids. Unknown ids are
// omitted from the result rather than reported as errors.
func (c *Catalog) LaunchesByIDs(ctx context.Context, ids []int) ([]models.Launch, error) {
	launches, err := c.AllLaunches(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]models.Launch, len(launches))
	for _, l := range launches {
		byID[l.ID] = l
	}
	found := make([]models.Launch, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			found = append(found, l)
		}
	}
	return found, nil
}

func launchFromProvider(raw spacex.Launch) models.Launch {
	return models.Launch{
		ID:     raw.FlightNumber,
		Cursor: strconv.FormatInt(raw.LaunchDate, 10),
		Site:   raw.LaunchSite.SiteName,
		Mission: models.Mission{
			Name:              raw.MissionName,
			MissionPatchSmall: raw.Links.MissionPatchSmall,
			MissionPatchLarge: raw.Links.MissionPatchLarge,
		},
		Rocket: models.Rocket{
			ID:   raw.Rocket.RocketID,
			Name: raw.Rocket.RocketName,
			Type: raw.Rocket.RocketType,
		},
	}
}

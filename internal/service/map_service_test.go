package service

import (
	"testing"
	"time"

	"go-storemap-api/internal/catalog"
	"go-storemap-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepos() (*fakeProductRepo, *fakeLocationRepo, *fakeInventoryRepo) {
	products := &fakeProductRepo{products: []model.Product{
		{ID: "p1", Name: "Tray", Price: 2750, Category: "kurashi"},
		{ID: "p2", Name: "Charm", Price: 2200, Category: "kokoro"},
	}}
	locations := &fakeLocationRepo{locations: []model.Location{
		{ID: "roadside-a", Name: "Station A", Type: model.TypeRoadsideStation},
		{ID: "shrine-b", Name: "Shrine B", Type: model.TypeShrine},
	}}
	updated := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	inventory := &fakeInventoryRepo{records: []model.InventoryRecord{
		{ID: "roadside-a_p1", LocationID: "roadside-a", ProductID: "p1", Stock: 5, LastUpdated: updated},
		{ID: "roadside-a_p2", LocationID: "roadside-a", ProductID: "p2", Stock: 0, LastUpdated: updated},
		{ID: "shrine-b_p2", LocationID: "shrine-b", ProductID: "p2", Stock: 3, LastUpdated: updated},
	}}
	return products, locations, inventory
}

func TestMapService_FilteredLocations(t *testing.T) {
	svc := NewMapService(seededRepos())

	all, err := svc.FilteredLocations(catalog.Selection{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	kurashi, err := svc.FilteredLocations(catalog.Selection{Category: "kurashi"})
	require.NoError(t, err)
	require.Len(t, kurashi, 1)
	assert.Equal(t, "roadside-a", kurashi[0].ID)
}

func TestMapService_LocationDetail(t *testing.T) {
	svc := NewMapService(seededRepos())

	detail, err := svc.LocationDetail("roadside-a")
	require.NoError(t, err)
	assert.Equal(t, "Station A", detail.Location.Name)
	assert.Equal(t, 5, detail.TotalStock)
	require.Len(t, detail.Products, 2)

	assert.Equal(t, catalog.SeverityOK, detail.Products[0].Status.Severity)
	assert.Equal(t, catalog.SeverityNone, detail.Products[1].Status.Severity)
}

func TestMapService_LocationDetail_NotFound(t *testing.T) {
	svc := NewMapService(seededRepos())

	_, err := svc.LocationDetail("no-such-place")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestMapService_Categories(t *testing.T) {
	svc := NewMapService(seededRepos())

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"kurashi", "kokoro"}, categories)
}

func TestMapService_Stats(t *testing.T) {
	svc := NewMapService(seededRepos())

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalLocations)
	assert.Equal(t, int64(3), stats.TotalInventory)
	assert.Equal(t, 8, stats.TotalStock)
	assert.Equal(t, 1, stats.OutOfStockCount)
}

func TestMapService_RefreshSwapsSnapshotWholesale(t *testing.T) {
	products, locations, inventory := seededRepos()
	svc := NewMapService(products, locations, inventory)

	before, err := svc.FilteredLocations(catalog.Selection{})
	require.NoError(t, err)
	require.Len(t, before, 2)

	// A write lands in the store; the served view is unchanged until the
	// snapshot is replaced.
	locations.locations = append(locations.locations, model.Location{
		ID: "shop-c", Name: "Shop C", Type: model.TypeShop,
	})

	stale, err := svc.FilteredLocations(catalog.Selection{})
	require.NoError(t, err)
	assert.Len(t, stale, 2)

	require.NoError(t, svc.Refresh())

	fresh, err := svc.FilteredLocations(catalog.Selection{})
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

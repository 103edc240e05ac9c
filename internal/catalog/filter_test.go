package catalog

import (
	"testing"

	"go-storemap-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The two-location scenario: A stocks p1 (kurashi, 5) and p2 (kokoro, 0),
// B stocks p2 (kokoro, 3), C stocks nothing.
func scenarioSnapshot() *Snapshot {
	return NewSnapshot(testLocations(), testProducts(), testInventory())
}

func TestFilterLocations_DefaultSelectionIsIdentity(t *testing.T) {
	snap := scenarioSnapshot()
	locations := testLocations()

	result := snap.FilterLocations(locations, Selection{})

	assert.Equal(t, locations, result)
}

func TestFilterLocations_ByCategory(t *testing.T) {
	snap := scenarioSnapshot()

	result := snap.VisibleLocations(Selection{}.WithCategory("kurashi"))

	require.Len(t, result, 1)
	assert.Equal(t, "roadside-a", result[0].ID)
}

func TestFilterLocations_CategoryIgnoresStock(t *testing.T) {
	// A carries p2 with zero stock; the category predicate alone still
	// matches it.
	snap := scenarioSnapshot()

	result := snap.VisibleLocations(Selection{}.WithCategory("kokoro"))

	require.Len(t, result, 2)
	assert.Equal(t, "roadside-a", result[0].ID)
	assert.Equal(t, "shrine-b", result[1].ID)
}

func TestFilterLocations_InStockOnly(t *testing.T) {
	snap := scenarioSnapshot()

	result := snap.VisibleLocations(Selection{}.WithInStockOnly(true))

	require.Len(t, result, 2)
	assert.Equal(t, "roadside-a", result[0].ID)
	assert.Equal(t, "shrine-b", result[1].ID)
}

func TestFilterLocations_CategoryAndStockCombined(t *testing.T) {
	snap := scenarioSnapshot()

	sel := Selection{}.WithCategory("kurashi").WithInStockOnly(true)
	result := snap.VisibleLocations(sel)

	require.Len(t, result, 1)
	assert.Equal(t, "roadside-a", result[0].ID)
}

func TestFilterLocations_ByType(t *testing.T) {
	snap := scenarioSnapshot()

	result := snap.VisibleLocations(Selection{}.WithLocationType(model.TypeShrine))

	require.Len(t, result, 1)
	assert.Equal(t, "shrine-b", result[0].ID)
}

func TestFilterLocations_UnknownTypeMatchesNothing(t *testing.T) {
	snap := scenarioSnapshot()

	result := snap.VisibleLocations(Selection{}.WithLocationType("castle"))

	assert.Empty(t, result)
}

func TestFilterLocations_UnknownCategoryMatchesNothing(t *testing.T) {
	snap := scenarioSnapshot()

	result := snap.VisibleLocations(Selection{}.WithCategory("no-such-category"))

	assert.Empty(t, result)
}

func TestFilterLocations_PreservesOrderAndInput(t *testing.T) {
	snap := scenarioSnapshot()
	locations := testLocations()
	original := append([]model.Location(nil), locations...)

	// Reversed input must come back reversed, untouched.
	reversed := []model.Location{locations[2], locations[1], locations[0]}
	result := snap.FilterLocations(reversed, Selection{}.WithInStockOnly(true))

	require.Len(t, result, 2)
	assert.Equal(t, "shrine-b", result[0].ID)
	assert.Equal(t, "roadside-a", result[1].ID)
	assert.Equal(t, original, locations)
}

func TestFilterLocations_Idempotent(t *testing.T) {
	snap := scenarioSnapshot()
	sel := Selection{}.WithCategory("kokoro").WithInStockOnly(true)

	first := snap.VisibleLocations(sel)
	second := snap.VisibleLocations(sel)

	assert.Equal(t, first, second)
}

func TestFilterLocations_InStockOnlyIsMonotone(t *testing.T) {
	snap := scenarioSnapshot()

	selections := []Selection{
		{},
		{Category: "kurashi"},
		{Category: "kokoro"},
		{LocationType: model.TypeShrine},
		{Category: "kokoro", LocationType: model.TypeRoadsideStation},
	}

	for _, sel := range selections {
		without := snap.VisibleLocations(sel)
		with := snap.VisibleLocations(sel.WithInStockOnly(true))
		assert.LessOrEqual(t, len(with), len(without), "selection %+v", sel)
	}
}

func TestSelectionTransitions(t *testing.T) {
	sel := Selection{}
	assert.True(t, sel.IsZero())

	sel = sel.WithCategory("kurashi").WithLocationType(model.TypeShop).WithInStockOnly(true)
	assert.Equal(t, "kurashi", sel.Category)
	assert.Equal(t, model.TypeShop, sel.LocationType)
	assert.True(t, sel.InStockOnly)
	assert.False(t, sel.IsZero())

	// Transitions return new values; reset restores the default.
	assert.True(t, sel.Reset().IsZero())
	assert.Equal(t, "kurashi", sel.Category)
}

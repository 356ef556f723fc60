package browse

import (
	"fmt"
	"testing"

	"foodcart/catalog-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: 1, Name: "Spice Garden 1", Cuisine: []string{"North Indian", "Punjabi"}, Rating: 4.2, DeliveryTime: "25-35 mins", CostForTwo: 450},
		{ID: 2, Name: "Pizza Hub 1", Cuisine: []string{"Italian", "Continental"}, Rating: 4.8, DeliveryTime: "30-45 mins", CostForTwo: 700},
		{ID: 3, Name: "Dosa Corner 1", Cuisine: []string{"South Indian", "Tamil"}, Rating: 3.9, DeliveryTime: "20-25 mins", CostForTwo: 250},
		{ID: 4, Name: "Noodle Bar 1", Cuisine: []string{"Chinese", "Asian"}, Rating: 4.5, DeliveryTime: "40-55 mins", CostForTwo: 1200},
		{ID: 5, Name: "Curry House 1", Cuisine: []string{"Indian", "Vegetarian"}, Rating: 4.5, DeliveryTime: "soon", CostForTwo: 300},
	}
}

func ids(restaurants []domain.Restaurant) []int {
	out := make([]int, 0, len(restaurants))
	for _, rest := range restaurants {
		out = append(out, rest.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []int
	}{
		{name: "empty query matches all", query: Query{}, want: []int{1, 2, 3, 4, 5}},
		{name: "search by name is case insensitive", query: Query{Search: "PIZZA"}, want: []int{2}},
		{name: "search by cuisine tag", query: Query{Search: "indian"}, want: []int{1, 3, 5}},
		{name: "cuisine must be an exact tag", query: Query{Cuisine: "Asian"}, want: []int{4}},
		{name: "cuisine substring is not a tag", query: Query{Cuisine: "Indian"}, want: []int{5}},
		{name: "minimum rating", query: Query{MinRating: 4.5}, want: []int{2, 4, 5}},
		{name: "bounded price range", query: Query{Price: &PriceRange{Min: 300, Max: 600}}, want: []int{1, 5}},
		{name: "open price range", query: Query{Price: &PriceRange{Min: 1000}}, want: []int{4}},
		{name: "delivery uses upper bound", query: Query{MaxDeliveryMinutes: 35}, want: []int{1, 3}},
		{
			name:  "all filters combine",
			query: Query{Search: "1", MinRating: 4, Price: &PriceRange{Min: 400, Max: 800}, MaxDeliveryMinutes: 45},
			want:  []int{1, 2},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, ids(Filter(sampleCatalog(), testCase.query)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	query := Query{Search: "indian", MinRating: 4}
	once := Filter(sampleCatalog(), query)
	twice := Filter(once, query)
	assert.Equal(t, once, twice)
}

func TestSort_RatingIsStable(t *testing.T) {
	input := []domain.Restaurant{
		{ID: 1, Rating: 4.5},
		{ID: 2, Rating: 3.8},
		{ID: 3, Rating: 4.5},
	}
	assert.Equal(t, []int{1, 3, 2}, ids(Sort(input, SortRating)))
	assert.Equal(t, []int{1, 2, 3}, ids(input), "input must not be reordered")
}

func TestSort_Keys(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int
	}{
		{key: SortNone, want: []int{1, 2, 3, 4, 5}},
		{key: "bogus", want: []int{1, 2, 3, 4, 5}},
		{key: SortRating, want: []int{2, 4, 5, 1, 3}},
		{key: SortDeliveryTime, want: []int{3, 1, 2, 4, 5}},
		{key: SortCostForTwo, want: []int{3, 5, 1, 2, 4}},
		{key: SortName, want: []int{5, 3, 4, 2, 1}},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.key), func(t *testing.T) {
			assert.Equal(t, testCase.want, ids(Sort(sampleCatalog(), testCase.key)))
		})
	}
}

func manyRestaurants(n int) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Restaurant{ID: i, Name: fmt.Sprintf("R%d", i), Rating: 4})
	}
	return out
}

func TestRun_Pagination(t *testing.T) {
	catalog := manyRestaurants(47)

	tests := []struct {
		page      int
		wantLen   int
		wantFirst int
	}{
		{page: 1, wantLen: 20, wantFirst: 1},
		{page: 2, wantLen: 20, wantFirst: 21},
		{page: 3, wantLen: 7, wantFirst: 41},
		{page: 4, wantLen: 0},
		{page: 0, wantLen: 20, wantFirst: 1},
	}

	for _, testCase := range tests {
		t.Run(fmt.Sprintf("page %d", testCase.page), func(t *testing.T) {
			result := Run(catalog, Query{Page: testCase.page})
			assert.Equal(t, 47, result.Total)
			assert.Equal(t, 3, result.TotalPages)
			require.Len(t, result.Restaurants, testCase.wantLen)
			if testCase.wantLen > 0 {
				assert.Equal(t, testCase.wantFirst, result.Restaurants[0].ID)
			}
		})
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{current: 1, total: 10, want: []int{1, 2, 3, 4, 5}},
		{current: 2, total: 10, want: []int{1, 2, 3, 4, 5}},
		{current: 6, total: 10, want: []int{4, 5, 6, 7, 8}},
		{current: 10, total: 10, want: []int{6, 7, 8, 9, 10}},
		{current: 9, total: 10, want: []int{6, 7, 8, 9, 10}},
		{current: 2, total: 3, want: []int{1, 2, 3}},
		{current: 1, total: 0, want: []int{}},
	}

	for _, testCase := range tests {
		t.Run(fmt.Sprintf("%d of %d", testCase.current, testCase.total), func(t *testing.T) {
			assert.Equal(t, testCase.want, PageWindow(testCase.current, testCase.total))
		})
	}
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		raw     string
		want    *PriceRange
		wantErr bool
	}{
		{raw: "", want: nil},
		{raw: "0-300", want: &PriceRange{Min: 0, Max: 300}},
		{raw: "1000-", want: &PriceRange{Min: 1000}},
		{raw: "600", want: &PriceRange{Min: 600}},
		{raw: "abc-100", wantErr: true},
		{raw: "500-100", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.raw, func(t *testing.T) {
			got, err := ParsePriceRange(testCase.raw)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriceRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParseDeliveryRange(t *testing.T) {
	lower, upper, ok := ParseDeliveryRange("25-40 mins")
	assert.True(t, ok)
	assert.Equal(t, 25, lower)
	assert.Equal(t, 40, upper)

	_, _, ok = ParseDeliveryRange("soon")
	assert.False(t, ok)
}

func TestCuisines(t *testing.T) {
	got := Cuisines(sampleCatalog())
	assert.Equal(t, []string{
		"Asian", "Chinese", "Continental", "Indian", "Italian",
		"North Indian", "Punjabi", "South Indian", "Tamil", "Vegetarian",
	}, got)
}

// Package browse turns the restaurant catalog into a display page: filter,
// stable sort, then paginate. Everything here is pure and safe to call
// concurrently on shared input.
package browse

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"foodcart/catalog-svc/internal/domain"
)

const (
	DefaultPageSize = 20
	WindowSize      = 5
)

type SortKey string

const (
	SortNone         SortKey = "none"
	SortRating       SortKey = "rating"
	SortDeliveryTime SortKey = "deliveryTime"
	SortCostForTwo   SortKey = "costForTwo"
	SortName         SortKey = "name"
)

var ErrInvalidPriceRange = errors.New("invalid price range")

// PriceRange bounds cost for two. Max == 0 leaves the range open above.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max,omitempty"`
}

// ParsePriceRange accepts the "min-max" form the filter panel sends
// ("300-600", "1000-"). An empty string means no price filter.
func ParsePriceRange(raw string) (*PriceRange, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.SplitN(raw, "-", 2)

	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || low < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriceRange, raw)
	}

	rng := &PriceRange{Min: low}
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || high < low {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPriceRange, raw)
		}
		rng.Max = high
	}
	return rng, nil
}

type Query struct {
	Search             string
	Cuisine            string
	MinRating          float64
	Price              *PriceRange
	MaxDeliveryMinutes int
	Sort               SortKey
	Page               int
	PageSize           int
}

type Result struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Total       int                 `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"pageSize"`
	TotalPages  int                 `json:"totalPages"`
	Window      []int               `json:"pageWindow"`
}

func Run(restaurants []domain.Restaurant, q Query) Result {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	matched := Sort(Filter(restaurants, q), q.Sort)
	totalPages := TotalPages(len(matched), size)

	return Result{
		Restaurants: Paginate(matched, page, size),
		Total:       len(matched),
		Page:        page,
		PageSize:    size,
		TotalPages:  totalPages,
		Window:      PageWindow(page, totalPages),
	}
}

func Filter(restaurants []domain.Restaurant, q Query) []domain.Restaurant {
	matched := make([]domain.Restaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		if Matches(rest, q) {
			matched = append(matched, rest)
		}
	}
	return matched
}

// Matches reports whether a restaurant passes every active filter.
func Matches(rest domain.Restaurant, q Query) bool {
	if q.Search != "" && !matchesSearch(rest, strings.ToLower(q.Search)) {
		return false
	}
	if q.Cuisine != "" && !containsTag(rest.Cuisine, q.Cuisine) {
		return false
	}
	if q.MinRating > 0 && rest.Rating < q.MinRating {
		return false
	}
	if q.Price != nil {
		if rest.CostForTwo < q.Price.Min {
			return false
		}
		if q.Price.Max > 0 && rest.CostForTwo > q.Price.Max {
			return false
		}
	}
	if q.MaxDeliveryMinutes > 0 {
		_, upper, ok := ParseDeliveryRange(rest.DeliveryTime)
		if !ok || upper > q.MaxDeliveryMinutes {
			return false
		}
	}
	return true
}

func matchesSearch(rest domain.Restaurant, needle string) bool {
	if strings.Contains(strings.ToLower(rest.Name), needle) {
		return true
	}
	for _, tag := range rest.Cuisine {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy. Unknown keys keep the filtered order.
func Sort(restaurants []domain.Restaurant, key SortKey) []domain.Restaurant {
	sorted := append([]domain.Restaurant(nil), restaurants...)

	var less func(a, b domain.Restaurant) bool
	switch key {
	case SortRating:
		less = func(a, b domain.Restaurant) bool { return a.Rating > b.Rating }
	case SortDeliveryTime:
		less = func(a, b domain.Restaurant) bool {
			aLower, _, aOK := ParseDeliveryRange(a.DeliveryTime)
			bLower, _, bOK := ParseDeliveryRange(b.DeliveryTime)
			if !aOK || !bOK {
				return aOK && !bOK
			}
			return aLower < bLower
		}
	case SortCostForTwo:
		less = func(a, b domain.Restaurant) bool { return a.CostForTwo < b.CostForTwo }
	case SortName:
		less = func(a, b domain.Restaurant) bool { return a.Name < b.Name }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// Paginate returns the 1-based page. Pages past the end are empty.
func Paginate(restaurants []domain.Restaurant, page, size int) []domain.Restaurant {
	if page < 1 || size <= 0 {
		return []domain.Restaurant{}
	}
	start := (page - 1) * size
	if start >= len(restaurants) {
		return []domain.Restaurant{}
	}
	end := start + size
	if end > len(restaurants) {
		end = len(restaurants)
	}
	return restaurants[start:end]
}

func TotalPages(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PageWindow lists up to WindowSize page numbers centred on current and
// clamped to [1, totalPages].
func PageWindow(current, totalPages int) []int {
	count := WindowSize
	if totalPages < count {
		count = totalPages
	}

	start := current - 2
	if totalPages-(WindowSize-1) < start {
		start = totalPages - (WindowSize - 1)
	}
	if start < 1 {
		start = 1
	}

	window := make([]int, 0, count)
	for i := 0; i < count; i++ {
		window = append(window, start+i)
	}
	return window
}

// ParseDeliveryRange reads "A-B mins" into its bounds, taking the leading
// digits of each side.
func ParseDeliveryRange(raw string) (lower, upper int, ok bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lower, okLower := leadingInt(parts[0])
	upper, okUpper := leadingInt(parts[1])
	if !okLower || !okUpper {
		return 0, 0, false
	}
	return lower, upper, true
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// Cuisines returns the sorted set of cuisine tags across the catalog.
func Cuisines(restaurants []domain.Restaurant) []string {
	seen := map[string]bool{}
	cuisines := []string{}
	for _, rest := range restaurants {
		for _, tag := range rest.Cuisine {
			if !seen[tag] {
				seen[tag] = true
				cuisines = append(cuisines, tag)
			}
		}
	}
	sort.Strings(cuisines)
	return cuisines
}

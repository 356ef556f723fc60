package generator

import (
	"fmt"
	"math"
	"math/rand"

	"foodcart/catalog-svc/internal/domain"
)

const (
	RestaurantCount = 500
	MinMenuItems    = 8
	MaxMenuItems    = 15
)

// Generator synthesizes the demo catalog served when no remote store is
// reachable. Output depends only on the seed.
type Generator struct {
	seed int64
}

func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

func (g *Generator) Restaurants() []domain.Restaurant {
	rng := rand.New(rand.NewSource(g.seed))
	restaurants := make([]domain.Restaurant, 0, RestaurantCount)

	for i := 1; i <= RestaurantCount; i++ {
		nameIndex := (i - 1) % len(restaurantNames)
		cuisine := cuisineTypes[(i-1)%len(cuisineTypes)]

		lower := 20 + rng.Intn(40)
		upper := lower + 5 + rng.Intn(15)

		var offers []string
		if rng.Float64() > 0.3 {
			offers = []string{offerPool[rng.Intn(len(offerPool))]}
		} else {
			offers = []string{}
		}

		restaurants = append(restaurants, domain.Restaurant{
			ID:           i,
			Name:         fmt.Sprintf("%s %d", restaurantNames[nameIndex], (i-1)/len(restaurantNames)+1),
			Image:        foodImages[(i-1)%len(foodImages)],
			Cuisine:      append([]string(nil), cuisine...),
			Rating:       oneDecimal(3.5 + rng.Float64()*1.5),
			DeliveryTime: fmt.Sprintf("%d-%d mins", lower, upper),
			Distance:     fmt.Sprintf("%.1f km", 0.5+rng.Float64()*4.5),
			Offers:       offers,
			CostForTwo:   200 + rng.Intn(800),
		})
	}

	return restaurants
}

// MenuItems draws 8-15 distinct dishes for the restaurant. The stream is
// keyed on the restaurant id so repeated calls return the same menu.
func (g *Generator) MenuItems(restaurantID int) []domain.MenuItem {
	rng := rand.New(rand.NewSource(g.seed*1_000_003 + int64(restaurantID)))

	count := MinMenuItems + rng.Intn(MaxMenuItems-MinMenuItems+1)
	picks := rng.Perm(len(dishTemplates))[:count]

	items := make([]domain.MenuItem, 0, count)
	for index, pick := range picks {
		template := dishTemplates[pick]
		variation := 0.8 + rng.Float64()*0.4

		items = append(items, domain.MenuItem{
			ID:          restaurantID*1000 + index,
			Name:        template.name,
			Description: template.description,
			Price:       int(math.Round(float64(template.basePrice) * variation)),
			Image:       foodImages[index%len(foodImages)],
			Category:    template.category,
			IsVeg:       template.isVeg,
			Rating:      oneDecimal(3.5 + rng.Float64()*1.5),
			Bestseller:  rng.Float64() > 0.7,
		})
	}

	return items
}

func oneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

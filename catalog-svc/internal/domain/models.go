package domain

// Restaurant is a catalog listing. DeliveryTime is a "A-B mins" range and
// Distance a display string such as "2.4 km".
type Restaurant struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	Distance     string   `json:"distance"`
	Offers       []string `json:"offers"`
	CostForTwo   int      `json:"costForTwo"`
}

// MenuItem belongs to exactly one restaurant; ids are namespaced as
// restaurantID*1000 + position. Price is in the smallest currency unit.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	IsVeg       bool    `json:"isVeg"`
	Rating      float64 `json:"rating"`
	Bestseller  bool    `json:"bestseller"`
}

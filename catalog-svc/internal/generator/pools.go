package generator

var foodImages = []string{
	"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
	"https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg",
	"https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
	"https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg",
	"https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg",
	"https://images.pexels.com/photos/1199957/pexels-photo-1199957.jpeg",
	"https://images.pexels.com/photos/1251208/pexels-photo-1251208.jpeg",
	"https://images.pexels.com/photos/1410235/pexels-photo-1410235.jpeg",
	"https://images.pexels.com/photos/1552630/pexels-photo-1552630.jpeg",
	"https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg",
}

var cuisineTypes = [][]string{
	{"North Indian", "Punjabi"},
	{"South Indian", "Tamil"},
	{"Chinese", "Asian"},
	{"Italian", "Continental"},
	{"Mexican", "Tex-Mex"},
	{"Thai", "Asian"},
	{"Japanese", "Sushi"},
	{"Mediterranean", "Greek"},
	{"Indian", "Vegetarian"},
	{"Fast Food", "American"},
	{"Bengali", "Indian"},
	{"Gujarati", "Indian"},
	{"Rajasthani", "Indian"},
	{"Kerala", "South Indian"},
	{"Hyderabadi", "Biryani"},
	{"Mughlai", "North Indian"},
	{"Street Food", "Indian"},
	{"Desserts", "Sweets"},
	{"Beverages", "Drinks"},
	{"Healthy", "Salads"},
}

var restaurantNames = []string{
	"Spice Garden", "Golden Palace", "Royal Kitchen", "Taste of India", "Food Paradise",
	"Curry House", "Biryani Express", "Dosa Corner", "Pizza Hub", "Burger Junction",
	"Noodle Bar", "Tandoor Nights", "Cafe Delight", "Sweet Treats", "Fresh Bites",
	"Ocean Pearl", "Mountain View", "City Lights", "Garden Fresh", "Spicy Affairs",
	"Masala Magic", "Chaat Street", "Kebab Corner", "Rice Bowl", "Bread Basket",
	"Tea Time", "Coffee Culture", "Juice Junction", "Smoothie Station", "Ice Cream Parlor",
	"Bakery Bliss", "Pastry Palace", "Cake Corner", "Cookie Jar", "Donut Delight",
	"Sandwich Shop", "Wrap World", "Salad Station", "Soup Kitchen", "Grill Master",
	"BBQ Nation", "Roast House", "Steam Kitchen", "Fry Palace", "Bake House",
	"Curry Express", "Spice Route", "Flavor Town", "Taste Buds", "Food Factory",
}

var offerPool = []string{
	"50% OFF up to ₹100",
	"40% OFF up to ₹80",
	"30% OFF up to ₹75",
	"Buy 1 Get 1 Free",
	"Free Delivery",
	"₹50 OFF on orders above ₹300",
	"₹100 OFF on orders above ₹500",
	"Flat 25% OFF",
	"Extra 20% OFF",
	"Weekend Special 60% OFF",
}

type dishTemplate struct {
	name        string
	description string
	category    string
	isVeg       bool
	basePrice   int
}

var dishTemplates = []dishTemplate{
	{"Paneer Tikka", "Grilled cottage cheese with spices", "Starters", true, 180},
	{"Chicken Tikka", "Tender chicken pieces marinated in yogurt and spices", "Starters", false, 220},
	{"Veg Spring Rolls", "Crispy rolls filled with fresh vegetables", "Starters", true, 150},
	{"Fish Fingers", "Golden fried fish strips with tartar sauce", "Starters", false, 250},
	{"Mushroom Pepper Fry", "Spicy mushrooms with black pepper", "Starters", true, 160},

	{"Butter Chicken", "Creamy tomato-based chicken curry", "Main Course", false, 320},
	{"Dal Makhani", "Rich and creamy black lentils", "Main Course", true, 180},
	{"Biryani", "Fragrant basmati rice with spices and meat/vegetables", "Main Course", false, 280},
	{"Palak Paneer", "Cottage cheese in spinach gravy", "Main Course", true, 200},
	{"Chicken Curry", "Traditional chicken curry with aromatic spices", "Main Course", false, 300},
	{"Veg Pulao", "Aromatic rice with mixed vegetables", "Main Course", true, 160},
	{"Mutton Rogan Josh", "Tender mutton in rich Kashmiri gravy", "Main Course", false, 380},

	{"Garlic Naan", "Soft bread with garlic and herbs", "Breads", true, 80},
	{"Butter Roti", "Whole wheat bread with butter", "Breads", true, 40},
	{"Jeera Rice", "Basmati rice with cumin seeds", "Rice", true, 120},
	{"Fried Rice", "Wok-tossed rice with vegetables", "Rice", true, 140},

	{"Gulab Jamun", "Sweet milk dumplings in sugar syrup", "Desserts", true, 80},
	{"Ice Cream", "Creamy vanilla ice cream", "Desserts", true, 60},
	{"Chocolate Cake", "Rich chocolate cake slice", "Desserts", true, 120},
	{"Kulfi", "Traditional Indian ice cream", "Desserts", true, 70},

	{"Lassi", "Refreshing yogurt-based drink", "Beverages", true, 60},
	{"Fresh Lime Soda", "Tangy lime with soda water", "Beverages", true, 50},
	{"Masala Chai", "Spiced Indian tea", "Beverages", true, 30},
	{"Cold Coffee", "Iced coffee with milk and sugar", "Beverages", true, 80},
}

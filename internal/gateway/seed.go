package gateway

import (
	"time"

	"github.com/shopkart/storefront/internal/models"
)

const pexels = "https://images.pexels.com/photos/"

func img(path string) string {
	return pexels + path + "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"
}

// seedProducts is the demo catalog served by the Mock gateway.
var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Premium Wireless Earbuds",
		Description: "Experience crystal-clear sound with our premium wireless earbuds. Featuring active noise cancellation, 24-hour battery life, and a comfortable fit.",
		Price:       149.99,
		Image:       img("3780681/pexels-photo-3780681.jpeg"),
		Images:      []string{img("3780681/pexels-photo-3780681.jpeg"), img("3945667/pexels-photo-3945667.jpeg")},
		Category:    "Electronics",
		Subcategory: "Audio",
		Rating:      4.8,
		ReviewCount: 243,
		Stock:       45,
		Brand:       "SoundMaster",
		Featured:    true,
	},
	{
		ID:          "2",
		Name:        "Ultra-Thin Smart Watch",
		Description: "Stay connected with our ultra-thin smart watch. Track your fitness, receive notifications, and monitor your heart rate with this sleek wearable device.",
		Price:       199.99,
		Image:       img("437037/pexels-photo-437037.jpeg"),
		Images:      []string{img("437037/pexels-photo-437037.jpeg"), img("393047/pexels-photo-393047.jpeg")},
		Category:    "Electronics",
		Subcategory: "Wearables",
		Rating:      4.5,
		ReviewCount: 187,
		Stock:       32,
		Brand:       "TechFit",
		Featured:    true,
	},
	{
		ID:          "3",
		Name:        "Professional Camera Kit",
		Description: "Capture life's moments with exceptional clarity using our professional camera kit. Includes a high-resolution DSLR camera, two lenses, and a sturdy tripod.",
		Price:       899.99,
		Image:       img("51383/photo-camera-subject-photographer-51383.jpeg"),
		Images:      []string{img("51383/photo-camera-subject-photographer-51383.jpeg"), img("1051076/pexels-photo-1051076.jpeg")},
		Category:    "Electronics",
		Subcategory: "Cameras",
		Rating:      4.9,
		ReviewCount: 112,
		Stock:       18,
		Brand:       "OpticsElite",
		Featured:    false,
	},
	{
		ID:          "4",
		Name:        "Ergonomic Office Chair",
		Description: "Work in comfort with our ergonomic office chair. Designed to provide optimal support for your back and neck during long work sessions.",
		Price:       249.99,
		Image:       img("1957478/pexels-photo-1957478.jpeg"),
		Images:      []string{img("1957478/pexels-photo-1957478.jpeg"), img("116915/pexels-photo-116915.jpeg")},
		Category:    "Furniture",
		Subcategory: "Office",
		Rating:      4.7,
		ReviewCount: 320,
		Stock:       24,
		Brand:       "ComfortPlus",
		Featured:    true,
	},
	{
		ID:          "5",
		Name:        "Minimalist Desk Lamp",
		Description: "Illuminate your workspace with our minimalist desk lamp. Features adjustable brightness levels and a sleek design that complements any decor.",
		Price:       69.99,
		Image:       img("106344/pexels-photo-106344.jpeg"),
		Images:      []string{img("106344/pexels-photo-106344.jpeg")},
		Category:    "Home",
		Subcategory: "Lighting",
		Rating:      4.5,
		ReviewCount: 98,
		Stock:       50,
		Brand:       "ModernHome",
		Featured:    false,
	},
	{
		ID:          "6",
		Name:        "Premium Coffee Maker",
		Description: "Start your day right with our premium coffee maker. Programmable settings allow you to brew the perfect cup of coffee every time.",
		Price:       129.99,
		Image:       img("6313085/pexels-photo-6313085.jpeg"),
		Images:      []string{img("6313085/pexels-photo-6313085.jpeg")},
		Category:    "Kitchen",
		Subcategory: "Appliances",
		Rating:      4.7,
		ReviewCount: 156,
		Stock:       38,
		Brand:       "BrewMaster",
		Featured:    true,
	},
	{
		ID:          "7",
		Name:        "Wireless Charging Pad",
		Description: "Eliminate cable clutter with our wireless charging pad. Compatible with all Qi-enabled devices for fast and convenient charging.",
		Price:       39.99,
		Image:       img("8533741/pexels-photo-8533741.jpeg"),
		Images:      []string{img("8533741/pexels-photo-8533741.jpeg")},
		Category:    "Electronics",
		Subcategory: "Accessories",
		Rating:      4.4,
		ReviewCount: 208,
		Stock:       65,
		Brand:       "PowerTech",
		Featured:    false,
	},
	{
		ID:          "8",
		Name:        "Lightweight Hiking Backpack",
		Description: "Adventure awaits with our lightweight hiking backpack. Featuring multiple compartments, water resistance, and ergonomic design for comfort on long trails.",
		Price:       89.99,
		Image:       img("2166456/pexels-photo-2166456.jpeg"),
		Images:      []string{img("2166456/pexels-photo-2166456.jpeg")},
		Category:    "Outdoor",
		Subcategory: "Backpacks",
		Rating:      4.6,
		ReviewCount: 145,
		Stock:       28,
		Brand:       "TrailBlaze",
		Featured:    true,
	},
	{
		ID:          "9",
		Name:        "Premium Yoga Mat",
		Description: "Enhance your yoga practice with our premium yoga mat. Non-slip surface and cushioned support for comfort during all types of yoga.",
		Price:       59.99,
		Image:       img("6740294/pexels-photo-6740294.jpeg"),
		Images:      []string{img("6740294/pexels-photo-6740294.jpeg")},
		Category:    "Fitness",
		Subcategory: "Yoga",
		Rating:      4.8,
		ReviewCount: 176,
		Stock:       42,
		Brand:       "ZenFlex",
		Featured:    false,
	},
	{
		ID:          "10",
		Name:        "Gourmet Cooking Set",
		Description: "Cook like a professional chef with our gourmet cooking set. Includes stainless steel pots and pans with non-stick coating for easy cooking and cleaning.",
		Price:       299.99,
		Image:       img("4252137/pexels-photo-4252137.jpeg"),
		Images:      []string{img("4252137/pexels-photo-4252137.jpeg")},
		Category:    "Kitchen",
		Subcategory: "Cookware",
		Rating:      4.9,
		ReviewCount: 94,
		Stock:       22,
		Brand:       "ChefElite",
		Featured:    true,
	},
	{
		ID:          "11",
		Name:        "Bluetooth Speaker",
		Description: "Take your music anywhere with our portable Bluetooth speaker. Waterproof design, 12-hour battery life, and impressive sound quality in a compact package.",
		Price:       79.99,
		Image:       img("575729/pexels-photo-575729.jpeg"),
		Images:      []string{img("575729/pexels-photo-575729.jpeg")},
		Category:    "Electronics",
		Subcategory: "Audio",
		Rating:      4.5,
		ReviewCount: 231,
		Stock:       53,
		Brand:       "SoundMaster",
		Featured:    false,
	},
	{
		ID:          "12",
		Name:        "Smart Home Hub",
		Description: "Control your entire home with our smart home hub. Compatible with major smart home devices for seamless integration and automation.",
		Price:       149.99,
		Image:       img("4516260/pexels-photo-4516260.jpeg"),
		Images:      []string{img("4516260/pexels-photo-4516260.jpeg")},
		Category:    "Smart Home",
		Subcategory: "Hubs",
		Rating:      4.7,
		ReviewCount: 87,
		Stock:       31,
		Brand:       "HomeIQ",
		Featured:    true,
	},
}

// seedOrders is the demo order history shown on the dashboard.
func seedOrders() []models.Order {
	return []models.Order{
		{
			ID: "order-1",
			Items: []models.CartItem{
				{ID: "1", Name: "Product 1", Price: 99.99, Quantity: 1},
				{ID: "2", Name: "Product 2", Price: 49.99, Quantity: 2},
			},
			Shipping: models.Address{
				Name:    "John Doe",
				Street:  "123 Main St",
				City:    "Anytown",
				State:   "CA",
				ZipCode: "12345",
				Country: "USA",
			},
			Total:     199.97,
			Status:    models.OrderStatusDelivered,
			CreatedAt: time.Date(2023, 5, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			ID: "order-2",
			Items: []models.CartItem{
				{ID: "3", Name: "Product 3", Price: 149.99, Quantity: 1},
			},
			Total:     149.99,
			Status:    models.OrderStatusProcessing,
			CreatedAt: time.Date(2023, 5, 15, 14, 20, 0, 0, time.UTC),
		},
	}
}

package catalog

import "github.com/Omarrio321/Aran-Repairs/models"

// Static reference data for the shop. There is no write path; every query
// in this package works off these tables.

var categories = []models.DeviceCategory{
	{ID: models.DevicePhone, Name: "Smartphone", Icon: "smartphone"},
	{ID: models.DeviceTablet, Name: "Tablet", Icon: "tablet"},
	{ID: models.DeviceLaptop, Name: "Laptop", Icon: "laptop"},
	{ID: models.DeviceWatch, Name: "Smartwatch", Icon: "watch"},
	{ID: models.DeviceConsole, Name: "Console", Icon: "gamepad"},
}

var brands = []models.Brand{
	{ID: "apple", Name: "Apple", DeviceTypes: []models.DeviceType{models.DevicePhone, models.DeviceTablet, models.DeviceLaptop, models.DeviceWatch}},
	{ID: "samsung", Name: "Samsung", DeviceTypes: []models.DeviceType{models.DevicePhone, models.DeviceTablet, models.DeviceWatch}},
	{ID: "google", Name: "Google", DeviceTypes: []models.DeviceType{models.DevicePhone, models.DeviceTablet}},
	{ID: "microsoft", Name: "Microsoft", DeviceTypes: []models.DeviceType{models.DeviceLaptop, models.DeviceConsole}},
	{ID: "sony", Name: "Sony", DeviceTypes: []models.DeviceType{models.DevicePhone, models.DeviceConsole}},
	{ID: "nintendo", Name: "Nintendo", DeviceTypes: []models.DeviceType{models.DeviceConsole}},
}

var deviceModels = []models.DeviceModel{
	// Apple phones.
	{ID: "iphone-15-pro-max", BrandID: "apple", Name: "iPhone 15 Pro Max", Type: models.DevicePhone, Image: "https://images.unsplash.com/photo-1696446701796-da61225697cc?q=80&w=400&auto=format&fit=crop"},
	{ID: "iphone-15-pro", BrandID: "apple", Name: "iPhone 15 Pro", Type: models.DevicePhone, Image: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?q=80&w=400&auto=format&fit=crop"},
	{ID: "iphone-14", BrandID: "apple", Name: "iPhone 14", Type: models.DevicePhone, Image: "https://images.unsplash.com/photo-1678685888221-cda773a3dcd9?q=80&w=400&auto=format&fit=crop"},
	{ID: "iphone-13", BrandID: "apple", Name: "iPhone 13", Type: models.DevicePhone, Image: "https://images.unsplash.com/photo-1632661674596-df8be070a5c5?q=80&w=400&auto=format&fit=crop"},

	// Samsung phones.
	{ID: "s24-ultra", BrandID: "samsung", Name: "Galaxy S24 Ultra", Type: models.DevicePhone, Image: "https://images.unsplash.com/photo-1706606991536-e32260710167?q=80&w=400&auto=format&fit=crop"},
	{ID: "s23", BrandID: "samsung", Name: "Galaxy S23", Type: models.DevicePhone, Image: "https://images.unsplash.com/photo-1675845196385-d698e6ae120a?q=80&w=400&auto=format&fit=crop"},

	// Apple tablets.
	{ID: "ipad-pro-12-9", BrandID: "apple", Name: "iPad Pro 12.9\"", Type: models.DeviceTablet, Image: "https://images.unsplash.com/photo-1544816155-12df9643f363?q=80&w=400&auto=format&fit=crop"},
	{ID: "ipad-air", BrandID: "apple", Name: "iPad Air (5th Gen)", Type: models.DeviceTablet, Image: "https://images.unsplash.com/photo-1655554628678-b118742b85e0?q=80&w=400&auto=format&fit=crop"},

	// Consoles.
	{ID: "switch-oled", BrandID: "nintendo", Name: "Switch OLED", Type: models.DeviceConsole, Image: "https://images.unsplash.com/photo-1612036782180-6f0b6cd846fe?q=80&w=400&auto=format&fit=crop"},
	{ID: "ps5", BrandID: "sony", Name: "PlayStation 5", Type: models.DeviceConsole, Image: "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?q=80&w=400&auto=format&fit=crop"},
}

var repairs = map[models.DeviceType][]models.RepairOption{
	models.DevicePhone: {
		{ID: "screen-org", Name: "Screen Replacement (Original)", Price: 249, DurationMinutes: 30, Popular: true, Description: "Genuine manufacturer display panel."},
		{ID: "screen-hq", Name: "Screen Replacement (High Quality)", Price: 149, DurationMinutes: 30, Description: "High quality third-party OLED panel."},
		{ID: "battery", Name: "Battery Replacement", Price: 89, DurationMinutes: 45, Popular: true, Description: "New battery to restore 100% health."},
		{ID: "charging-port", Name: "Charging Port Repair", Price: 79, DurationMinutes: 60, Description: "Fix charging issues or loose cables."},
		{ID: "camera-back", Name: "Rear Camera Module", Price: 129, DurationMinutes: 45, Description: "Fix focus issues or cracked lens."},
		{ID: "water-damage", Name: "Water Damage Cleaning", Price: 49, DurationMinutes: 120, Description: "Ultrasonic cleaning and diagnostic."},
	},
	models.DeviceTablet: {
		{ID: "screen", Name: "Screen Replacement", Price: 299, DurationMinutes: 60, Popular: true},
		{ID: "battery", Name: "Battery Replacement", Price: 119, DurationMinutes: 90},
		{ID: "housing", Name: "Housing Repair", Price: 159, DurationMinutes: 120},
	},
	models.DeviceConsole: {
		{ID: "hdmi", Name: "HDMI Port Repair", Price: 99, DurationMinutes: 120, Popular: true},
		{ID: "cleaning", Name: "Overheating / Cleaning", Price: 59, DurationMinutes: 60},
		{ID: "drive", Name: "Disc Drive Repair", Price: 129, DurationMinutes: 60},
	},
	models.DeviceLaptop: {
		{ID: "screen", Name: "LCD Screen Replacement", Price: 199, DurationMinutes: 60},
		{ID: "keyboard", Name: "Keyboard Replacement", Price: 149, DurationMinutes: 90},
	},
	models.DeviceWatch: {
		{ID: "screen", Name: "Glass Replacement", Price: 129, DurationMinutes: 60},
		{ID: "battery", Name: "Battery Replacement", Price: 69, DurationMinutes: 45},
	},
}

var refurbished = []models.RefurbishedDevice{
	{ID: "ref-ip13-128", Name: "iPhone 13", BrandID: "apple", Storage: "128GB", Condition: "Like New", Price: 499, OriginalPrice: 799, Image: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?q=80&w=400&auto=format&fit=crop", Colors: []string{"#2c3e50", "#ecf0f1"}},
	{ID: "ref-ip12p-256", Name: "iPhone 12 Pro", BrandID: "apple", Storage: "256GB", Condition: "Excellent", Price: 449, OriginalPrice: 999, Image: "https://images.unsplash.com/photo-1696446701796-da61225697cc?q=80&w=400&auto=format&fit=crop", Colors: []string{"#34495e", "#f1c40f"}},
	{ID: "ref-s22-128", Name: "Samsung S22", BrandID: "samsung", Storage: "128GB", Condition: "Good", Price: 349, OriginalPrice: 849, Image: "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?q=80&w=400&auto=format&fit=crop", Colors: []string{"#000000", "#ffffff"}},
	{ID: "ref-ip11-64", Name: "iPhone 11", BrandID: "apple", Storage: "64GB", Condition: "Good", Price: 299, OriginalPrice: 599, Image: "https://images.unsplash.com/photo-1574315042633-89a16f6b2512?q=80&w=400&auto=format&fit=crop", Colors: []string{"#e74c3c", "#000000"}},
	{ID: "ref-s23-256", Name: "Samsung S23 Ultra", BrandID: "samsung", Storage: "256GB", Condition: "Like New", Price: 899, OriginalPrice: 1199, Image: "https://images.unsplash.com/photo-1675845196385-d698e6ae120a?q=80&w=400&auto=format&fit=crop", Colors: []string{"#2c3e50"}},
	{ID: "ref-ip14-128", Name: "iPhone 14", BrandID: "apple", Storage: "128GB", Condition: "Excellent", Price: 649, OriginalPrice: 899, Image: "https://images.unsplash.com/photo-1678685888221-cda773a3dcd9?q=80&w=400&auto=format&fit=crop", Colors: []string{"#3498db", "#ecf0f1"}},
}

var accessories = []models.Accessory{
	{ID: "acc-case-clr", Name: "Crystal Clear Case", Type: "case", Price: 19.99, Image: "https://images.unsplash.com/photo-1603539281986-a4c4a45ce379?q=80&w=400&auto=format&fit=crop", Description: "Military grade drop protection.", Badge: "Best Seller"},
	{ID: "acc-screen-prot", Name: "Tempered Glass (2-Pack)", Type: "protection", Price: 14.99, Image: "https://images.unsplash.com/photo-1628116904663-71887e50529d?q=80&w=400&auto=format&fit=crop", Description: "9H Hardness, Oleophobic coating."},
	{ID: "acc-chg-20w", Name: "20W Fast Charger", Type: "power", Price: 24.99, Image: "https://images.unsplash.com/photo-1583863788434-e58a36330cf0?q=80&w=400&auto=format&fit=crop", Description: "USB-C Power Delivery."},
	{ID: "acc-cable-light", Name: "Lightning Cable (2m)", Type: "power", Price: 12.99, Image: "https://images.unsplash.com/photo-1565518210382-7e0504d49a43?q=80&w=400&auto=format&fit=crop", Description: "MFi Certified braided cable."},
	{ID: "acc-magsafe", Name: "MagSafe Wireless Charger", Type: "power", Price: 39.99, Image: "https://images.unsplash.com/photo-1617478385494-b295d97f256a?q=80&w=400&auto=format&fit=crop", Description: "Fast wireless charging for iPhone.", Badge: "New"},
	{ID: "acc-pods", Name: "Wireless Earbuds Pro", Type: "audio", Price: 129.99, Image: "https://images.unsplash.com/photo-1629367494173-c78a56567877?q=80&w=400&auto=format&fit=crop", Description: "Active Noise Cancellation."},
}

package models

// DeviceType identifies a serviceable category of device.
type DeviceType string

const (
	DevicePhone   DeviceType = "phone"
	DeviceTablet  DeviceType = "tablet"
	DeviceLaptop  DeviceType = "laptop"
	DeviceWatch   DeviceType = "watch"
	DeviceConsole DeviceType = "console"
)

// Valid reports whether t is one of the known device types.
func (t DeviceType) Valid() bool {
	switch t {
	case DevicePhone, DeviceTablet, DeviceLaptop, DeviceWatch, DeviceConsole:
		return true
	}
	return false
}

// DeviceCategory is a top-level entry in the repair wizard.
type DeviceCategory struct {
	ID   DeviceType `json:"id"`
	Name string     `json:"name"`
	Icon string     `json:"icon"`
}

type Brand struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	DeviceTypes []DeviceType `json:"deviceTypes"`
}

// Supports reports whether the brand services the given device type.
func (b Brand) Supports(t DeviceType) bool {
	for _, dt := range b.DeviceTypes {
		if dt == t {
			return true
		}
	}
	return false
}

type DeviceModel struct {
	ID      string     `json:"id"`
	BrandID string     `json:"brandId"`
	Name    string     `json:"name"`
	Type    DeviceType `json:"type"`
	Image   string     `json:"image"`
}

type RepairOption struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Popular         bool    `json:"popular,omitempty"`
	Description     string  `json:"description,omitempty"`
}

type RefurbishedDevice struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BrandID       string   `json:"brandId"`
	Storage       string   `json:"storage"`
	Condition     string   `json:"condition"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	Colors        []string `json:"colors"`
}

type Accessory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Badge       string  `json:"badge,omitempty"`
}

// Package catalog exposes the shop's immutable reference data: device
// categories, brands, models, repair menus, refurbished stock and
// accessories. Lookups that miss return empty results, never errors.
package catalog

import (
	"strings"

	"github.com/Omarrio321/Aran-Repairs/models"
)

// Categories returns all device categories in display order.
func Categories() []models.DeviceCategory {
	out := make([]models.DeviceCategory, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by device type.
func CategoryByID(id models.DeviceType) (models.DeviceCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.DeviceCategory{}, false
}

// BrandsForType returns the brands that service the given device type.
func BrandsForType(t models.DeviceType) []models.Brand {
	var out []models.Brand
	for _, b := range brands {
		if b.Supports(t) {
			out = append(out, b)
		}
	}
	return out
}

// BrandByID looks up a brand.
func BrandByID(id string) (models.Brand, bool) {
	for _, b := range brands {
		if b.ID == id {
			return b, true
		}
	}
	return models.Brand{}, false
}

// ModelsFor returns the models for a brand and device type, optionally
// narrowed by a case-insensitive substring match on the model name.
// An unknown brand or type simply yields an empty list.
func ModelsFor(brandID string, t models.DeviceType, search string) []models.DeviceModel {
	search = strings.ToLower(search)
	var out []models.DeviceModel
	for _, m := range deviceModels {
		if m.BrandID != brandID || m.Type != t {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Name), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ModelByID looks up a device model.
func ModelByID(id string) (models.DeviceModel, bool) {
	for _, m := range deviceModels {
		if m.ID == id {
			return m, true
		}
	}
	return models.DeviceModel{}, false
}

// RepairsForType returns the repair menu for a device type. Unrecognized
// types fall back to the phone menu.
func RepairsForType(t models.DeviceType) []models.RepairOption {
	menu, ok := repairs[t]
	if !ok {
		menu = repairs[models.DevicePhone]
	}
	out := make([]models.RepairOption, len(menu))
	copy(out, menu)
	return out
}

// RepairByID looks up a repair on the menu for the given device type,
// honoring the same phone fallback as RepairsForType.
func RepairByID(t models.DeviceType, id string) (models.RepairOption, bool) {
	for _, r := range RepairsForType(t) {
		if r.ID == id {
			return r, true
		}
	}
	return models.RepairOption{}, false
}

// RefurbishedDevices returns the refurbished inventory.
func RefurbishedDevices() []models.RefurbishedDevice {
	out := make([]models.RefurbishedDevice, len(refurbished))
	copy(out, refurbished)
	return out
}

// RefurbishedByID looks up a refurbished device.
func RefurbishedByID(id string) (models.RefurbishedDevice, bool) {
	for _, d := range refurbished {
		if d.ID == id {
			return d, true
		}
	}
	return models.RefurbishedDevice{}, false
}

// Accessories returns all accessories.
func Accessories() []models.Accessory {
	out := make([]models.Accessory, len(accessories))
	copy(out, accessories)
	return out
}

// AccessoryByID looks up an accessory.
func AccessoryByID(id string) (models.Accessory, bool) {
	for _, a := range accessories {
		if a.ID == id {
			return a, true
		}
	}
	return models.Accessory{}, false
}

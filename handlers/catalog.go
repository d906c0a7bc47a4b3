package handlers

import (
	"net/http"

	"github.com/Omarrio321/Aran-Repairs/catalog"
	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"github.com/gin-gonic/gin"
)

// Catalog endpoints are plain reads over the static reference data, so
// they are package-level handlers with no injected dependencies.

// GetCategoriesHandler lists the device categories.
func GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// GetBrandsHandler lists the brands servicing the requested device type.
func GetBrandsHandler(c *gin.Context) {
	deviceType := models.DeviceType(c.Query("type"))
	if deviceType == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameter", "type is required")
		return
	}
	brands := catalog.BrandsForType(deviceType)
	if brands == nil {
		brands = []models.Brand{}
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// GetModelsHandler lists models filtered by brand, device type and an
// optional search query. Unknown filters yield an empty list.
func GetModelsHandler(c *gin.Context) {
	brandID := c.Query("brand")
	deviceType := models.DeviceType(c.Query("type"))
	if brandID == "" || deviceType == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameters", "brand and type are required")
		return
	}
	found := catalog.ModelsFor(brandID, deviceType, c.Query("q"))
	if found == nil {
		found = []models.DeviceModel{}
	}
	c.JSON(http.StatusOK, gin.H{"models": found})
}

// GetRepairsHandler returns the repair menu for a device type. Unknown
// types fall back to the phone menu.
func GetRepairsHandler(c *gin.Context) {
	deviceType := models.DeviceType(c.Query("type"))
	c.JSON(http.StatusOK, gin.H{"repairs": catalog.RepairsForType(deviceType)})
}

// GetRefurbishedHandler lists the refurbished inventory.
func GetRefurbishedHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"devices": catalog.RefurbishedDevices()})
}

// GetRefurbishedByIDHandler fetches one refurbished device.
func GetRefurbishedByIDHandler(c *gin.Context) {
	device, ok := catalog.RefurbishedByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Refurbished device not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, device)
}

// GetAccessoriesHandler lists the accessories.
func GetAccessoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accessories": catalog.Accessories()})
}

// GetAccessoryByIDHandler fetches one accessory.
func GetAccessoryByIDHandler(c *gin.Context) {
	accessory, ok := catalog.AccessoryByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Accessory not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, accessory)
}

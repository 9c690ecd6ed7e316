package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type BundleController struct {
	bundleService     service.BundleService
	settlementService service.SettlementService
}

func NewBundleController(bundleService service.BundleService, settlementService service.SettlementService) *BundleController {
	return &BundleController{
		bundleService:     bundleService,
		settlementService: settlementService,
	}
}

type BundleRequest struct {
	Name               string `json:"name" binding:"required"`
	CPUID              string `json:"cpuId"`
	MotherboardID      string `json:"motherboardId"`
	MemoryID           string `json:"memoryId"`
	GraphicsCardID     string `json:"graphicsCardId"`
	SSDID              string `json:"ssdId"`
	PCCaseID           string `json:"pcCaseId"`
	PowerSupplyID      string `json:"powerSupplyId"`
	CPUCoolerID        string `json:"cpuCoolerId"`
	OSID               string `json:"osId"`
	CustomSellingPrice *int64 `json:"customSellingPrice" binding:"omitempty,gte=0"`
}

func (r BundleRequest) toModel(id string) model.Bundle {
	return model.Bundle{
		ID:                 id,
		Name:               r.Name,
		CPUID:              r.CPUID,
		MotherboardID:      r.MotherboardID,
		MemoryID:           r.MemoryID,
		GraphicsCardID:     r.GraphicsCardID,
		SSDID:              r.SSDID,
		PCCaseID:           r.PCCaseID,
		PowerSupplyID:      r.PowerSupplyID,
		CPUCoolerID:        r.CPUCoolerID,
		OSID:               r.OSID,
		CustomSellingPrice: r.CustomSellingPrice,
	}
}

// RepriceRequest edits name and price together. A null price restores the default markup.
type RepriceRequest struct {
	Name               *string `json:"name"`
	CustomSellingPrice *int64  `json:"customSellingPrice" binding:"omitempty,gte=0"`
}

// ListBundles returns all bundles
// GET /api/v1/admin/bundles
func (ctrl *BundleController) ListBundles(c *gin.Context) {
	bundles := ctrl.bundleService.List()
	c.JSON(http.StatusOK, gin.H{
		"bundles": bundles,
		"count":   len(bundles),
	})
}

// ListQuotes returns cost, selling price and settlements for every bundle
// GET /api/v1/admin/bundles/quotes
func (ctrl *BundleController) ListQuotes(c *gin.Context) {
	quotes := ctrl.settlementService.BundleQuotes()
	c.JSON(http.StatusOK, gin.H{
		"quotes": quotes,
		"count":  len(quotes),
	})
}

// GetBundle returns one bundle with its derived prices
// GET /api/v1/admin/bundles/:id
func (ctrl *BundleController) GetBundle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	bundle, err := ctrl.bundleService.Get(id)
	if err != nil {
		log.Warn("Bundle not found", map[string]interface{}{
			"bundle_id": id,
		})
		errors.Respond(c, err, "bundle")
		return
	}
	quote, err := ctrl.settlementService.BundleQuote(id)
	if err != nil {
		errors.Respond(c, err, "bundle")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bundle": bundle,
		"quote":  quote,
	})
}

// CreateBundle adds a bundle with a fresh id
// POST /api/v1/admin/bundles
func (ctrl *BundleController) CreateBundle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid bundle request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	bundle, err := ctrl.bundleService.Add(c.Request.Context(), req.toModel(""))
	if err != nil {
		errors.Respond(c, err, "bundle")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bundle": bundle,
	})
}

// UpdateBundle replaces the bundle with the path id. Unknown ids change nothing.
// PUT /api/v1/admin/bundles/:id
func (ctrl *BundleController) UpdateBundle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid bundle request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	bundle := req.toModel(c.Param("id"))
	updated, err := ctrl.bundleService.Update(c.Request.Context(), bundle)
	if err != nil {
		errors.Respond(c, err, "bundle")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bundle":  bundle,
		"updated": updated,
	})
}

// RepriceBundle sets the name and custom selling price
// PATCH /api/v1/admin/bundles/:id/price
func (ctrl *BundleController) RepriceBundle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req RepriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid reprice request", map[string]interface{}{
			"bundle_id": id,
			"error":     err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	bundle, err := ctrl.bundleService.Reprice(c.Request.Context(), id, req.Name, req.CustomSellingPrice)
	if err != nil {
		errors.Respond(c, err, "bundle")
		return
	}
	quote, err := ctrl.settlementService.BundleQuote(id)
	if err != nil {
		errors.Respond(c, err, "bundle")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bundle": bundle,
		"quote":  quote,
	})
}

// DeleteBundle removes a bundle
// DELETE /api/v1/admin/bundles/:id
func (ctrl *BundleController) DeleteBundle(c *gin.Context) {
	deleted := ctrl.bundleService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"deleted": deleted,
	})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/importer"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type AdditionalItemController struct {
	itemService       service.AdditionalItemService
	settlementService service.SettlementService
}

func NewAdditionalItemController(itemService service.AdditionalItemService, settlementService service.SettlementService) *AdditionalItemController {
	return &AdditionalItemController{
		itemService:       itemService,
		settlementService: settlementService,
	}
}

type AdditionalItemRequest struct {
	Category        string `json:"category"`
	ProductName     string `json:"productName"`
	Name            string `json:"name" binding:"required"`
	Cost            int64  `json:"cost" binding:"gte=0"`
	AdditionalPrice int64  `json:"additionalPrice" binding:"gte=0"`
	UpgradePrice    *int64 `json:"upgradePrice" binding:"omitempty,gte=0"`
}

func (r AdditionalItemRequest) toModel(id string) model.AdditionalItem {
	return model.AdditionalItem{
		ID:              id,
		Category:        r.Category,
		ProductName:     r.ProductName,
		Name:            r.Name,
		Cost:            r.Cost,
		AdditionalPrice: r.AdditionalPrice,
		UpgradePrice:    r.UpgradePrice,
	}
}

// ListItems returns all additional items
// GET /api/v1/admin/additional-items
func (ctrl *AdditionalItemController) ListItems(c *gin.Context) {
	items := ctrl.itemService.List()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// CreateItem adds an item with a fresh id
// POST /api/v1/admin/additional-items
func (ctrl *AdditionalItemController) CreateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdditionalItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid additional item request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	item, err := ctrl.itemService.Add(c.Request.Context(), req.toModel(""))
	if err != nil {
		errors.Respond(c, err, "item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item": item,
	})
}

// UpdateItem replaces the item with the path id. Unknown ids change nothing.
// PUT /api/v1/admin/additional-items/:id
func (ctrl *AdditionalItemController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdditionalItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid additional item request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	item := req.toModel(c.Param("id"))
	updated, err := ctrl.itemService.Update(c.Request.Context(), item)
	if err != nil {
		errors.Respond(c, err, "item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":    item,
		"updated": updated,
	})
}

// DeleteItem removes an item
// DELETE /api/v1/admin/additional-items/:id
func (ctrl *AdditionalItemController) DeleteItem(c *gin.Context) {
	deleted := ctrl.itemService.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"deleted": deleted,
	})
}

// ImportItems appends items from an uploaded CSV or XLSX file
// POST /api/v1/admin/additional-items/import
func (ctrl *AdditionalItemController) ImportItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	table, ok := readUploadedTable(c)
	if !ok {
		return
	}

	added, err := ctrl.itemService.BulkAdd(c.Request.Context(), importer.AdditionalItems(table))
	if err != nil {
		log.Warn("Additional item import rejected", map[string]interface{}{
			"error": err.Error(),
		})
		errors.Respond(c, err, "import")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": added,
		"count": len(added),
	})
}

// GetSettlements returns the per-marketplace payout of every item's price
// GET /api/v1/admin/additional-items/settlements
func (ctrl *AdditionalItemController) GetSettlements(c *gin.Context) {
	settlements := ctrl.settlementService.ItemSettlements()
	c.JSON(http.StatusOK, gin.H{
		"settlements": settlements,
		"count":       len(settlements),
	})
}

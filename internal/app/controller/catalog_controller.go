package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/importer"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// bindComponent decodes the body into the type of cat and validates it.
func bindComponent(c *gin.Context, cat model.Category) (model.Component, bool) {
	log := middleware.GetLoggerFromContext(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		errors.RespondWithBindError(c, err)
		return nil, false
	}
	comp, err := model.DecodeComponent(cat, body)
	if err != nil {
		log.Warn("Invalid component body", map[string]interface{}{
			"category": cat,
			"error":    err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return nil, false
	}
	if err := binding.Validator.ValidateStruct(comp); err != nil {
		log.Warn("Component validation failed", map[string]interface{}{
			"category": cat,
			"error":    err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return nil, false
	}
	return comp, true
}

// GetCatalog returns every category
// GET /api/v1/admin/catalog
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	catalog := ctrl.catalogService.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"catalog": catalog,
	})
}

// ListComponents returns one category
// GET /api/v1/admin/catalog/:category
func (ctrl *CatalogController) ListComponents(c *gin.Context) {
	cat, ok := categoryParam(c)
	if !ok {
		return
	}

	components := ctrl.catalogService.List(cat)
	c.JSON(http.StatusOK, gin.H{
		"category":   cat,
		"components": components,
		"count":      len(components),
	})
}

// CreateComponent adds a component with a fresh id
// POST /api/v1/admin/catalog/:category
func (ctrl *CatalogController) CreateComponent(c *gin.Context) {
	cat, ok := categoryParam(c)
	if !ok {
		return
	}
	comp, ok := bindComponent(c, cat)
	if !ok {
		return
	}

	created, err := ctrl.catalogService.Add(c.Request.Context(), comp)
	if err != nil {
		errors.Respond(c, err, "catalog")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"component": created,
	})
}

// UpdateComponent replaces the component with the path id. Unknown ids change nothing.
// PUT /api/v1/admin/catalog/:category/:id
func (ctrl *CatalogController) UpdateComponent(c *gin.Context) {
	cat, ok := categoryParam(c)
	if !ok {
		return
	}
	comp, ok := bindComponent(c, cat)
	if !ok {
		return
	}
	comp = model.WithID(comp, c.Param("id"))

	updated := ctrl.catalogService.Update(c.Request.Context(), comp)
	c.JSON(http.StatusOK, gin.H{
		"component": comp,
		"updated":   updated,
	})
}

// DeleteComponent removes a component. Bundles that reference it keep the reference.
// DELETE /api/v1/admin/catalog/:category/:id
func (ctrl *CatalogController) DeleteComponent(c *gin.Context) {
	cat, ok := categoryParam(c)
	if !ok {
		return
	}

	deleted := ctrl.catalogService.Delete(c.Request.Context(), cat, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"deleted": deleted,
	})
}

// ImportComponents replaces a whole category from an uploaded CSV or XLSX file
// POST /api/v1/admin/catalog/:category/import
func (ctrl *CatalogController) ImportComponents(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cat, ok := categoryParam(c)
	if !ok {
		return
	}
	table, ok := readUploadedTable(c)
	if !ok {
		return
	}

	components, err := importer.Components(cat, table)
	if err != nil {
		log.Warn("Failed to convert import rows", map[string]interface{}{
			"category": cat,
			"error":    err.Error(),
		})
		errors.BadRequest(c, errors.ImportParseFailed, "파일을 처리하는 중 오류가 발생했습니다. 파일 형식과 내용을 확인해주세요")
		return
	}

	if err := ctrl.catalogService.ReplaceCategory(c.Request.Context(), cat, components); err != nil {
		errors.Respond(c, err, "import")
		return
	}

	log.Info("Category imported", map[string]interface{}{
		"category": cat,
		"count":    len(components),
	})

	c.JSON(http.StatusOK, gin.H{
		"category":   cat,
		"count":      len(components),
		"components": components,
	})
}

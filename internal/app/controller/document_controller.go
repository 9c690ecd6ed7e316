package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type DocumentController struct {
	documentService service.DocumentService
}

func NewDocumentController(documentService service.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// GetDocuments renders the quote and invoice of a bundle
// GET /api/v1/admin/bundles/:id/documents
func (ctrl *DocumentController) GetDocuments(c *gin.Context) {
	set, err := ctrl.documentService.Documents(c.Param("id"))
	if err != nil {
		errors.Respond(c, err, "document")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": set,
	})
}

// ExportDocuments downloads both documents as an XLSX workbook
// GET /api/v1/admin/bundles/:id/documents/export
func (ctrl *DocumentController) ExportDocuments(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	exported, err := ctrl.documentService.Export(id)
	if err != nil {
		log.Warn("Document export failed", map[string]interface{}{
			"bundle_id": id,
			"error":     err.Error(),
		})
		errors.Respond(c, err, "export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exported.Filename))
	c.Data(http.StatusOK, exported.ContentType, exported.Data)
}

// PublishDocuments uploads the workbook and returns a temporary download link
// POST /api/v1/admin/bundles/:id/documents/publish
func (ctrl *DocumentController) PublishDocuments(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	published, err := ctrl.documentService.Publish(c.Request.Context(), id)
	if err != nil {
		log.Error("Document publish failed", err, map[string]interface{}{
			"bundle_id": id,
		})
		errors.Respond(c, err, "publish")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document": published,
	})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/importer"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

// MaxImportSize caps uploaded CSV/XLSX files.
const MaxImportSize = 10 << 20

// categoryParam resolves :category or writes a 400 and returns false.
func categoryParam(c *gin.Context) (model.Category, bool) {
	raw := c.Param("category")
	cat, err := model.ParseCategory(raw)
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Unknown category", map[string]interface{}{
			"category": raw,
		})
		errors.Respond(c, err, "catalog")
		return "", false
	}
	return cat, true
}

// readUploadedTable decodes the multipart "file" field or writes an error response and returns false.
func readUploadedTable(c *gin.Context) (*importer.Table, bool) {
	log := middleware.GetLoggerFromContext(c)

	fh, err := c.FormFile("file")
	if err != nil {
		log.Warn("Missing import file", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithValidationError(c, map[string]string{"file": "필수 항목입니다"})
		return nil, false
	}
	if fh.Size > MaxImportSize {
		log.Warn("Import file too large", map[string]interface{}{
			"filename": fh.Filename,
			"size":     fh.Size,
		})
		errors.RespondWithError(c, http.StatusRequestEntityTooLarge, errors.ValidationInvalidRange, "파일 크기는 10MB 이하여야 합니다")
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		log.Error("Failed to open import file", err, map[string]interface{}{
			"filename": fh.Filename,
		})
		errors.InternalError(c, "")
		return nil, false
	}
	defer f.Close()

	table, err := importer.Read(fh.Filename, f)
	if err != nil {
		log.Warn("Failed to read import file", map[string]interface{}{
			"filename": fh.Filename,
			"error":    err.Error(),
		})
		info := errors.ParseError(err, "import")
		if info.Status == http.StatusInternalServerError {
			errors.BadRequest(c, errors.ImportParseFailed, info.Message)
			return nil, false
		}
		errors.RespondWithError(c, info.Status, info.Code, info.Message)
		return nil, false
	}
	return table, true
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

type LoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

type ChangePassphraseRequest struct {
	NewPassphrase     string `json:"newPassphrase"`
	ConfirmPassphrase string `json:"confirmPassphrase"`
}

// Login checks the shared admin passphrase
// POST /api/v1/admin/login
func (ctrl *AdminController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	if err := ctrl.adminService.Login(req.Passphrase); err != nil {
		errors.Respond(c, err, "admin")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
	})
}

// ChangePassphrase replaces the admin passphrase
// PUT /api/v1/admin/passphrase
func (ctrl *AdminController) ChangePassphrase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ChangePassphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid passphrase change request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	if err := ctrl.adminService.ChangePassphrase(c.Request.Context(), req.NewPassphrase, req.ConfirmPassphrase); err != nil {
		log.Warn("Passphrase change rejected", map[string]interface{}{
			"error": err.Error(),
		})
		errors.Respond(c, err, "admin")
		return
	}

	log.Info("Admin passphrase changed", nil)

	c.JSON(http.StatusOK, gin.H{
		"message": "비밀번호가 변경되었습니다",
	})
}

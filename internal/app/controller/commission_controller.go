package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type CommissionController struct {
	commissionService service.CommissionService
}

func NewCommissionController(commissionService service.CommissionService) *CommissionController {
	return &CommissionController{
		commissionService: commissionService,
	}
}

type CommissionRatesRequest struct {
	Naver   *float64 `json:"naver" binding:"required,gte=0,lte=100"`
	Coupang *float64 `json:"coupang" binding:"required,gte=0,lte=100"`
	Market  *float64 `json:"market" binding:"required,gte=0,lte=100"`
}

// GetRates returns the commission percentage per marketplace
// GET /api/v1/admin/commission-rates
func (ctrl *CommissionController) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rates": ctrl.commissionService.Get(),
	})
}

// UpdateRates replaces all three rates
// PUT /api/v1/admin/commission-rates
func (ctrl *CommissionController) UpdateRates(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CommissionRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid commission rates request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	rates := model.CommissionRates{
		Naver:   *req.Naver,
		Coupang: *req.Coupang,
		Market:  *req.Market,
	}
	if err := ctrl.commissionService.Set(c.Request.Context(), rates); err != nil {
		errors.Respond(c, err, "commission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rates": rates,
	})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/errors"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type QuoteController struct {
	recommendationService service.RecommendationService
}

func NewQuoteController(recommendationService service.RecommendationService) *QuoteController {
	return &QuoteController{
		recommendationService: recommendationService,
	}
}

type CreateQuoteRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Budget int64  `json:"budget" binding:"required,gt=0"`
}

// CreateQuote asks the model for a build matching the use-case and budget
// POST /api/v1/quotes
func (ctrl *QuoteController) CreateQuote(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid quote request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithBindError(c, err)
		return
	}

	rec, err := ctrl.recommendationService.Recommend(c.Request.Context(), req.Prompt, req.Budget)
	if err != nil {
		log.Error("Failed to generate quote", err, map[string]interface{}{
			"budget": req.Budget,
		})
		errors.Respond(c, err, "quote")
		return
	}

	log.Info("Quote generated", map[string]interface{}{
		"budget":      req.Budget,
		"total_price": rec.Build.TotalPrice,
		"compatible":  rec.Compatibility.OK,
	})

	c.JSON(http.StatusOK, gin.H{
		"build":         rec.Build,
		"compatibility": rec.Compatibility,
	})
}

package api

import (
	"net/http"

	reqdto "giftsafer/internal/handler/dto/request"
	resdto "giftsafer/internal/handler/dto/response"
	"giftsafer/internal/infra/metrics"
	"giftsafer/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckHandler struct {
	checkUseCase commands.CheckCommands
	metrics      *metrics.Metrics
}

func NewCheckHandler(checkUseCase commands.CheckCommands, metrics *metrics.Metrics) *CheckHandler {
	return &CheckHandler{
		checkUseCase: checkUseCase,
		metrics:      metrics,
	}
}

// @Summary Check a gift card code
// @Description Verify a gift card code and mark it used on success
// @Tags check
// @Accept json
// @Produce json
// @Param request body reqdto.CheckRequest true "Check request"
// @Success 200 {object} resdto.CheckResponse
// @Failure 400 {object} resdto.CheckResponse
// @Failure 429 {object} resdto.CheckResponse
// @Router /check [post]
func (h *CheckHandler) Check(c *gin.Context) {
	// A malformed body is not an error here: it flows through the
	// pipeline as empty fields and gets audited like any other reject.
	var req reqdto.CheckRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.checkUseCase.Check(c.Request.Context(), commands.CheckInput{
		ClientIP: c.ClientIP(),
		CardType: req.CardType,
		Code:     req.Code,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.metrics.ChecksTotal.WithLabelValues(result.Status.String()).Inc()
	c.JSON(httpStatusFor(result.Outcome), resdto.FromCheckResult(result))
}

func httpStatusFor(outcome commands.Outcome) int {
	switch outcome {
	case commands.OutcomeRateLimited:
		return http.StatusTooManyRequests
	case commands.OutcomeUnknownCardType, commands.OutcomeEmptyCode:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

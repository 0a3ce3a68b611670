package api

import (
	"errors"
	"net/http"

	reqdto "giftsafer/internal/handler/dto/request"
	resdto "giftsafer/internal/handler/dto/response"
	"giftsafer/internal/infra/metrics"
	"giftsafer/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryUseCase commands.InquiryCommands
	metrics        *metrics.Metrics
}

func NewInquiryHandler(inquiryUseCase commands.InquiryCommands, metrics *metrics.Metrics) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
		metrics:        metrics,
	}
}

// @Summary Request manual verification
// @Description Forward a code to the operations inbox for manual review
// @Tags inquiry
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyRequestRequest true "Verification request"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} resdto.InquiryResponse
// @Failure 502 {object} resdto.InquiryResponse
// @Router /verify-request [post]
func (h *InquiryHandler) VerifyRequest(c *gin.Context) {
	var req reqdto.VerifyRequestRequest
	_ = c.ShouldBindJSON(&req)

	err := h.inquiryUseCase.RequestManualVerification(c.Request.Context(), commands.VerifyRequestInput{
		Brand: req.Brand,
		Code:  req.Code,
		Email: req.Email,
	})
	if err != nil {
		h.respondInquiryError(c, err, "Missing brand, code, or email.")
		return
	}

	h.metrics.InquiriesSent.Inc()
	c.JSON(http.StatusOK, resdto.InquiryResponse{Ok: true})
}

// @Summary Upload card scans
// @Description Forward front/back card photos to the operations inbox
// @Tags inquiry
// @Accept json
// @Produce json
// @Param request body reqdto.ScanUploadRequest true "Scan upload"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} resdto.InquiryResponse
// @Failure 502 {object} resdto.InquiryResponse
// @Router /scan-upload [post]
func (h *InquiryHandler) ScanUpload(c *gin.Context) {
	var req reqdto.ScanUploadRequest
	_ = c.ShouldBindJSON(&req)

	err := h.inquiryUseCase.SubmitScan(c.Request.Context(), commands.ScanUploadInput{
		Brand: req.Brand,
		Email: req.Email,
		Front: req.Front,
		Back:  req.Back,
		Mode:  req.Mode,
	})
	if err != nil {
		h.respondInquiryError(c, err, "Missing brand, email, or images.")
		return
	}

	h.metrics.InquiriesSent.Inc()
	c.JSON(http.StatusOK, resdto.InquiryResponse{Ok: true})
}

func (h *InquiryHandler) respondInquiryError(c *gin.Context, err error, missingMsg string) {
	switch {
	case errors.Is(err, commands.ErrMissingInquiryField):
		c.JSON(http.StatusBadRequest, resdto.InquiryResponse{Ok: false, Message: missingMsg})
	case errors.Is(err, commands.ErrInvalidImageData):
		c.JSON(http.StatusBadRequest, resdto.InquiryResponse{Ok: false, Message: "Invalid image data."})
	case errors.Is(err, commands.ErrDispatchFailed):
		h.metrics.InquiriesFail.Inc()
		c.JSON(http.StatusBadGateway, resdto.InquiryResponse{Ok: false, Message: "Email send failed."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package handler

import (
	"winback/internal/dto"
	"winback/internal/pkg/response"
	"winback/internal/service"
	"winback/internal/telemetry"
	"winback/utils/validate"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	trace           *telemetry.Trace
	progressService *service.ProgressService
}

func NewProgressHandler(trace *telemetry.Trace, progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{trace: trace, progressService: progressService}
}

// Progress 每間門市的 churn/active 時間軸；?force=true 繞過快取
func (h *ProgressHandler) Progress(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ProgressDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	force := validate.GetBoolQuery(c, "force")

	res, err := h.progressService.BuildProgressView(ctx, req.Email, force)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ActiveHistory 單一門市的 active 月份清單
func (h *ProgressHandler) ActiveHistory(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ActiveHistoryDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.progressService.ActiveHistoryForStore(ctx, req.StoreID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

package handler

import (
	"winback/internal/dto"
	"winback/internal/pkg/response"
	"winback/internal/service"
	"winback/internal/telemetry"
	"winback/utils/validate"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	trace       *telemetry.Trace
	homeService *service.HomeService
}

func NewHomeHandler(trace *telemetry.Trace, homeService *service.HomeService) *HomeHandler {
	return &HomeHandler{trace: trace, homeService: homeService}
}

// Home 權限範圍內的門市視圖；?force=true 繞過快取
func (h *HomeHandler) Home(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.HomeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	force := validate.GetBoolQuery(c, "force")

	res, err := h.homeService.BuildHomeView(ctx, req.Email, force)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

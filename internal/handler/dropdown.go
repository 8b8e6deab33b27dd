package handler

import (
	"winback/internal/pkg/response"
	"winback/internal/service"
	"winback/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type DropdownHandler struct {
	trace           *telemetry.Trace
	dropdownService *service.DropdownService
}

func NewDropdownHandler(trace *telemetry.Trace, dropdownService *service.DropdownService) *DropdownHandler {
	return &DropdownHandler{trace: trace, dropdownService: dropdownService}
}

func (h *DropdownHandler) ChurnActions(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.dropdownService.ChurnActions(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

func (h *DropdownHandler) ActiveActions(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.dropdownService.ActiveActions(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

func (h *DropdownHandler) WhyReasons(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.dropdownService.WhyReasons(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

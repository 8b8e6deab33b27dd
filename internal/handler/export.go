package handler

import (
	"winback/internal/dto"
	"winback/internal/pkg/response"
	"winback/internal/service"
	"winback/internal/telemetry"
	"winback/utils/validate"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	trace         *telemetry.Trace
	exportService *service.ExportService
}

func NewExportHandler(trace *telemetry.Trace, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{trace: trace, exportService: exportService}
}

// Export 落地一份權限範圍內的資料快照
func (h *ExportHandler) Export(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ExportDataDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.exportService.ExportData(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// GetSnapshot 依 id 取回快照
func (h *ExportHandler) GetSnapshot(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseObjectID(c, "snapshotID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	snapshot, err := h.exportService.GetSnapshot(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, snapshot)
}

package handler

import (
	"fmt"

	"winback/internal/core"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/pkg/response"
	"winback/internal/service"
	"winback/internal/telemetry"
	"winback/utils/validate"

	"github.com/gin-gonic/gin"
)

type ActionHandler struct {
	trace         *telemetry.Trace
	actionService *service.ActionService
}

func NewActionHandler(trace *telemetry.Trace, actionService *service.ActionService) *ActionHandler {
	return &ActionHandler{trace: trace, actionService: actionService}
}

// Submit 寫入一筆行動紀錄；?type= 指定 Churn Database 或 Active Database
func (h *ActionHandler) Submit(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	kind := c.Query("type")
	if !validate.IsValidActionKind(kind) {
		err := cErr.MissingRequiredFields(fmt.Sprintf("query param type must be %q or %q", core.ActionKindChurn, core.ActionKindActive))
		end(err)
		response.AbortWithError(c, err)
		return
	}

	var req dto.SubmitActionDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.actionService.RecordAction(ctx, core.ActionKind(kind), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

package router

import (
	"net/http"

	"winback/internal/handler"

	"github.com/gin-gonic/gin"
)

// OutreachRouter 對外 API：登入、視圖、行動紀錄、下拉選單、匯出
type OutreachRouter struct {
	authHandler     *handler.AuthHandler
	homeHandler     *handler.HomeHandler
	progressHandler *handler.ProgressHandler
	actionHandler   *handler.ActionHandler
	dropdownHandler *handler.DropdownHandler
	exportHandler   *handler.ExportHandler
}

func NewOutreachRouter(
	authHandler *handler.AuthHandler,
	homeHandler *handler.HomeHandler,
	progressHandler *handler.ProgressHandler,
	actionHandler *handler.ActionHandler,
	dropdownHandler *handler.DropdownHandler,
	exportHandler *handler.ExportHandler,
) *OutreachRouter {
	return &OutreachRouter{
		authHandler:     authHandler,
		homeHandler:     homeHandler,
		progressHandler: progressHandler,
		actionHandler:   actionHandler,
		dropdownHandler: dropdownHandler,
		exportHandler:   exportHandler,
	}
}

func (or *OutreachRouter) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", or.authHandler.Login)
	r.POST("/manual-login", or.authHandler.ManualLogin)
	r.POST("/home", or.homeHandler.Home)
	r.POST("/progress", or.progressHandler.Progress)
	r.POST("/submit", or.actionHandler.Submit)
	r.POST("/active-history", or.progressHandler.ActiveHistory)
	r.POST("/export-data", or.exportHandler.Export)
	r.GET("/export-data/:snapshotID", or.exportHandler.GetSnapshot)

	r.GET("/dropdown-churn-actions", or.dropdownHandler.ChurnActions)
	r.GET("/dropdown-active-actions", or.dropdownHandler.ActiveActions)
	r.GET("/dropdown-why-reasons", or.dropdownHandler.WhyReasons)

	// 前端定時敲這支避免免費層休眠
	r.GET("/keep-alive", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
		c.Abort()
	})
}

package cron

import (
	"context"

	"winback/config"
	"winback/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger          *zap.Logger
	server          *cron.Cron
	conf            *config.Configuration
	dropdownService *service.DropdownService
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, dropdownService *service.DropdownService) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:          logger,
		server:          server,
		conf:            conf,
		dropdownService: dropdownService,
	}
}

func (c *Cron) Run() error {
	// 定期預熱下拉選單快取，spec 留空則不排程
	if spec := c.conf.Cache.WarmSpec; spec != "" {
		if _, err := c.server.AddFunc(spec, c.warmDropdownCaches); err != nil {
			return err
		}
	}

	c.server.Start()
	return nil
}

func (c *Cron) warmDropdownCaches() {
	if err := c.dropdownService.WarmCaches(context.Background()); err != nil {
		c.logger.Warn("dropdown cache warm failed", zap.Error(err))
		return
	}
	c.logger.Info("dropdown caches warmed")
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

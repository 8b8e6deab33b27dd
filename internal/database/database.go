package database

import (
	"winback/config"
	client "winback/internal/database/client"
	fluentdRepo "winback/internal/database/fluentd/repository"
	mongoRepo "winback/internal/database/mongodb/repository"
	redisRepo "winback/internal/database/redis/repository"
	sheetsRepo "winback/internal/database/sheets/repository"
	warehouseRepo "winback/internal/database/warehouse/repository"
	"winback/internal/tabular"

	"github.com/google/wire"
)

// ProvideSource 依設定選擇 gateway driver（sheets 或 warehouse）
func ProvideSource(
	conf *config.Configuration,
	sheetSource *sheetsRepo.SheetSource,
	warehouseSource *warehouseRepo.WarehouseSource,
) tabular.Source {
	if conf.Gateway.Driver == config.GatewayDriverWarehouse {
		return warehouseSource
	}
	return sheetSource
}

// ProviderSet 定義所有 DB Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	client.NewSheetsClient,
	client.NewWarehouseClient,
	sheetsRepo.NewSheetSource,
	warehouseRepo.NewWarehouseSource,
	ProvideSource,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)

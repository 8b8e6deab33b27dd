package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	exportSnapshotRepo *ExportSnapshotRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	exportSnapshotRepo *ExportSnapshotRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		exportSnapshotRepo: exportSnapshotRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewExportSnapshotRepository,
	NewMongoDBRepository)

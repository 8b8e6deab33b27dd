package service

import (
	"context"
	"errors"

	"winback/internal/core"
	"winback/internal/database/mongodb/model"
	"winback/internal/database/mongodb/repository"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExportService 把使用者權限範圍內的門市視圖落地成 MongoDB 快照。
// 快照 append-only，供離線分析與稽核。
type ExportService struct {
	trace      *telemetry.Trace
	home       *HomeService
	exportRepo *repository.ExportSnapshotRepository
}

func NewExportService(
	trace *telemetry.Trace,
	home *HomeService,
	exportRepo *repository.ExportSnapshotRepository,
) *ExportService {
	return &ExportService{trace: trace, home: home, exportRepo: exportRepo}
}

// ExportData 取最新（繞過快取）的 home 視圖並持久化
func (s *ExportService) ExportData(ctx context.Context, req *dto.ExportDataDto) (*dto.ExportDataResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	view, err := s.home.BuildHomeView(ctx, req.Email, true)
	if err != nil {
		return nil, err
	}

	stores := make([]model.SnapshotStore, 0, len(view.Stores))
	for _, store := range view.Stores {
		stores = append(stores, model.SnapshotStore{
			StoreID:              store.StoreID,
			StoreName:            store.StoreName,
			BuyerID:              store.BuyerID,
			CurrentPIC:           store.CurrentPIC,
			FullAddress:          store.FullAddress,
			LastOrderDate:        store.LastOrderDate,
			ChurnStatusThisMonth: store.ChurnStatusThisMonth,
		})
	}

	snapshot := &model.ExportSnapshot{
		Email:      view.AuthInfo.Email,
		PICCode:    core.PICCodeFromEmail(view.AuthInfo.Email),
		Role:       view.AuthInfo.Role,
		StoreCount: len(stores),
		Stores:     stores,
		Note:       req.Note,
	}
	created, err := s.exportRepo.Create(ctx, snapshot)
	if err != nil {
		return nil, cErr.DatabaseError("database ExportData error")
	}

	return &dto.ExportDataResponseDto{
		SnapshotID: created.ID.Hex(),
		StoreCount: created.StoreCount,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// GetSnapshot 依 id 取回快照（維運查核用）
func (s *ExportService) GetSnapshot(ctx context.Context, id primitive.ObjectID) (*model.ExportSnapshot, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	snapshot, err := s.exportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("export snapshot not found")
		}
		return nil, cErr.DatabaseError("database GetSnapshot error")
	}
	return snapshot, nil
}

package client

import (
	"context"
	"database/sql"
	"time"

	"winback/config"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// WarehouseClient 連接 MySQL warehouse
type WarehouseClient struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewWarehouseClient(logger *zap.Logger, config *config.Configuration) (*WarehouseClient, func(), error) {
	warehouseClient := &WarehouseClient{logger: logger}
	db, err := warehouseClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to warehouse", zap.Error(err))
		return nil, nil, err
	}
	warehouseClient.db = db

	cleanup := func() {
		logger.Info("closing the warehouse resources")
		if err := warehouseClient.Close(); err != nil {
			logger.Error("failed to close warehouse client", zap.Error(err))
		}
	}

	return warehouseClient, cleanup, nil
}

func (client *WarehouseClient) connectDB(config *config.Configuration) (*sql.DB, error) {
	db, err := sql.Open("mysql", config.Warehouse.DSN)
	if err != nil {
		return nil, err
	}
	if config.Warehouse.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.Warehouse.MaxOpenConns)
	}

	// driver=sheets 的部署不設 DSN，開著但不驗證連線
	if config.Warehouse.DSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return nil, err
		}
		client.logger.Info("Connected to warehouse")
	}
	return db, nil
}

// Close 關閉 warehouse 連線
func (client *WarehouseClient) Close() error {
	return client.db.Close()
}

// DB 回傳 warehouse 連線
func (client *WarehouseClient) DB() *sql.DB {
	return client.db
}

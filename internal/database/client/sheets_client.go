package client

import (
	"context"
	"winback/config"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient 連接 Google Sheets API
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

func NewSheetsClient(logger *zap.Logger, config *config.Configuration) (*SheetsClient, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope),
	}
	if config.Sheets.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.Sheets.CredentialsFile))
	} else {
		// 沒有憑證時仍可啟動（例如 driver=warehouse 的部署），只能讀公開表
		opts = append(opts, option.WithoutAuthentication())
	}

	service, err := sheets.NewService(context.Background(), opts...)
	if err != nil {
		logger.Error("failed to create Sheets service", zap.Error(err))
		return nil, err
	}
	logger.Info("Connected to Google Sheets API")

	return &SheetsClient{
		service:       service,
		spreadsheetID: config.Sheets.SpreadsheetID,
		logger:        logger,
	}, nil
}

// Service 回傳 Sheets API service
func (c *SheetsClient) Service() *sheets.Service {
	return c.service
}

// SpreadsheetID 回傳目標試算表 ID
func (c *SheetsClient) SpreadsheetID() string {
	return c.spreadsheetID
}

package service

import (
	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewHealthService,
	NewTableReader,
	NewScopeService,
	NewAuthService,
	NewHomeService,
	NewProgressService,
	NewActionService,
	NewDropdownService,
	NewExportService,
)

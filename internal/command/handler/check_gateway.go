package command

import (
	"context"
	"time"

	"winback/internal/tabular"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CheckGatewayHandler struct {
	logger *zap.Logger
	source tabular.Source
}

func NewCheckGatewayHandler(logger *zap.Logger, source tabular.Source) *CheckGatewayHandler {
	return &CheckGatewayHandler{
		logger: logger,
		source: source,
	}
}

// Run 逐表讀取一次，確認 gateway 連線與各表可讀
func (handler *CheckGatewayHandler) Run(cmd *cobra.Command, args []string) {
	checks := []struct {
		table       tabular.Table
		columnRange string
	}{
		{tabular.TableAuthentication, tabular.RangeAuthentication},
		{tabular.TableDecentralization, tabular.RangeDecentralization},
		{tabular.TableStoreInfo, tabular.RangeStoreInfo},
		{tabular.TableChurnHistory, tabular.RangeChurnHistory},
		{tabular.TableActiveHistory, tabular.RangeActiveHistory},
		{tabular.TableChurnDatabase, tabular.RangeChurnDatabase},
		{tabular.TableActiveDatabase, tabular.RangeActiveDatabase},
		{tabular.TableDropdownChurn, tabular.RangeDropdownChurn},
		{tabular.TableDropdownActive, tabular.RangeDropdownActive},
		{tabular.TableDropdownWhy, tabular.RangeDropdownWhy},
	}

	failed := 0
	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		rows, err := handler.source.ReadRange(ctx, check.table, check.columnRange)
		cancel()
		if err != nil {
			failed++
			cmd.Printf("x %-24s %v\n", check.table, err)
			handler.logger.Error("gateway check failed",
				zap.String("table", string(check.table)),
				zap.Error(err),
			)
			continue
		}
		cmd.Printf("o %-24s %d rows\n", check.table, len(rows))
	}

	if failed > 0 {
		cmd.Printf("%d/%d 張表讀取失敗\n", failed, len(checks))
		return
	}
	cmd.Println("所有資料表皆可讀取")
}

package command

import (
	commandHandler "winback/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewCheckGatewayHandler)

type Command struct {
	checkGatewayHandler *commandHandler.CheckGatewayHandler
}

// NewCommand .
func NewCommand(
	checkGatewayHandler *commandHandler.CheckGatewayHandler,
) *Command {
	return &Command{
		checkGatewayHandler: checkGatewayHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "check-gateway",
			Short: "逐一讀取 gateway 各資料表並回報列數",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.checkGatewayHandler.Run(cmd, args)
			},
		},
	)
}

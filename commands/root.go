package commands

import (
	"context"

	"github.com/spf13/cobra"

	"uni_bot_go/settings"
)

var config *settings.Settings

func Execute() error {
	root := &cobra.Command{
		Use:   "uni_bot",
		Short: "University information Telegram bot",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config = settings.LoadSettings()
		},
		// Без подкоманды запускаем бота
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), migrateCmd())
	return root.ExecuteContext(context.Background())
}

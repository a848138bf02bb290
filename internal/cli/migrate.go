package cli

import (
	"github.com/spf13/cobra"
	"github.com/stpnv0/TableBooker/internal/app"
	"github.com/stpnv0/TableBooker/internal/config"
)

func NewMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(app.MigrateUp), string(app.MigrateDown), string(app.MigrateStatus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := app.MigrateUp
			if len(args) == 1 {
				command = app.MigrateCommand(args[0])
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}

			return app.Migrate(cfg, log, dir, command)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", app.DefaultMigrationsDir, "migrations directory")

	return cmd
}

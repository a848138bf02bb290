package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stpnv0/TableBooker/internal/app"
	"github.com/stpnv0/TableBooker/internal/config"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP API and reminder scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}

			return application.Run()
		},
	}
}

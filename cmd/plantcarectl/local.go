package main

import (
	"context"
	"encoding/json"
	"fmt"

	"plantcare/internal/app"
	"plantcare/internal/infra/persistence/model"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// withApp starts the shared provider graph, populates targets and stops it when fn returns.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	fxApp := fx.New(
		fx.NopLogger,
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		fx.Populate(targets...),
	)
	if err := fxApp.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	runErr := fn()
	if err := fxApp.Stop(context.Background()); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB

			return withApp(cmd.Context(), func() error {
				if err := db.WithContext(cmd.Context()).AutoMigrate(model.AllModels()...); err != nil {
					return errors.Wrap(err, "migration failed")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")

				return nil
			}, &db)
		},
	}
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run one due-task scan in this process and print the summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var scanUC usecase.ScanUsecase

			return withApp(cmd.Context(), func() error {
				summary, err := scanUC.RunScan(cmd.Context())
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(summary)
			}, &scanUC)
		},
	}
}

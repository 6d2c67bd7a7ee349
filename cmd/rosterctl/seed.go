package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/repository"
)

func newSeedTAsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-tas",
		Short: "Insert the configured TA list into the ta table (idempotent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repository.NewRepository(a.db, a.logger)
			return runSeedTAs(cmd.Context(), repo.TA, a.cfg.Roster.SeedTAs, cmd.OutOrStdout(), a.logger)
		},
	}
}

func runSeedTAs(ctx context.Context, tas repository.TARepository, names []string, out io.Writer, logger *zap.Logger) error {
	n, err := tas.Seed(ctx, names)
	if err != nil {
		return fmt.Errorf("写入助教失败: %w", err)
	}
	logger.Info("助教初始化完成", zap.Int("configured", len(names)), zap.Int64("inserted", n))
	fmt.Fprintf(out, "seeded %d of %d TAs\n", n, len(names))
	return nil
}

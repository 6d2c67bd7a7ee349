package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/repository"
	"github.com/Vayras/ta-backend/internal/service"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		week int
		out  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Resolve a week's roster and write it as an .xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repository.NewRepository(a.db, a.logger)
			svc := service.NewService(a.cfg, repo, a.logger)
			return runExport(cmd.Context(), svc.Export, week, out, cmd.OutOrStdout(), a.logger)
		},
	}
	cmd.Flags().IntVarP(&week, "week", "w", 0, "week to export")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: weekly_roster_week_<N>.xlsx)")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

func runExport(ctx context.Context, exporter service.ExportService, week int, out string, stdout io.Writer, logger *zap.Logger) error {
	buf, filename, err := exporter.ExportWeek(ctx, week)
	if err != nil {
		return fmt.Errorf("导出第 %d 周失败: %w", week, err)
	}
	if out == "" {
		out = filename
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	logger.Info("周名单已导出", zap.Int("week", week), zap.String("file", out), zap.Int("bytes", buf.Len()))
	fmt.Fprintf(stdout, "wrote %s\n", out)
	return nil
}

// rosterctl 周名单服务的运维命令行：数据库迁移、助教初始化与名单导出
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vayras/ta-backend/config"
	"github.com/Vayras/ta-backend/pkg/database"
	applogger "github.com/Vayras/ta-backend/pkg/logger"
)

func main() {
	root, a := newRootCmd()
	err := root.Execute()
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app 子命令共享的运行环境；在 PersistentPreRunE 中构建，命令结束后由 main 释放
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	db         *gorm.DB
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Maintenance commands for the weekly roster service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to config file (default: ./config/config.yaml)")

	root.AddCommand(
		newMigrateCmd(a),
		newSeedTAsCmd(a),
		newExportCmd(a),
	)
	return root, a
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.db = cfg, logger, db
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.db != nil {
		return database.Close(a.db)
	}
	return nil
}

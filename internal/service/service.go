package service

import (
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/config"
	"github.com/Vayras/ta-backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth   AuthService
	Roster RosterService
	Stats  StatsService
	Export ExportService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	roster := NewRosterService(repo, NewAssignmentPolicy(&cfg.Roster), logger)
	return &Service{
		Auth:   NewAuthService(cfg.Auth.AllowedEmails, logger),
		Roster: roster,
		Stats:  NewStatsService(repo, logger),
		Export: NewExportService(roster, logger),
	}
}

// NewAssignmentPolicy 由配置构造分配策略（随机源使用 math/rand/v2 全局源）
func NewAssignmentPolicy(cfg *config.RosterConfig) *AssignmentPolicy {
	return &AssignmentPolicy{
		RoundRobinTAs: cfg.RoundRobinTAs,
		AbsentTA:      cfg.AbsentTA,
		UnassignedTA:  cfg.UnassignedTA,
	}
}

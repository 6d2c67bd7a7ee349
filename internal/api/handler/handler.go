package handler

import "github.com/Vayras/ta-backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth   *AuthHandler
	Roster *RosterHandler
	Stats  *StatsHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Roster: NewRosterHandler(svc.Roster, svc.Export),
		Stats:  NewStatsHandler(svc.Stats),
	}
}

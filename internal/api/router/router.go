package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/config"
	"github.com/Vayras/ta-backend/internal/api/handler"
	"github.com/Vayras/ta-backend/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时登录接口不限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── 登录 ──
	r.POST("/login",
		middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow, logger),
		h.Auth.Login,
	)

	// ── 助教与统计 ──
	r.GET("/tas", h.Stats.ListTAs)
	r.GET("/students/count", h.Stats.StudentCount)
	r.GET("/attendance/weekly_counts", h.Stats.WeeklyAttendanceCounts)

	// ── 周名单 ──
	weekly := r.Group("/weekly_data/:week")
	{
		weekly.GET("", h.Roster.GetWeeklyData)
		weekly.POST("", h.Roster.AddWeeklyData)
		weekly.GET("/export", h.Roster.ExportWeeklyData)
	}

	return r
}

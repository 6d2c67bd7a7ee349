package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vayras/ta-backend/internal/service"
	"github.com/Vayras/ta-backend/pkg/response"
)

// StatsHandler 助教与统计 HTTP 处理器
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// ListTAs 助教列表
// GET /tas
func (h *StatsHandler) ListTAs(c *gin.Context) {
	result, err := h.statsSvc.ListTAs(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.JSON(c, result)
}

// StudentCount 学生周记录总数
// GET /students/count
func (h *StatsHandler) StudentCount(c *gin.Context) {
	result, err := h.statsSvc.StudentCount(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.JSON(c, result)
}

// WeeklyAttendanceCounts 每周出勤人数
// GET /attendance/weekly_counts
func (h *StatsHandler) WeeklyAttendanceCounts(c *gin.Context) {
	result, err := h.statsSvc.WeeklyAttendance(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.JSON(c, result)
}

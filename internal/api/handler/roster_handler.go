package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vayras/ta-backend/internal/dto"
	"github.com/Vayras/ta-backend/internal/service"
	pkgerrors "github.com/Vayras/ta-backend/pkg/errors"
	"github.com/Vayras/ta-backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RosterHandler 周名单 HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
	exportSvc service.ExportService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService, exportSvc service.ExportService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc, exportSvc: exportSvc}
}

// GetWeeklyData 查询周名单（含回退推导）
// GET /weekly_data/:week
func (h *RosterHandler) GetWeeklyData(c *gin.Context) {
	week, ok := parseWeek(c)
	if !ok {
		return
	}

	result, err := h.rosterSvc.Resolve(c.Request.Context(), week)
	if err != nil {
		handleRosterError(c, err)
		return
	}
	response.JSON(c, result)
}

// AddWeeklyData 批量写入周成绩
// POST /weekly_data/:week
func (h *RosterHandler) AddWeeklyData(c *gin.Context) {
	week, ok := parseWeek(c)
	if !ok {
		return
	}

	var batch []dto.StudentEntry
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid request body", err.Error())
		return
	}

	if _, err := h.rosterSvc.ApplyWeek(c.Request.Context(), week, batch); err != nil {
		handleRosterError(c, err)
		return
	}
	response.Text(c, "Weekly data inserted/updated successfully")
}

// ExportWeeklyData 导出周名单为 Excel
// GET /weekly_data/:week/export
func (h *RosterHandler) ExportWeeklyData(c *gin.Context) {
	week, ok := parseWeek(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportWeek(c.Request.Context(), week)
	if err != nil {
		handleRosterError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// parseWeek 解析路径中的周次；失败时已写入 400 响应
func parseWeek(c *gin.Context) (int, bool) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 0 {
		response.BadRequest(c, 20001, service.ErrInvalidWeek.Error())
		return 0, false
	}
	return week, true
}

func handleRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWeek):
		response.BadRequest(c, 20001, err.Error())
	case errors.Is(err, service.ErrMalformedEntry):
		response.ErrorWithDetails(c, http.StatusBadRequest, 20002, service.ErrMalformedEntry.Error(), err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 20004, err.Error())
	default:
		handleStoreError(c, err)
	}
}

// handleStoreError 存储层错误统一返回 500，不向客户端暴露底层信息
func handleStoreError(c *gin.Context, err error) {
	if errors.Is(err, pkgerrors.ErrStoreUnavailable) {
		response.Error(c, http.StatusInternalServerError, 20003, pkgerrors.ErrStoreUnavailable.Error())
		return
	}
	response.InternalError(c)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/dto"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("failed to generate spreadsheet")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出内容与 GET /weekly_data/:week 完全一致（同样走三级回退，不落库）
//   - 以 bytes.Buffer 返回，由 Handler 或 CLI 决定写入响应还是文件
//   - 行顺序与名单顺序一致
type ExportService interface {
	ExportWeek(ctx context.Context, week int) (*bytes.Buffer, string, error)
}

type exportService struct {
	roster RosterService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(roster RosterService, logger *zap.Logger) ExportService {
	return &exportService{roster: roster, logger: logger}
}

var exportHeaders = []string{
	"Group", "TA", "Name", "Mail", "Attendance",
	"FA", "FB", "FC", "FD",
	"Bonus Attendance", "Bonus Answer Quality", "Bonus Follow Up",
	"Exercise Submitted", "Exercise Test Passing", "Exercise Good Documentation", "Exercise Good Structure",
	"Total",
}

// ═══════════════════════════════════════════════════════════
// ExportWeek — 导出周名单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Week N"
//   - 第 1 行标题，第 2 行表头，第 3 行起为数据
//   - 单元格为空表示该字段为 NULL

func (s *exportService) ExportWeek(ctx context.Context, week int) (*bytes.Buffer, string, error) {
	roster, err := s.roster.Resolve(ctx, week)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("Week %d", week)
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	lastCol := colName(len(exportHeaders) - 1)
	f.SetColWidth(sheetName, "A", "B", 18)
	f.SetColWidth(sheetName, "C", "D", 28)
	f.SetColWidth(sheetName, "E", lastCol, 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Weekly roster: week %d (%d students)", week, len(roster)))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	for i, h := range exportHeaders {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}
	f.SetCellStyle(sheetName, "A2", cell(lastCol, 2), headerStyle)

	// 数据行
	for i := range roster {
		if err := f.SetSheetRow(sheetName, cell("A", i+3), exportRow(&roster[i])); err != nil {
			s.logger.Error("写入 Excel 行失败", zap.Int("row", i), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("weekly_roster_week_%d.xlsx", week)
	return buf, filename, nil
}

// exportRow 按表头顺序展开一行；NULL 字段写 nil 使单元格留空
func exportRow(w *dto.WeeklyInfo) *[]interface{} {
	row := []interface{}{
		w.GroupID, strOrNil(w.TA), w.Name, w.Mail, strOrNil(w.Attendance),
		floatOrNil(w.FA), floatOrNil(w.FB), floatOrNil(w.FC), floatOrNil(w.FD),
		strOrNil(w.BonusAttendance), strOrNil(w.BonusAnswerQuality), strOrNil(w.BonusFollowUp),
		strOrNil(w.ExerciseSubmitted), strOrNil(w.ExerciseTestPassing),
		strOrNil(w.ExerciseGoodDocumentation), strOrNil(w.ExerciseGoodStructure),
		floatOrNil(w.Total),
	}
	return &row
}

func strOrNil(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func floatOrNil(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

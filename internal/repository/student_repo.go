package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vayras/ta-backend/internal/model"
)

// StudentRepository 学生周记录数据访问接口
type StudentRepository interface {
	// ListByWeek 按存储顺序列出某周全部记录
	ListByWeek(ctx context.Context, week int) ([]model.StudentWeek, error)
	// ListByWeekAttendanceOrdered 按出勤排序（yes → no → 其他）列出某周记录
	ListByWeekAttendanceOrdered(ctx context.Context, week int) ([]model.StudentWeek, error)
	CountAll(ctx context.Context) (int64, error)
	WeeklyAttendanceCounts(ctx context.Context) ([]model.WeeklyAttendanceCount, error)
	// UpsertWeek 在一个事务内按 (week, mail) 逐条更新或插入，返回处理行数
	UpsertWeek(ctx context.Context, week int, rows []model.StudentWeek) (int64, error)
}

type studentRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB, logger *zap.Logger) StudentRepository {
	return &studentRepo{db: db, logger: logger}
}

func (r *studentRepo) ListByWeek(ctx context.Context, week int) ([]model.StudentWeek, error) {
	db := r.db.WithContext(ctx).
		Model(&model.StudentWeek{}).
		Where("week = ?", week).
		Order("id ASC")
	return r.scanEach(db, week)
}

func (r *studentRepo) ListByWeekAttendanceOrdered(ctx context.Context, week int) ([]model.StudentWeek, error) {
	db := r.db.WithContext(ctx).
		Model(&model.StudentWeek{}).
		Where("week = ?", week).
		Order(model.AttendanceRankSQL).
		Order("id ASC")
	return r.scanEach(db, week)
}

// scanEach 逐行扫描；单行转换失败（如历史数据中的 NULL 姓名）只跳过该行并告警，不影响整体列表
func (r *studentRepo) scanEach(db *gorm.DB, week int) ([]model.StudentWeek, error) {
	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.StudentWeek, 0)
	for rows.Next() {
		var s model.StudentWeek
		if err := r.db.ScanRows(rows, &s); err != nil {
			r.logger.Warn("跳过无法解析的学生记录", zap.Int("week", week), zap.Error(err))
			continue
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *studentRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.StudentWeek{}).
		Count(&count).Error
	return count, err
}

func (r *studentRepo) WeeklyAttendanceCounts(ctx context.Context) ([]model.WeeklyAttendanceCount, error) {
	var counts []model.WeeklyAttendanceCount
	err := r.db.WithContext(ctx).
		Model(&model.StudentWeek{}).
		Select("week, COUNT(*) AS attended").
		Where("attendance = ?", model.Yes).
		Group("week").
		Order("week ASC").
		Scan(&counts).Error
	return counts, err
}

func (r *studentRepo) UpsertWeek(ctx context.Context, week int, rows []model.StudentWeek) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			row := rows[i]
			row.ID = 0
			row.Week = week

			var existing model.StudentWeek
			err := tx.Select("id").
				Where("week = ? AND mail = ?", week, row.Mail).
				Take(&existing).Error
			switch {
			case err == nil:
				// 已存在 → 覆盖全部可变字段
				if err := tx.Model(&model.StudentWeek{}).
					Where("id = ?", existing.ID).
					Updates(row.MutableFields()).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// 不存在 → 插入
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}
			affected++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

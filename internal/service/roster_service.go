package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/dto"
	"github.com/Vayras/ta-backend/internal/model"
	"github.com/Vayras/ta-backend/internal/repository"
	pkgerrors "github.com/Vayras/ta-backend/pkg/errors"
)

// ── 周名单模块业务错误 ──

var (
	ErrInvalidWeek    = errors.New("week must be a non-negative integer")
	ErrMalformedEntry = errors.New("malformed weekly entry")
)

// BaselineWeek 基线名单所在的周
const BaselineWeek = 0

// RosterService 周名单业务接口
type RosterService interface {
	// Resolve 解析指定周的名单：当周记录 → 上周推导 → 基线推导
	Resolve(ctx context.Context, week int) ([]dto.WeeklyInfo, error)
	// ApplyWeek 原子地写入一整批周记录，返回处理行数
	ApplyWeek(ctx context.Context, week int, batch []dto.StudentEntry) (int64, error)
}

type rosterService struct {
	repo     *repository.Repository
	policy   *AssignmentPolicy
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, policy *AssignmentPolicy, logger *zap.Logger) RosterService {
	return &rosterService{
		repo:     repo,
		policy:   policy,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ════════════════════════════════════════════════════════════
// Resolve — 三级回退
// ════════════════════════════════════════════════════════════

// rosterSource 名单来源；按顺序尝试，第一个返回非空结果的来源胜出
type rosterSource struct {
	name    string
	applies func(week int) bool
	load    func(ctx context.Context, week int) ([]model.StudentWeek, error)
	build   func(rows []model.StudentWeek, week int) []dto.WeeklyInfo
}

func (s *rosterService) sources() []rosterSource {
	return []rosterSource{
		{
			// Case A: 当周已有记录，原样返回
			name:    "exact",
			applies: func(int) bool { return true },
			load:    s.repo.Student.ListByWeek,
			build:   passThrough,
		},
		{
			// Case B: 基于上周出勤重新分组
			name:    "previous_week",
			applies: func(week int) bool { return week >= 2 },
			load: func(ctx context.Context, week int) ([]model.StudentWeek, error) {
				return s.repo.Student.ListByWeekAttendanceOrdered(ctx, week-1)
			},
			build: s.fromPreviousWeek,
		},
		{
			// Case C: 基于基线名单随机分配助教
			name:    "baseline",
			applies: func(int) bool { return true },
			load: func(ctx context.Context, _ int) ([]model.StudentWeek, error) {
				return s.repo.Student.ListByWeekAttendanceOrdered(ctx, BaselineWeek)
			},
			build: s.fromBaseline,
		},
	}
}

func (s *rosterService) Resolve(ctx context.Context, week int) ([]dto.WeeklyInfo, error) {
	if week < 0 {
		return nil, ErrInvalidWeek
	}

	for _, src := range s.sources() {
		if !src.applies(week) {
			continue
		}
		rows, err := src.load(ctx, week)
		if err != nil {
			s.logger.Error("读取周名单失败",
				zap.String("source", src.name),
				zap.Int("week", week),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", pkgerrors.ErrStoreUnavailable, err)
		}
		if len(rows) == 0 {
			continue
		}

		s.logger.Debug("周名单解析完成",
			zap.String("source", src.name),
			zap.Int("week", week),
			zap.Int("rows", len(rows)),
		)
		return src.build(rows, week), nil
	}

	return []dto.WeeklyInfo{}, nil
}

func passThrough(rows []model.StudentWeek, _ int) []dto.WeeklyInfo {
	result := make([]dto.WeeklyInfo, 0, len(rows))
	for i := range rows {
		result = append(result, dto.NewWeeklyInfo(&rows[i]))
	}
	return result
}

// fromPreviousWeek 上周记录推导：只保留姓名、邮箱与新分组；
// 上周的 fa 作为占位写入 total（NULL 记为 0），周次改为请求的周
func (s *rosterService) fromPreviousWeek(rows []model.StudentWeek, week int) []dto.WeeklyInfo {
	rot := s.policy.FixedPass()
	result := make([]dto.WeeklyInfo, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		group, ta := rot.Assign(row.Attendance)

		total := 0.0
		if row.FA != nil {
			total = *row.FA
		}

		result = append(result, dto.WeeklyInfo{
			Name:    row.Name,
			Mail:    row.Mail,
			GroupID: group,
			TA:      &ta,
			Total:   &total,
			Week:    week,
		})
	}
	return result
}

// fromBaseline 基线推导：保留基线行的全部字段，仅覆盖分组与助教
func (s *rosterService) fromBaseline(rows []model.StudentWeek, _ int) []dto.WeeklyInfo {
	rot := s.policy.ShuffledPass()
	result := make([]dto.WeeklyInfo, 0, len(rows))
	for i := range rows {
		info := dto.NewWeeklyInfo(&rows[i])
		group, ta := rot.Assign(rows[i].Attendance)
		info.GroupID = group
		info.TA = &ta
		result = append(result, info)
	}
	return result
}

// ════════════════════════════════════════════════════════════
// ApplyWeek — 批量覆盖写入
// ════════════════════════════════════════════════════════════

func (s *rosterService) ApplyWeek(ctx context.Context, week int, batch []dto.StudentEntry) (int64, error) {
	if week < 0 {
		return 0, ErrInvalidWeek
	}
	if len(batch) == 0 {
		return 0, nil
	}

	// 先整体校验，任一条目不合法则整批拒绝
	rows := make([]model.StudentWeek, 0, len(batch))
	for i := range batch {
		if err := s.validate.Struct(&batch[i]); err != nil {
			return 0, fmt.Errorf("%w: entry %d (%s): %v", ErrMalformedEntry, i, batch[i].Mail, err)
		}
		rows = append(rows, batch[i].ToModel(week))
	}

	n, err := s.repo.Student.UpsertWeek(ctx, week, rows)
	if err != nil {
		s.logger.Error("写入周数据失败", zap.Int("week", week), zap.Int("entries", len(rows)), zap.Error(err))
		return 0, fmt.Errorf("%w: %v", pkgerrors.ErrStoreUnavailable, err)
	}

	s.logger.Info("周数据已写入", zap.Int("week", week), zap.Int64("rows", n))
	return n, nil
}

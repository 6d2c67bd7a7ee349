package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/dto"
	"github.com/Vayras/ta-backend/internal/repository"
	pkgerrors "github.com/Vayras/ta-backend/pkg/errors"
)

// StatsService 助教列表与出勤统计
type StatsService interface {
	ListTAs(ctx context.Context) ([]dto.TAResponse, error)
	StudentCount(ctx context.Context) (*dto.StudentCountResponse, error)
	WeeklyAttendance(ctx context.Context) ([]dto.WeeklyAttendanceResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

func (s *statsService) ListTAs(ctx context.Context) ([]dto.TAResponse, error) {
	tas, err := s.repo.TA.List(ctx)
	if err != nil {
		s.logger.Error("查询助教列表失败", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrStoreUnavailable, err)
	}

	result := make([]dto.TAResponse, 0, len(tas))
	for _, ta := range tas {
		result = append(result, dto.TAResponse{ID: ta.ID, Name: ta.Name})
	}
	return result, nil
}

func (s *statsService) StudentCount(ctx context.Context) (*dto.StudentCountResponse, error) {
	count, err := s.repo.Student.CountAll(ctx)
	if err != nil {
		s.logger.Error("统计学生记录失败", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrStoreUnavailable, err)
	}
	return &dto.StudentCountResponse{TotalStudents: count}, nil
}

func (s *statsService) WeeklyAttendance(ctx context.Context) ([]dto.WeeklyAttendanceResponse, error) {
	counts, err := s.repo.Student.WeeklyAttendanceCounts(ctx)
	if err != nil {
		s.logger.Error("统计周出勤失败", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrStoreUnavailable, err)
	}

	result := make([]dto.WeeklyAttendanceResponse, 0, len(counts))
	for _, c := range counts {
		result = append(result, dto.WeeklyAttendanceResponse{Week: c.Week, Attended: c.Attended})
	}
	return result, nil
}

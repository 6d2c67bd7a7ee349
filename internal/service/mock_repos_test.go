package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Vayras/ta-backend/internal/model"
	"github.com/Vayras/ta-backend/internal/repository"
)

var errMockStore = errors.New("mock store down")

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	mu      sync.Mutex
	rows    []model.StudentWeek // 插入顺序即存储顺序
	nextID  int64
	failAll bool
	upserts int
}

func newMockStudentRepo(rows ...model.StudentWeek) *mockStudentRepo {
	m := &mockStudentRepo{}
	for _, r := range rows {
		m.nextID++
		r.ID = m.nextID
		m.rows = append(m.rows, r)
	}
	return m
}

func (m *mockStudentRepo) byWeek(week int) []model.StudentWeek {
	result := make([]model.StudentWeek, 0)
	for _, r := range m.rows {
		if r.Week == week {
			result = append(result, r)
		}
	}
	return result
}

func (m *mockStudentRepo) ListByWeek(_ context.Context, week int) ([]model.StudentWeek, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errMockStore
	}
	return m.byWeek(week), nil
}

func (m *mockStudentRepo) ListByWeekAttendanceOrdered(_ context.Context, week int) ([]model.StudentWeek, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errMockStore
	}
	result := m.byWeek(week)
	sort.SliceStable(result, func(i, j int) bool {
		return model.AttendanceRank(result[i].Attendance) < model.AttendanceRank(result[j].Attendance)
	})
	return result, nil
}

func (m *mockStudentRepo) CountAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return 0, errMockStore
	}
	return int64(len(m.rows)), nil
}

func (m *mockStudentRepo) WeeklyAttendanceCounts(_ context.Context) ([]model.WeeklyAttendanceCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errMockStore
	}
	counts := make(map[int]int64)
	for _, r := range m.rows {
		if model.IsPresent(r.Attendance) {
			counts[r.Week]++
		}
	}
	result := make([]model.WeeklyAttendanceCount, 0, len(counts))
	for w, n := range counts {
		result = append(result, model.WeeklyAttendanceCount{Week: w, Attended: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Week < result[j].Week })
	return result, nil
}

// UpsertWeek 整批成功或整批不变
func (m *mockStudentRepo) UpsertWeek(_ context.Context, week int, rows []model.StudentWeek) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	if m.failAll {
		return 0, errMockStore
	}

	staged := append([]model.StudentWeek(nil), m.rows...)
	nextID := m.nextID
	for _, row := range rows {
		row.Week = week
		found := false
		for i := range staged {
			if staged[i].Week == week && staged[i].Mail == row.Mail {
				row.ID = staged[i].ID
				staged[i] = row
				found = true
				break
			}
		}
		if !found {
			nextID++
			row.ID = nextID
			staged = append(staged, row)
		}
	}
	m.rows = staged
	m.nextID = nextID
	return int64(len(rows)), nil
}

// ── Mock TARepository ──

type mockTARepo struct {
	tas     []model.TA
	failAll bool
}

func (m *mockTARepo) List(_ context.Context) ([]model.TA, error) {
	if m.failAll {
		return nil, errMockStore
	}
	return append([]model.TA(nil), m.tas...), nil
}

func (m *mockTARepo) Seed(_ context.Context, names []string) (int64, error) {
	if m.failAll {
		return 0, errMockStore
	}
	var n int64
	for i, name := range names {
		if i < len(m.tas) {
			continue
		}
		m.tas = append(m.tas, model.TA{ID: i + 1, Name: name})
		n++
	}
	return n, nil
}

func newMockRepository(students *mockStudentRepo, tas *mockTARepo) *repository.Repository {
	if students == nil {
		students = newMockStudentRepo()
	}
	if tas == nil {
		tas = &mockTARepo{}
	}
	return &repository.Repository{Student: students, TA: tas}
}

// ── 测试数据 ──

func ptr[T any](v T) *T { return &v }

func row(name string, week int, attendance *string) model.StudentWeek {
	return model.StudentWeek{
		Name:       name,
		Mail:       name + "@example.com",
		GroupID:    "Group 1",
		Attendance: attendance,
		Week:       week,
	}
}

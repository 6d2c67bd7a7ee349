package dto

import "github.com/Vayras/ta-backend/internal/model"

// ── 周名单模块 DTO ──

// WeeklyInfo 周名单视图（GET /weekly_data/:week 的数组元素）
// 可选字段为 nil 时序列化为 null，与前端约定一致
type WeeklyInfo struct {
	Name                      string   `json:"name"`
	GroupID                   string   `json:"group_id"`
	TA                        *string  `json:"ta"`
	Attendance                *string  `json:"attendance"`
	FA                        *float64 `json:"fa"`
	FB                        *float64 `json:"fb"`
	FC                        *float64 `json:"fc"`
	FD                        *float64 `json:"fd"`
	BonusAttendance           *string  `json:"bonus_attendance"`
	BonusAnswerQuality        *string  `json:"bonus_answer_quality"`
	BonusFollowUp             *string  `json:"bonus_follow_up"`
	ExerciseSubmitted         *string  `json:"exercise_submitted"`
	ExerciseTestPassing       *string  `json:"exercise_test_passing"`
	ExerciseGoodDocumentation *string  `json:"exercise_good_documentation"`
	ExerciseGoodStructure     *string  `json:"exercise_good_structure"`
	Total                     *float64 `json:"total"`
	Mail                      string   `json:"mail"`
	Week                      int      `json:"week"`
}

// NewWeeklyInfo 原样转换一条已存储的周记录
func NewWeeklyInfo(s *model.StudentWeek) WeeklyInfo {
	return WeeklyInfo{
		Name:                      s.Name,
		GroupID:                   s.GroupID,
		TA:                        s.TA,
		Attendance:                s.Attendance,
		FA:                        s.FA,
		FB:                        s.FB,
		FC:                        s.FC,
		FD:                        s.FD,
		BonusAttendance:           s.BonusAttendance,
		BonusAnswerQuality:        s.BonusAnswerQuality,
		BonusFollowUp:             s.BonusFollowUp,
		ExerciseSubmitted:         s.ExerciseSubmitted,
		ExerciseTestPassing:       s.ExerciseTestPassing,
		ExerciseGoodDocumentation: s.ExerciseGoodDocumentation,
		ExerciseGoodStructure:     s.ExerciseGoodStructure,
		Total:                     s.Total,
		Mail:                      s.Mail,
		Week:                      s.Week,
	}
}

// StudentEntry 周成绩提交条目（POST /weekly_data/:week 的数组元素）
// week 字段仅为兼容旧前端，实际以路径参数为准
type StudentEntry struct {
	Name                      string   `json:"name"                        validate:"required"`
	Mail                      string   `json:"mail"                        validate:"required"`
	Attendance                *string  `json:"attendance"                  validate:"omitempty,oneof=yes no"`
	Week                      *int     `json:"week,omitempty"`
	GroupID                   string   `json:"group_id"`
	TA                        *string  `json:"ta"`
	FA                        *float64 `json:"fa"`
	FB                        *float64 `json:"fb"`
	FC                        *float64 `json:"fc"`
	FD                        *float64 `json:"fd"`
	BonusAttendance           *string  `json:"bonus_attendance"            validate:"omitempty,oneof=yes no"`
	BonusAnswerQuality        *string  `json:"bonus_answer_quality"        validate:"omitempty,oneof=yes no"`
	BonusFollowUp             *string  `json:"bonus_follow_up"             validate:"omitempty,oneof=yes no"`
	ExerciseSubmitted         *string  `json:"exercise_submitted"          validate:"omitempty,oneof=yes no"`
	ExerciseTestPassing       *string  `json:"exercise_test_passing"       validate:"omitempty,oneof=yes no"`
	ExerciseGoodDocumentation *string  `json:"exercise_good_documentation" validate:"omitempty,oneof=yes no"`
	ExerciseGoodStructure     *string  `json:"exercise_good_structure"     validate:"omitempty,oneof=yes no"`
	Total                     *float64 `json:"total"`
}

// ToModel 转换为指定周的存储记录
func (e *StudentEntry) ToModel(week int) model.StudentWeek {
	return model.StudentWeek{
		Name:                      e.Name,
		Mail:                      e.Mail,
		Attendance:                e.Attendance,
		GroupID:                   e.GroupID,
		TA:                        e.TA,
		FA:                        e.FA,
		FB:                        e.FB,
		FC:                        e.FC,
		FD:                        e.FD,
		BonusAttendance:           e.BonusAttendance,
		BonusAnswerQuality:        e.BonusAnswerQuality,
		BonusFollowUp:             e.BonusFollowUp,
		ExerciseSubmitted:         e.ExerciseSubmitted,
		ExerciseTestPassing:       e.ExerciseTestPassing,
		ExerciseGoodDocumentation: e.ExerciseGoodDocumentation,
		ExerciseGoodStructure:     e.ExerciseGoodStructure,
		Total:                     e.Total,
		Week:                      week,
	}
}

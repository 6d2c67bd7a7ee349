package model

// StudentWeek 学生周记录表 — 对应 students
// (week, mail) 唯一；week = 0 为基线名单
type StudentWeek struct {
	ID                        int64    `gorm:"primaryKey;autoIncrement"                             json:"-"`
	Name                      string   `gorm:"type:text;not null"                                   json:"name"`
	GroupID                   string   `gorm:"column:group_id;type:text;not null"                   json:"group_id"`
	TA                        *string  `gorm:"column:ta;type:text"                                  json:"ta"`
	Attendance                *string  `gorm:"type:text;index:idx_students_attendance"              json:"attendance"`
	FA                        *float64 `gorm:"column:fa"                                            json:"fa"`
	FB                        *float64 `gorm:"column:fb"                                            json:"fb"`
	FC                        *float64 `gorm:"column:fc"                                            json:"fc"`
	FD                        *float64 `gorm:"column:fd"                                            json:"fd"`
	BonusAttendance           *string  `gorm:"type:text"                                            json:"bonus_attendance"`
	BonusAnswerQuality        *string  `gorm:"type:text"                                            json:"bonus_answer_quality"`
	BonusFollowUp             *string  `gorm:"type:text"                                            json:"bonus_follow_up"`
	ExerciseSubmitted         *string  `gorm:"type:text"                                            json:"exercise_submitted"`
	ExerciseTestPassing       *string  `gorm:"type:text"                                            json:"exercise_test_passing"`
	ExerciseGoodDocumentation *string  `gorm:"type:text"                                            json:"exercise_good_documentation"`
	ExerciseGoodStructure     *string  `gorm:"type:text"                                            json:"exercise_good_structure"`
	Total                     *float64 `gorm:"column:total"                                         json:"total"`
	Mail                      string   `gorm:"type:text;not null;uniqueIndex:idx_students_week_mail,priority:2" json:"mail"`
	Week                      int      `gorm:"not null;uniqueIndex:idx_students_week_mail,priority:1"           json:"week"`
}

// TableName 指定表名
func (StudentWeek) TableName() string { return "students" }

// MutableFields 返回 Upsert 命中已有行时需要覆盖的全部列
// 使用 map 以保证 nil 值也会写成 NULL（纯覆盖语义）
func (s *StudentWeek) MutableFields() map[string]interface{} {
	return map[string]interface{}{
		"name":                        s.Name,
		"attendance":                  s.Attendance,
		"group_id":                    s.GroupID,
		"ta":                          s.TA,
		"fa":                          s.FA,
		"fb":                          s.FB,
		"fc":                          s.FC,
		"fd":                          s.FD,
		"bonus_attendance":            s.BonusAttendance,
		"bonus_answer_quality":        s.BonusAnswerQuality,
		"bonus_follow_up":             s.BonusFollowUp,
		"exercise_submitted":          s.ExerciseSubmitted,
		"exercise_test_passing":       s.ExerciseTestPassing,
		"exercise_good_documentation": s.ExerciseGoodDocumentation,
		"exercise_good_structure":     s.ExerciseGoodStructure,
		"total":                       s.Total,
	}
}

// WeeklyAttendanceCount 按周统计的出勤人数
type WeeklyAttendanceCount struct {
	Week     int   `gorm:"column:week"`
	Attended int64 `gorm:"column:attended"`
}

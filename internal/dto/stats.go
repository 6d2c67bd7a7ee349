package dto

// ── 统计与助教模块 DTO ──

// TAResponse 助教信息
type TAResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StudentCountResponse 学生周记录总数
type StudentCountResponse struct {
	TotalStudents int64 `json:"total_students"`
}

// WeeklyAttendanceResponse 单周出勤人数
type WeeklyAttendanceResponse struct {
	Week     int   `json:"week"`
	Attended int64 `json:"attended"`
}

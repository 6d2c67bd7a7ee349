package model

// 出勤与各类布尔标记在库中以 "yes" / "no" 文本保存
const (
	Yes = "yes"
	No  = "no"
)

// IsPresent 仅当出勤值恰为 "yes" 时视为到场；"no"、NULL 及其他取值一律按缺勤处理
func IsPresent(attendance *string) bool {
	return attendance != nil && *attendance == Yes
}

// AttendanceRankSQL 出勤排序表达式：yes 在前，no 其次，NULL/其他最后
const AttendanceRankSQL = "CASE attendance WHEN 'yes' THEN 0 WHEN 'no' THEN 1 ELSE 2 END"

// AttendanceRank 与 AttendanceRankSQL 等价的内存排序键
func AttendanceRank(attendance *string) int {
	switch {
	case attendance == nil:
		return 2
	case *attendance == Yes:
		return 0
	case *attendance == No:
		return 1
	default:
		return 2
	}
}

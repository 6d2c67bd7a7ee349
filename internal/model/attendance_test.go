package model

import "testing"

func strPtr(s string) *string { return &s }

func TestIsPresent(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want bool
	}{
		{"yes", strPtr("yes"), true},
		{"no", strPtr("no"), false},
		{"nil", nil, false},
		{"大写 YES 视为缺勤", strPtr("YES"), false},
		{"未知取值", strPtr("maybe"), false},
	}
	for _, tc := range cases {
		if got := IsPresent(tc.in); got != tc.want {
			t.Errorf("%s: IsPresent = %v，期望 %v", tc.name, got, tc.want)
		}
	}
}

func TestAttendanceRank(t *testing.T) {
	if AttendanceRank(strPtr("yes")) >= AttendanceRank(strPtr("no")) {
		t.Error("yes 应排在 no 之前")
	}
	if AttendanceRank(strPtr("no")) >= AttendanceRank(nil) {
		t.Error("no 应排在 NULL 之前")
	}
	if AttendanceRank(strPtr("other")) != AttendanceRank(nil) {
		t.Error("未知取值与 NULL 同级")
	}
}

package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/Vayras/ta-backend/internal/model"
)

// ── 分组与助教分配策略 ──

const (
	// GroupCount 到场学生轮转的分组数
	GroupCount = 4
	// AbsentGroup 缺勤学生统一归入的哨兵分组
	AbsentGroup = "Group 5 (Absent)"
)

// GroupLabel 返回第 idx 组（从 0 开始）的名称
func GroupLabel(idx int) string {
	return fmt.Sprintf("Group %d", idx+1)
}

// ShuffleFunc 与 rand.Shuffle 签名一致，便于测试注入确定性的洗牌
type ShuffleFunc func(n int, swap func(i, j int))

// AssignmentPolicy 分组与助教分配配置
//
// RoundRobinTAs 的第 i 个助教负责 "Group i+1"；不足 4 人时缺位分组使用 UnassignedTA。
// 策略本身不持有可变状态，每次名单解析通过 FixedPass / ShuffledPass 得到独立的 rotation。
type AssignmentPolicy struct {
	RoundRobinTAs []string
	AbsentTA      string
	UnassignedTA  string
	Shuffle       ShuffleFunc
}

// FixedPass 基于上周数据推导时使用：助教顺序固定
func (p *AssignmentPolicy) FixedPass() *rotation {
	return p.newRotation(append([]string(nil), p.RoundRobinTAs...))
}

// ShuffledPass 基于基线名单推导时使用：整次解析共用一次随机排列
func (p *AssignmentPolicy) ShuffledPass() *rotation {
	tas := append([]string(nil), p.RoundRobinTAs...)
	shuffle := p.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(tas), func(i, j int) { tas[i], tas[j] = tas[j], tas[i] })
	return p.newRotation(tas)
}

func (p *AssignmentPolicy) newRotation(tas []string) *rotation {
	return &rotation{
		tas:          tas,
		absentTA:     p.AbsentTA,
		unassignedTA: p.UnassignedTA,
	}
}

// rotation 单次名单解析内的轮转状态，不可跨请求复用
type rotation struct {
	tas          []string
	next         int // 下一个到场学生的组下标 0..GroupCount-1
	absentTA     string
	unassignedTA string
}

// Assign 为一名学生分配 (group, ta)
// 只有出勤恰为 "yes" 的学生占用轮转位置；其余一律进入缺勤组且不推进计数
func (r *rotation) Assign(attendance *string) (group, ta string) {
	if !model.IsPresent(attendance) {
		return AbsentGroup, r.absentTA
	}

	idx := r.next
	r.next = (r.next + 1) % GroupCount

	ta = r.unassignedTA
	if idx < len(r.tas) {
		ta = r.tas[idx]
	}
	return GroupLabel(idx), ta
}

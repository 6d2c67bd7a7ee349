package model

// TA 助教表 — 对应 ta；初始化时写入，之后只读
type TA struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex"  json:"name"`
}

// TableName 指定表名
func (TA) TableName() string { return "ta" }

package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Student StudentRepository
	TA      TARepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{
		Student: NewStudentRepo(db, logger),
		TA:      NewTARepo(db),
	}
}

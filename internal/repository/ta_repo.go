package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vayras/ta-backend/internal/model"
)

// TARepository 助教数据访问接口
type TARepository interface {
	List(ctx context.Context) ([]model.TA, error)
	// Seed 按顺序写入助教（id 从 1 开始），已存在的 id 或姓名跳过，返回新增数量
	Seed(ctx context.Context, names []string) (int64, error)
}

type taRepo struct {
	db *gorm.DB
}

// NewTARepo 创建 TARepository 实例
func NewTARepo(db *gorm.DB) TARepository {
	return &taRepo{db: db}
}

func (r *taRepo) List(ctx context.Context) ([]model.TA, error) {
	var tas []model.TA
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&tas).Error
	return tas, err
}

func (r *taRepo) Seed(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	tas := make([]model.TA, 0, len(names))
	for i, name := range names {
		tas = append(tas, model.TA{ID: i + 1, Name: name})
	}

	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range tas {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tas[i])
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	return inserted, err
}

package repository

import (
	"context"

	"siap-spj-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LogRepository interface {
	GetAll(ctx context.Context, limit int) ([]model.LogAktivitas, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db}
}

// GetAll mengembalikan log terbaru lebih dulu. limit <= 0 berarti tanpa batas.
func (r *logRepository) GetAll(ctx context.Context, limit int) ([]model.LogAktivitas, error) {
	list := []model.LogAktivitas{}
	q := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

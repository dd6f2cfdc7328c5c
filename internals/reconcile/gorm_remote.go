package reconcile

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quadroescolar_backend/internals/constants"
)

// GormRemote é o adaptador Remote genérico sobre GORM. Basta informar as
// colunas de id e de mantenedora da tabela da entidade.
type GormRemote[T any] struct {
	DB          *gorm.DB
	IDColumn    string
	OwnerColumn string
}

func (r GormRemote[T]) ListByOwner(ctx context.Context, ownerID string) ([]T, error) {
	q := r.DB.WithContext(ctx).Model(new(T))
	if ownerID != constants.OwnerAll {
		q = q.Where(r.OwnerColumn+" = ?", ownerID)
	}
	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r GormRemote[T]) FindByID(ctx context.Context, id, ownerID string) (*T, error) {
	q := r.DB.WithContext(ctx).Where(r.IDColumn+" = ?", id)
	if ownerID != constants.OwnerAll {
		q = q.Where(r.OwnerColumn+" = ?", ownerID)
	}
	var row T
	err := q.First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r GormRemote[T]) Upsert(ctx context.Context, row *T) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: r.IDColumn}},
			UpdateAll: true,
		}).
		Create(row).Error
}

func (r GormRemote[T]) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where(r.IDColumn+" = ?", id).Delete(new(T)).Error
}

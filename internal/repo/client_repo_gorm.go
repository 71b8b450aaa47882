package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"talentdesk/internal/domain"
	"talentdesk/internal/feature/client"
)

type ClientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) *ClientRepo { return &ClientRepo{db: db} }

func (r *ClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(client.FromDomain(c)).Error
}

func (r *ClientRepo) FindByID(ctx context.Context, userID, id string) (*domain.Client, error) {
	var m client.ClientModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *ClientRepo) ListByUser(ctx context.Context, userID string, q domain.ListQuery) ([]domain.Client, error) {
	tx := r.db.WithContext(ctx).Model(&client.ClientModel{}).Where("user_id = ?", userID)
	tx = applyList(tx, q)

	var ms []client.ClientModel
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToDomain())
	}
	return out, nil
}

func (r *ClientRepo) UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&client.ClientModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

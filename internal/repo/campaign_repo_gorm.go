package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"talentdesk/internal/domain"
	"talentdesk/internal/feature/campaign"
)

type CampaignRepo struct{ db *gorm.DB }

func NewCampaignRepo(db *gorm.DB) *CampaignRepo { return &CampaignRepo{db: db} }

func (r *CampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign.FromDomain(c)).Error
}

func (r *CampaignRepo) FindByID(ctx context.Context, userID, id string) (*domain.Campaign, error) {
	var m campaign.CampaignModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *CampaignRepo) ListByUser(ctx context.Context, userID string, q domain.ListQuery) ([]domain.Campaign, error) {
	tx := r.db.WithContext(ctx).Model(&campaign.CampaignModel{}).Where("user_id = ?", userID)
	tx = applyList(tx, q)

	var ms []campaign.CampaignModel
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToDomain())
	}
	return out, nil
}

func (r *CampaignRepo) UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&campaign.CampaignModel{}).
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

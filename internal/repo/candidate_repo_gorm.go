package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"talentdesk/internal/domain"
	"talentdesk/internal/feature/candidate"
)

type CandidateRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCandidateRepo(db *gorm.DB, log *zap.Logger) *CandidateRepo {
	return &CandidateRepo{db: db, log: log}
}

func (r *CandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate.FromDomain(c)).Error
}

func (r *CandidateRepo) FindByID(ctx context.Context, userID, id string) (*domain.Candidate, error) {
	var m candidate.CandidateModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain()
}

// ListByUser skips rows whose serialized fields fail to decode; a broken
// record must not abort the rest of the collection.
func (r *CandidateRepo) ListByUser(ctx context.Context, userID string, q domain.ListQuery) ([]domain.Candidate, error) {
	tx := r.db.WithContext(ctx).Model(&candidate.CandidateModel{}).Where("user_id = ?", userID)
	tx = applyList(tx, q)

	var ms []candidate.CandidateModel
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Candidate, 0, len(ms))
	for i := range ms {
		c, err := ms[i].ToDomain()
		if err != nil {
			r.log.Warn("skipping malformed candidate row", zap.String("id", ms[i].ID), zap.Error(err))
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *CandidateRepo) UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&candidate.CandidateModel{}).
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

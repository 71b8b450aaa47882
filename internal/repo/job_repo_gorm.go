package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"talentdesk/internal/domain"
	"talentdesk/internal/feature/job"
)

type JobRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewJobRepo(db *gorm.DB, log *zap.Logger) *JobRepo {
	return &JobRepo{db: db, log: log}
}

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Create(job.FromDomain(j)).Error
}

func (r *JobRepo) FindByID(ctx context.Context, userID, id string) (*domain.Job, error) {
	var m job.JobModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain()
}

func (r *JobRepo) ListByUser(ctx context.Context, userID string, q domain.ListQuery) ([]domain.Job, error) {
	tx := r.db.WithContext(ctx).Model(&job.JobModel{}).Where("user_id = ?", userID)
	tx = applyList(tx, q)

	var ms []job.JobModel
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Job, 0, len(ms))
	for i := range ms {
		j, err := ms[i].ToDomain()
		if err != nil {
			r.log.Warn("skipping malformed job row", zap.String("id", ms[i].ID), zap.Error(err))
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (r *JobRepo) UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&job.JobModel{}).
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

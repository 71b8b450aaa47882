package repo

import (
	"errors"

	"gorm.io/gorm"

	"talentdesk/internal/domain"
	"talentdesk/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error {
	return r.db.Create(user.FromDomain(u)).Error
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var m user.UserModel
	err := r.db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var m user.UserModel
	err := r.db.First(&m, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *UserRepo) List(q string, withDeleted bool, offset, limit int) ([]domain.User, int64, error) {
	tx := r.db.Model(&user.UserModel{})
	if withDeleted {
		tx = tx.Unscoped()
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("email LIKE ? OR display_name LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []user.UserModel
	if err := tx.Offset(offset).Limit(limit).Order("created_at desc").Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.User, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToDomain())
	}
	return out, total, nil
}

func (r *UserRepo) Update(u *domain.User) error {
	return r.db.Save(user.FromDomain(u)).Error
}

func (r *UserRepo) SoftDelete(id string) error {
	return r.db.Where("id = ?", id).Delete(&user.UserModel{}).Error
}

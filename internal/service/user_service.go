package service

import (
	"talentdesk/internal/domain"
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(q string, withDeleted bool, offset, limit int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(q, withDeleted, offset, limit)
}

func (s *UserService) Ban(id string) error {
	if id == "" {
		return invalidf("missing id")
	}
	u, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	return s.repo.SoftDelete(id)
}

package service

import (
	"context"
	"strings"

	"talentdesk/internal/domain"
	"talentdesk/internal/query"
	"talentdesk/pkg/utils"
)

type ClientService struct {
	repo domain.ClientRepository
}

func NewClientService(repo domain.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func clientSearchFields(c domain.Client) []string {
	return []string{c.Name, c.Industry}
}

func (s *ClientService) List(ctx context.Context, userID string, opts ListOptions) ([]domain.Client, error) {
	opts.normalize()
	items, err := s.repo.ListByUser(ctx, userID, domain.ListQuery{
		OrderBy: &domain.Order{Field: "created_at", Desc: true},
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	visible := query.Visible(items,
		query.Search(opts.Search, clientSearchFields),
		query.Status(opts.Status, func(c domain.Client) string { return string(c.Status) }),
	)

	switch opts.Sort {
	case "", "recent":
		// store order already newest-first
	case "name":
		visible = query.SortStable(visible, func(a, b domain.Client) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	case "industry":
		visible = query.SortStable(visible, func(a, b domain.Client) bool {
			return strings.ToLower(a.Industry) < strings.ToLower(b.Industry)
		})
	default:
		return nil, invalidf("unknown sort key %q", opts.Sort)
	}
	return visible, nil
}

type CreateClientInput struct {
	Name          string `json:"name" binding:"required,max=128"`
	Industry      string `json:"industry"`
	Size          string `json:"size"`
	Location      string `json:"location"`
	Website       string `json:"website"`
	Description   string `json:"description"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
}

func (s *ClientService) Create(ctx context.Context, userID string, in CreateClientInput) (*domain.Client, error) {
	status := domain.ClientStatus(in.Status)
	if in.Status == "" {
		status = domain.ClientProspect
	}
	if !status.Valid() {
		return nil, invalidf("unknown client status %q", in.Status)
	}

	c := &domain.Client{
		ID:            utils.NewID(),
		Name:          in.Name,
		Industry:      in.Industry,
		Size:          in.Size,
		Location:      in.Location,
		Website:       in.Website,
		Description:   in.Description,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Status:        status,
		UserID:        userID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) UpdateStatus(ctx context.Context, userID, id string, status domain.ClientStatus) error {
	if !status.Valid() || status == domain.ClientPaused {
		return invalidf("unknown client status %q", status)
	}
	cur, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return ErrNotFound
	}
	return s.repo.UpdateFields(ctx, userID, id, map[string]any{"status": string(status)})
}

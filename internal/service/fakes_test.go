package service

import (
	"context"
	"errors"

	"talentdesk/internal/domain"
)

// In-memory repository fakes. They ignore ListQuery paging since the
// filter semantics under test run after the page load.

type fakeJobRepo struct {
	items   []domain.Job
	created []*domain.Job
	err     error
}

func (f *fakeJobRepo) Create(_ context.Context, j *domain.Job) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, j)
	f.items = append(f.items, *j)
	return nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, userID, id string) (*domain.Job, error) {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			j := f.items[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (f *fakeJobRepo) ListByUser(_ context.Context, userID string, _ domain.ListQuery) ([]domain.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Job
	for _, j := range f.items {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) UpdateFields(_ context.Context, userID, id string, fields map[string]any) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			if s, ok := fields["status"].(string); ok {
				f.items[i].Status = domain.JobStatus(s)
			}
			return nil
		}
	}
	return errors.New("not found")
}

type fakeCampaignRepo struct {
	items   []domain.Campaign
	created []*domain.Campaign
}

func (f *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	f.created = append(f.created, c)
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCampaignRepo) FindByID(_ context.Context, userID, id string) (*domain.Campaign, error) {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampaignRepo) ListByUser(_ context.Context, userID string, _ domain.ListQuery) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range f.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) UpdateFields(_ context.Context, userID, id string, fields map[string]any) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			if s, ok := fields["status"].(string); ok {
				f.items[i].Status = domain.CampaignStatus(s)
			}
			return nil
		}
	}
	return errors.New("not found")
}

type fakeCandidateRepo struct {
	items   []domain.Candidate
	updated map[string]map[string]any
}

func (f *fakeCandidateRepo) Create(_ context.Context, c *domain.Candidate) error {
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCandidateRepo) FindByID(_ context.Context, userID, id string) (*domain.Candidate, error) {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) ListByUser(_ context.Context, userID string, _ domain.ListQuery) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, c := range f.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) UpdateFields(_ context.Context, userID, id string, fields map[string]any) error {
	if f.updated == nil {
		f.updated = map[string]map[string]any{}
	}
	f.updated[id] = fields
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			if s, ok := fields["status"].(string); ok {
				f.items[i].Status = domain.CandidateStatus(s)
			}
			return nil
		}
	}
	return errors.New("not found")
}

type fakeClientRepo struct {
	items   []domain.Client
	created []*domain.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c *domain.Client) error {
	f.created = append(f.created, c)
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeClientRepo) FindByID(_ context.Context, userID, id string) (*domain.Client, error) {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) ListByUser(_ context.Context, userID string, _ domain.ListQuery) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range f.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) UpdateFields(_ context.Context, userID, id string, fields map[string]any) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			if s, ok := fields["status"].(string); ok {
				f.items[i].Status = domain.ClientStatus(s)
			}
			return nil
		}
	}
	return errors.New("not found")
}

// fakeGen records the last prompt and returns a canned result or error.
type fakeGen struct {
	out    string
	err    error
	prompt string
	calls  int
}

func (g *fakeGen) Generate(_ context.Context, prompt string, _ int) (string, error) {
	g.calls++
	g.prompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.out, nil
}

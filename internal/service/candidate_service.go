package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"talentdesk/internal/domain"
	"talentdesk/internal/query"
	"talentdesk/internal/record"
	"talentdesk/pkg/utils"
)

type CandidateService struct {
	repo domain.CandidateRepository
	log  *zap.Logger
}

func NewCandidateService(repo domain.CandidateRepository, log *zap.Logger) *CandidateService {
	return &CandidateService{repo: repo, log: log}
}

// candidateSearchFields is the fixed text set the candidates view searches:
// first name, last name, title, and any skill.
func candidateSearchFields(c domain.Candidate) []string {
	return append([]string{c.FirstName, c.LastName, c.Title}, c.Skills...)
}

func (s *CandidateService) List(ctx context.Context, userID string, opts ListOptions) ([]domain.Candidate, error) {
	opts.normalize()
	items, err := s.repo.ListByUser(ctx, userID, domain.ListQuery{
		OrderBy: &domain.Order{Field: "applied_date", Desc: true},
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	visible := query.Visible(items,
		query.Search(opts.Search, candidateSearchFields),
		query.Status(opts.Status, func(c domain.Candidate) string { return string(c.Status) }),
	)

	switch opts.Sort {
	case "", "recent":
		visible = query.SortStable(visible, func(a, b domain.Candidate) bool {
			return a.AppliedDate.After(b.AppliedDate)
		})
	case "score":
		visible = query.SortStable(visible, func(a, b domain.Candidate) bool {
			return a.AIScore > b.AIScore
		})
	case "match":
		visible = query.SortStable(visible, func(a, b domain.Candidate) bool {
			return a.MatchScore > b.MatchScore
		})
	case "name":
		visible = query.SortStable(visible, func(a, b domain.Candidate) bool {
			return strings.ToLower(a.FullName()) < strings.ToLower(b.FullName())
		})
	default:
		return nil, invalidf("unknown sort key %q", opts.Sort)
	}
	return visible, nil
}

type CreateCandidateInput struct {
	FirstName   string `json:"firstName" binding:"required,max=64"`
	LastName    string `json:"lastName" binding:"required,max=64"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Title       string `json:"title"`
	Experience  int    `json:"experience"`
	Skills      string `json:"skills"` // comma-separated
	Education   string `json:"education"`
	ResumeURL   string `json:"resumeUrl"`
	LinkedinURL string `json:"linkedinUrl"`
	Notes       string `json:"notes"`
	Source      string `json:"source"`
	JobID       string `json:"jobId"`
}

func (s *CandidateService) Create(ctx context.Context, userID string, in CreateCandidateInput) (*domain.Candidate, error) {
	c := &domain.Candidate{
		ID:          utils.NewID(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		Title:       in.Title,
		Experience:  in.Experience,
		Skills:      record.SplitCSV(in.Skills),
		Education:   in.Education,
		ResumeURL:   in.ResumeURL,
		LinkedinURL: in.LinkedinURL,
		Status:      domain.CandidateNew,
		Notes:       in.Notes,
		Source:      in.Source,
		AppliedDate: time.Now(),
		UserID:      userID,
		JobID:       in.JobID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStatus applies an explicit pipeline move. Candidate statuses form
// a closed enum without a fixed machine; any valid target is accepted.
func (s *CandidateService) UpdateStatus(ctx context.Context, userID, id string, status domain.CandidateStatus) error {
	if !status.Valid() {
		return invalidf("unknown candidate status %q", status)
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

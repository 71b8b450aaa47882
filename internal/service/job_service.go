package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"talentdesk/internal/ai"
	"talentdesk/internal/domain"
	"talentdesk/internal/query"
	"talentdesk/internal/record"
	"talentdesk/pkg/utils"
)

// enrichMaxTokens is the output ceiling for description enhancement.
const enrichMaxTokens = 500

type JobService struct {
	repo domain.JobRepository
	gen  ai.Generator
	log  *zap.Logger
}

func NewJobService(repo domain.JobRepository, gen ai.Generator, log *zap.Logger) *JobService {
	return &JobService{repo: repo, gen: gen, log: log}
}

func jobSearchFields(j domain.Job) []string {
	return []string{j.Title, j.Company, j.Location}
}

func (s *JobService) List(ctx context.Context, userID string, opts ListOptions) ([]domain.Job, error) {
	opts.normalize()
	items, err := s.repo.ListByUser(ctx, userID, domain.ListQuery{
		OrderBy: &domain.Order{Field: "created_at", Desc: true},
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
	if err != nil {
		return nil, err
	}
	return query.Visible(items,
		query.Search(opts.Search, jobSearchFields),
		query.Status(opts.Status, func(j domain.Job) string { return string(j.Status) }),
	), nil
}

type CreateJobInput struct {
	Title        string `json:"title" binding:"required,max=128"`
	Company      string `json:"company" binding:"required,max=128"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	SalaryMin    int    `json:"salaryMin"`
	SalaryMax    int    `json:"salaryMax"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"` // comma-separated
	Skills       string `json:"skills"`       // comma-separated
	ClientID     string `json:"clientId"`
}

// Create persists a new posting, first attempting to enhance the draft
// description. Enhancement needs both a title and a draft; a failed call
// is logged and the draft goes out unchanged.
func (s *JobService) Create(ctx context.Context, userID string, in CreateJobInput) (*domain.Job, error) {
	jobType := domain.JobType(in.Type)
	if in.Type == "" {
		jobType = domain.JobFullTime
	}
	if !jobType.Valid() {
		return nil, invalidf("unknown job type %q", in.Type)
	}

	description := in.Description
	if in.Description != "" && in.Title != "" {
		enhanced, err := s.gen.Generate(ctx, jobDescriptionPrompt(in.Title, in.Description), enrichMaxTokens)
		if err != nil {
			s.log.Info("description enhancement failed, keeping draft", zap.Error(err))
		} else {
			description = enhanced
		}
	}

	j := &domain.Job{
		ID:       utils.NewID(),
		Title:    in.Title,
		Company:  in.Company,
		Location: in.Location,
		Type:     jobType,
		Salary: domain.Salary{
			Min:      in.SalaryMin,
			Max:      in.SalaryMax,
			Currency: "USD",
		},
		Description:  description,
		Requirements: record.SplitCSV(in.Requirements),
		Skills:       record.SplitCSV(in.Skills),
		Status:       domain.JobActive,
		Applications: 0,
		Views:        0,
		ClientID:     in.ClientID,
		UserID:       userID,
		PostedDate:   time.Now(),
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// UpdateStatus moves a posting through its lifecycle. The local view only
// changes after the store confirms, so a failed update leaves state as-is.
func (s *JobService) UpdateStatus(ctx context.Context, userID, id string, status domain.JobStatus) (*domain.Job, error) {
	if !status.Valid() {
		return nil, invalidf("unknown job status %q", status)
	}
	cur, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrNotFound
	}
	if !cur.Status.CanTransition(status) {
		return nil, &InvalidTransitionError{From: string(cur.Status), To: string(status)}
	}
	if err := s.repo.UpdateFields(ctx, userID, id, map[string]any{"status": string(status)}); err != nil {
		return nil, err
	}
	cur.Status = status
	return cur, nil
}

func jobDescriptionPrompt(title, draft string) string {
	return fmt.Sprintf(`Enhance this job description for a %s position. Make it professional, engaging, and comprehensive while keeping the original intent:

%s

Include sections for:
- Role overview
- Key responsibilities
- Required qualifications
- Preferred qualifications
- What we offer

Keep it concise but compelling.`, title, draft)
}

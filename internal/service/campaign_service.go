package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"talentdesk/internal/ai"
	"talentdesk/internal/domain"
	"talentdesk/internal/query"
	"talentdesk/pkg/utils"
)

type CampaignService struct {
	repo domain.CampaignRepository
	gen  ai.Generator
	log  *zap.Logger
}

func NewCampaignService(repo domain.CampaignRepository, gen ai.Generator, log *zap.Logger) *CampaignService {
	return &CampaignService{repo: repo, gen: gen, log: log}
}

func campaignSearchFields(c domain.Campaign) []string {
	return []string{c.Name, c.Subject}
}

func (s *CampaignService) List(ctx context.Context, userID string, opts ListOptions) ([]domain.Campaign, error) {
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
		query.Search(opts.Search, campaignSearchFields),
		query.Status(opts.Status, func(c domain.Campaign) string { return string(c.Status) }),
	), nil
}

// GenerateContent drafts an email template for the composer from the
// subject and campaign type. This one is an explicit user action, so a
// failure surfaces instead of degrading.
func (s *CampaignService) GenerateContent(ctx context.Context, subject string, ctype domain.CampaignType) (string, error) {
	if subject == "" {
		return "", invalidf("subject required for content generation")
	}
	if !ctype.Valid() {
		return "", invalidf("unknown campaign type %q", ctype)
	}
	prompt := fmt.Sprintf("Generate a professional email template for a recruitment %s campaign with the subject %q. "+
		"The email should be personalized, engaging, and appropriate for reaching out to potential candidates. "+
		"Include placeholders for personalization like {{candidate_name}}, {{position}}, and {{company}}.", ctype, subject)
	return s.gen.Generate(ctx, prompt, enrichMaxTokens)
}

type CreateCampaignInput struct {
	Name              string `json:"name" binding:"required,max=128"`
	Subject           string `json:"subject" binding:"required,max=255"`
	Content           string `json:"content"`
	Type              string `json:"type"`
	TargetAudience    string `json:"targetAudience"`
	ScheduledDate     string `json:"scheduledDate"` // RFC 3339, optional
	AIPersonalization bool   `json:"aiPersonalization"`
}

// Create persists a campaign draft; supplying a schedule date creates it
// as scheduled instead. Performance counters start at zero and are only
// ever advanced by the sender.
func (s *CampaignService) Create(ctx context.Context, userID string, in CreateCampaignInput) (*domain.Campaign, error) {
	ctype := domain.CampaignType(in.Type)
	if in.Type == "" {
		ctype = domain.CampaignOutreach
	}
	if !ctype.Valid() {
		return nil, invalidf("unknown campaign type %q", in.Type)
	}

	status := domain.CampaignDraft
	var scheduled *time.Time
	if in.ScheduledDate != "" {
		t, err := time.Parse(time.RFC3339, in.ScheduledDate)
		if err != nil {
			return nil, invalidf("bad scheduledDate %q", in.ScheduledDate)
		}
		scheduled = &t
		status = domain.CampaignScheduled
	}

	c := &domain.Campaign{
		ID:                utils.NewID(),
		Name:              in.Name,
		Subject:           in.Subject,
		Content:           in.Content,
		Type:              ctype,
		Status:            status,
		TargetAudience:    in.TargetAudience,
		ScheduledDate:     scheduled,
		AIPersonalization: in.AIPersonalization,
		UserID:            userID,
		SentCount:         0,
		OpenRate:          0,
		ClickRate:         0,
		ReplyRate:         0,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) UpdateStatus(ctx context.Context, userID, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, invalidf("unknown campaign status %q", status)
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

package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"talentdesk/internal/core/cache"
	"talentdesk/internal/domain"
)

const (
	analyticsTTL       = time.Minute
	analyticsLoadLimit = 1000
)

// AnalyticsService aggregates the owner's collections into the dashboard
// summary. The three collections load concurrently and the result is
// cached briefly; a failure of any load fails the whole summary rather
// than serving partial numbers.
type AnalyticsService struct {
	candidates domain.CandidateRepository
	jobs       domain.JobRepository
	clients    domain.ClientRepository
	cache      *cache.Cache
}

func NewAnalyticsService(
	candidates domain.CandidateRepository,
	jobs domain.JobRepository,
	clients domain.ClientRepository,
	c *cache.Cache,
) *AnalyticsService {
	return &AnalyticsService{candidates: candidates, jobs: jobs, clients: clients, cache: c}
}

func (s *AnalyticsService) Summary(ctx context.Context, userID string) (*domain.Analytics, error) {
	if s.cache == nil {
		return s.load(ctx, userID)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, "analytics:"+userID, analyticsTTL,
		func(ctx context.Context) (*domain.Analytics, error) {
			return s.load(ctx, userID)
		})
}

// Refresh drops the cached summary and recomputes it.
func (s *AnalyticsService) Refresh(ctx context.Context, userID string) (*domain.Analytics, error) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, "analytics:"+userID)
	}
	return s.Summary(ctx, userID)
}

func (s *AnalyticsService) load(ctx context.Context, userID string) (*domain.Analytics, error) {
	var (
		candidates []domain.Candidate
		jobs       []domain.Job
		clients    []domain.Client
	)
	q := domain.ListQuery{Limit: analyticsLoadLimit}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		candidates, err = s.candidates.ListByUser(gctx, userID, q)
		return
	})
	g.Go(func() (err error) {
		jobs, err = s.jobs.ListByUser(gctx, userID, q)
		return
	})
	g.Go(func() (err error) {
		clients, err = s.clients.ListByUser(gctx, userID, q)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &domain.Analytics{
		TotalCandidates: len(candidates),
		TotalJobs:       len(jobs),
		TotalClients:    len(clients),
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	hired := 0
	var fillDays float64
	for _, c := range candidates {
		switch c.Status {
		case domain.CandidateHired:
			hired++
			if c.UpdatedAt.After(c.AppliedDate) {
				fillDays += c.UpdatedAt.Sub(c.AppliedDate).Hours() / 24
			}
			if c.UpdatedAt.After(monthStart) {
				out.MonthlyHires++
			}
		case domain.CandidateRejected:
			// out of the pipeline either way
		default:
			out.ActiveCandidates++
		}
	}
	if hired > 0 {
		out.AvgTimeToFill = fillDays / float64(hired)
	}
	if len(candidates) > 0 {
		out.ConversionRate = float64(hired) / float64(len(candidates)) * 100
	}

	for _, j := range jobs {
		if j.Status == domain.JobActive {
			out.ActiveJobs++
		}
	}
	return out, nil
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"talentdesk/internal/domain"
	"talentdesk/internal/record"
	"talentdesk/pkg/utils"
)

// ImportService ingests raw records exported from the hosted backend this
// system replaced. Each record is normalized and validated on its own: a
// malformed record is skipped and reported, never fatal to the batch.
type ImportService struct {
	jobs       domain.JobRepository
	campaigns  domain.CampaignRepository
	candidates domain.CandidateRepository
	log        *zap.Logger
}

func NewImportService(
	jobs domain.JobRepository,
	campaigns domain.CampaignRepository,
	candidates domain.CandidateRepository,
	log *zap.Logger,
) *ImportService {
	return &ImportService{jobs: jobs, campaigns: campaigns, candidates: candidates, log: log}
}

type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func (r *ImportReport) skip(i int, err error) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("record %d: %v", i, err))
}

func (s *ImportService) ImportJobs(ctx context.Context, userID string, raws []record.Raw) *ImportReport {
	rep := &ImportReport{}
	for i, raw := range raws {
		canon, err := record.NormalizeJob(raw)
		if err != nil {
			rep.skip(i, err)
			continue
		}
		var j domain.Job
		if err := record.Decode(canon, &j); err != nil {
			rep.skip(i, err)
			continue
		}
		if j.Title == "" {
			rep.skip(i, fmt.Errorf("missing title"))
			continue
		}
		if !j.Status.Valid() {
			rep.skip(i, fmt.Errorf("unknown status %q", j.Status))
			continue
		}
		if !j.Type.Valid() {
			j.Type = domain.JobFullTime
		}
		if j.ID == "" {
			j.ID = utils.NewID()
		}
		j.UserID = userID
		if err := s.jobs.Create(ctx, &j); err != nil {
			rep.skip(i, err)
			continue
		}
		rep.Imported++
	}
	s.log.Info("job import finished",
		zap.Int("imported", rep.Imported), zap.Int("skipped", rep.Skipped))
	return rep
}

func (s *ImportService) ImportCandidates(ctx context.Context, userID string, raws []record.Raw) *ImportReport {
	rep := &ImportReport{}
	for i, raw := range raws {
		canon, err := record.NormalizeCandidate(raw)
		if err != nil {
			rep.skip(i, err)
			continue
		}
		var c domain.Candidate
		if err := record.Decode(canon, &c); err != nil {
			rep.skip(i, err)
			continue
		}
		if c.FirstName == "" && c.LastName == "" {
			rep.skip(i, fmt.Errorf("missing name"))
			continue
		}
		if c.Status == "" {
			c.Status = domain.CandidateNew
		}
		if !c.Status.Valid() {
			rep.skip(i, fmt.Errorf("unknown status %q", c.Status))
			continue
		}
		if c.ID == "" {
			c.ID = utils.NewID()
		}
		c.UserID = userID
		if err := s.candidates.Create(ctx, &c); err != nil {
			rep.skip(i, err)
			continue
		}
		rep.Imported++
	}
	s.log.Info("candidate import finished",
		zap.Int("imported", rep.Imported), zap.Int("skipped", rep.Skipped))
	return rep
}

func (s *ImportService) ImportCampaigns(ctx context.Context, userID string, raws []record.Raw) *ImportReport {
	rep := &ImportReport{}
	for i, raw := range raws {
		canon, err := record.NormalizeCampaign(raw)
		if err != nil {
			rep.skip(i, err)
			continue
		}
		var c domain.Campaign
		if err := record.Decode(canon, &c); err != nil {
			rep.skip(i, err)
			continue
		}
		if c.Name == "" {
			rep.skip(i, fmt.Errorf("missing name"))
			continue
		}
		if !c.Status.Valid() {
			rep.skip(i, fmt.Errorf("unknown status %q", c.Status))
			continue
		}
		if !c.Type.Valid() {
			c.Type = domain.CampaignOutreach
		}
		if c.ID == "" {
			c.ID = utils.NewID()
		}
		c.UserID = userID
		if err := s.campaigns.Create(ctx, &c); err != nil {
			rep.skip(i, err)
			continue
		}
		rep.Imported++
	}
	s.log.Info("campaign import finished",
		zap.Int("imported", rep.Imported), zap.Int("skipped", rep.Skipped))
	return rep
}

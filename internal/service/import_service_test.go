package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"talentdesk/internal/domain"
	"talentdesk/internal/record"
)

func TestImportJobs(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := NewImportService(repo, &fakeCampaignRepo{}, &fakeCandidateRepo{}, zap.NewNop())

	rep := svc.ImportJobs(context.Background(), "u1", []record.Raw{
		{
			"id":           "legacy-1",
			"title":        "Backend Engineer",
			"status":       "active",
			"requirements": `["Go","SQL"]`,
			"salaryMin":    float64(100000),
			"createdAt":    "2025-01-10T00:00:00Z",
		},
		{"title": "No Status Given", "status": "archived"}, // unknown status
		{"status": "draft"},                          // missing title
		{"title": "Broken", "requirements": `["Go"`}, // malformed list text
	})

	if rep.Imported != 1 || rep.Skipped != 3 {
		t.Fatalf("report: %+v", rep)
	}
	if len(rep.Errors) != 3 {
		t.Fatalf("errors: %v", rep.Errors)
	}
	if len(repo.created) != 1 {
		t.Fatalf("persisted: got %d", len(repo.created))
	}

	j := repo.created[0]
	if j.ID != "legacy-1" {
		t.Fatalf("legacy id must survive: got %q", j.ID)
	}
	if j.UserID != "u1" {
		t.Fatalf("owner must be forced to the importer: got %q", j.UserID)
	}
	if j.Type != domain.JobFullTime {
		t.Fatalf("missing type must default: got %q", j.Type)
	}
	if j.Salary.Currency != "USD" || j.Salary.Min != 100000 {
		t.Fatalf("salary block: got %+v", j.Salary)
	}
	if len(j.Requirements) != 2 {
		t.Fatalf("requirements: got %v", j.Requirements)
	}
}

func TestImportCandidates(t *testing.T) {
	repo := &fakeCandidateRepo{}
	svc := NewImportService(&fakeJobRepo{}, &fakeCampaignRepo{}, repo, zap.NewNop())

	rep := svc.ImportCandidates(context.Background(), "u1", []record.Raw{
		{
			"firstName": "Sarah",
			"lastName":  "Johnson",
			"skills":    `["React","TypeScript"]`,
			"createdAt": "2025-03-01T00:00:00Z",
		},
		{"firstName": "Mike", "status": "ghosted"}, // unknown status
		{"title": "Nameless"},                      // missing name
		{"firstName": "Ana", "skills": `["Go"`},    // malformed list text
	})

	if rep.Imported != 1 || rep.Skipped != 3 {
		t.Fatalf("report: %+v", rep)
	}
	if len(repo.items) != 1 {
		t.Fatalf("persisted: got %d", len(repo.items))
	}

	c := repo.items[0]
	if c.UserID != "u1" {
		t.Fatalf("owner must be forced to the importer: got %q", c.UserID)
	}
	if c.Status != domain.CandidateNew {
		t.Fatalf("missing status must default to new: got %q", c.Status)
	}
	if c.ID == "" {
		t.Fatal("id must be assigned when the export has none")
	}
	if len(c.Skills) != 2 {
		t.Fatalf("skills: got %v", c.Skills)
	}
	if c.AppliedDate.IsZero() {
		t.Fatal("appliedDate must come from createdAt")
	}
}

func TestImportCampaignsFoldsLegacyTypes(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := NewImportService(&fakeJobRepo{}, repo, &fakeCandidateRepo{}, zap.NewNop())

	rep := svc.ImportCampaigns(context.Background(), "u1", []record.Raw{
		{
			"name":              "Q1 Email Blast",
			"status":            "draft",
			"type":              "email",
			"createdDate":       "2025-01-05T00:00:00Z",
			"responseRate":      float64(4.2),
			"aiPersonalization": float64(1),
		},
		{"status": "draft"}, // missing name
	})

	if rep.Imported != 1 || rep.Skipped != 1 {
		t.Fatalf("report: %+v", rep)
	}
	c := repo.created[0]
	if c.Type != domain.CampaignOutreach {
		t.Fatalf("legacy channel type must fold to outreach: got %q", c.Type)
	}
	if c.ReplyRate != 4.2 {
		t.Fatalf("replyRate: got %v", c.ReplyRate)
	}
	if !c.AIPersonalization {
		t.Fatal("aiPersonalization flag lost")
	}
	if c.ID == "" {
		t.Fatal("id must be assigned when the export has none")
	}
}

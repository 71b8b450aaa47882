package domain

import (
	"context"
	"time"
)

type CandidateStatus string

const (
	CandidateNew       CandidateStatus = "new"
	CandidateScreening CandidateStatus = "screening"
	CandidateInterview CandidateStatus = "interview"
	CandidateOffer     CandidateStatus = "offer"
	CandidateHired     CandidateStatus = "hired"
	CandidateRejected  CandidateStatus = "rejected"
)

func (s CandidateStatus) Valid() bool {
	_, ok := candidateBadges[s]
	return ok
}

var candidateBadges = map[CandidateStatus]Badge{
	CandidateNew:       {Tone: "blue"},
	CandidateScreening: {Tone: "yellow"},
	CandidateInterview: {Tone: "green"},
	CandidateOffer:     {Tone: "purple"},
	CandidateHired:     {Tone: "emerald"},
	CandidateRejected:  {Tone: "red"},
}

func (s CandidateStatus) Badge() Badge {
	if b, ok := candidateBadges[s]; ok {
		return b
	}
	return Badge{Tone: "gray"}
}

type Candidate struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Location    string          `json:"location"`
	Title       string          `json:"title"`
	Experience  int             `json:"experience"`
	Skills      []string        `json:"skills"`
	Education   string          `json:"education"`
	ResumeURL   string          `json:"resumeUrl,omitempty"`
	LinkedinURL string          `json:"linkedinUrl,omitempty"`
	Status      CandidateStatus `json:"status"`
	AIScore     int             `json:"aiScore"`
	MatchScore  int             `json:"matchScore,omitempty"`
	Notes       string          `json:"notes"`
	Source      string          `json:"source"`
	AppliedDate time.Time       `json:"appliedDate"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	UserID      string          `json:"userId"`
	JobID       string          `json:"jobId,omitempty"`
}

func (c Candidate) FullName() string { return c.FirstName + " " + c.LastName }

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	FindByID(ctx context.Context, userID, id string) (*Candidate, error)
	ListByUser(ctx context.Context, userID string, q ListQuery) ([]Candidate, error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error
}

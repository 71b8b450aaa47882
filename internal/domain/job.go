package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobDraft  JobStatus = "draft"
	JobActive JobStatus = "active"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	_, ok := jobBadges[s]
	return ok
}

var jobBadges = map[JobStatus]Badge{
	JobDraft:  {Tone: "blue"},
	JobActive: {Tone: "green"},
	JobPaused: {Tone: "yellow"},
	JobClosed: {Tone: "gray"},
}

func (s JobStatus) Badge() Badge {
	if b, ok := jobBadges[s]; ok {
		return b
	}
	return Badge{Tone: "gray"}
}

// jobTransitions is the posting lifecycle: draft and paused can go live,
// live postings can pause or close, closed is terminal.
var jobTransitions = map[JobStatus][]JobStatus{
	JobDraft:  {JobActive},
	JobActive: {JobPaused, JobClosed},
	JobPaused: {JobActive},
	JobClosed: nil,
}

func (s JobStatus) CanTransition(to JobStatus) bool {
	for _, t := range jobTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

type JobType string

const (
	JobFullTime JobType = "full-time"
	JobPartTime JobType = "part-time"
	JobContract JobType = "contract"
	JobRemote   JobType = "remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobRemote:
		return true
	}
	return false
}

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         JobType   `json:"type"`
	Salary       Salary    `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Skills       []string  `json:"skills"`
	Status       JobStatus `json:"status"`
	Applications int       `json:"applications"`
	Views        int       `json:"views"`
	ClientID     string    `json:"clientId,omitempty"`
	UserID       string    `json:"userId"`
	PostedDate   time.Time `json:"postedDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

type JobRepository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, userID, id string) (*Job, error)
	ListByUser(ctx context.Context, userID string, q ListQuery) ([]Job, error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error
}

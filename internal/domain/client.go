package domain

import (
	"context"
	"time"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientProspect ClientStatus = "prospect"
	// ClientPaused appears in one legacy export variant; accepted on read,
	// never offered as a transition target.
	ClientPaused ClientStatus = "paused"
)

func (s ClientStatus) Valid() bool {
	_, ok := clientBadges[s]
	return ok
}

var clientBadges = map[ClientStatus]Badge{
	ClientActive:   {Tone: "green"},
	ClientInactive: {Tone: "gray"},
	ClientProspect: {Tone: "blue"},
	ClientPaused:   {Tone: "yellow"},
}

func (s ClientStatus) Badge() Badge {
	if b, ok := clientBadges[s]; ok {
		return b
	}
	return Badge{Tone: "gray"}
}

// Client is a company record the recruiter places candidates with.
type Client struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Industry        string       `json:"industry"`
	Size            string       `json:"size,omitempty"`
	Location        string       `json:"location"`
	Website         string       `json:"website,omitempty"`
	Description     string       `json:"description,omitempty"`
	ContactPerson   string       `json:"contactPerson"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Status          ClientStatus `json:"status"`
	ActiveJobs      int          `json:"activeJobs"`
	TotalPlacements int          `json:"totalPlacements"`
	UserID          string       `json:"userId"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type ClientRepository interface {
	Create(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, userID, id string) (*Client, error)
	ListByUser(ctx context.Context, userID string, q ListQuery) ([]Client, error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error
}

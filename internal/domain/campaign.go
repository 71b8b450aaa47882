package domain

import (
	"context"
	"time"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Valid() bool {
	_, ok := campaignBadges[s]
	return ok
}

var campaignBadges = map[CampaignStatus]Badge{
	CampaignDraft:     {Tone: "gray"},
	CampaignScheduled: {Tone: "blue"},
	CampaignActive:    {Tone: "green"},
	CampaignPaused:    {Tone: "yellow"},
	CampaignCompleted: {Tone: "gray"},
}

func (s CampaignStatus) Badge() Badge {
	if b, ok := campaignBadges[s]; ok {
		return b
	}
	return Badge{Tone: "gray"}
}

// campaignTransitions: drafts launch directly or via schedule, running
// campaigns can pause and resume. Completion is driven by the sender, not
// by the transition endpoint.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:     {CampaignScheduled, CampaignActive},
	CampaignScheduled: {CampaignActive},
	CampaignActive:    {CampaignPaused},
	CampaignPaused:    {CampaignActive},
	CampaignCompleted: nil,
}

func (s CampaignStatus) CanTransition(to CampaignStatus) bool {
	for _, t := range campaignTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

type CampaignType string

const (
	CampaignOutreach  CampaignType = "outreach"
	CampaignFollowUp  CampaignType = "follow-up"
	CampaignNurture   CampaignType = "nurture"
	CampaignInterview CampaignType = "interview"
)

func (t CampaignType) Valid() bool {
	switch t {
	case CampaignOutreach, CampaignFollowUp, CampaignNurture, CampaignInterview:
		return true
	}
	return false
}

// Campaign content may embed {{candidate_name}}, {{position}} and
// {{company}} personalization tokens.
type Campaign struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Subject           string         `json:"subject"`
	Content           string         `json:"content"`
	Type              CampaignType   `json:"type"`
	Status            CampaignStatus `json:"status"`
	TargetAudience    string         `json:"targetAudience"`
	ScheduledDate     *time.Time     `json:"scheduledDate,omitempty"`
	AIPersonalization bool           `json:"aiPersonalization"`
	UserID            string         `json:"userId"`
	CreatedAt         time.Time      `json:"createdAt"`
	SentCount         int            `json:"sentCount"`
	OpenRate          float64        `json:"openRate"`
	ClickRate         float64        `json:"clickRate"`
	ReplyRate         float64        `json:"replyRate"`
}

type CampaignRepository interface {
	Create(ctx context.Context, c *Campaign) error
	FindByID(ctx context.Context, userID, id string) (*Campaign, error)
	ListByUser(ctx context.Context, userID string, q ListQuery) ([]Campaign, error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error
}

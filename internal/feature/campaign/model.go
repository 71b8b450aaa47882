package campaign

import (
	"time"

	"talentdesk/internal/domain"
)

// CampaignModel keeps ai_personalization as a 0/1 integer, the flag shape
// the legacy exports use; the read path coerces nonzero to true.
type CampaignModel struct {
	ID                string `gorm:"primaryKey;type:varchar(32)"`
	Name              string `gorm:"size:128;not null"`
	Subject           string `gorm:"size:255;not null"`
	Content           string `gorm:"type:text"`
	Type              string `gorm:"size:16;not null"`
	Status            string `gorm:"size:16;not null;index"`
	TargetAudience    string `gorm:"size:64"`
	ScheduledDate     *time.Time
	AIPersonalization int    `gorm:"column:ai_personalization"`
	UserID            string `gorm:"size:32;not null;index"`
	SentCount         int
	OpenRate          float64
	ClickRate         float64
	ReplyRate         float64

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CampaignModel) TableName() string { return "campaigns" }

func (m *CampaignModel) ToDomain() *domain.Campaign {
	return &domain.Campaign{
		ID:                m.ID,
		Name:              m.Name,
		Subject:           m.Subject,
		Content:           m.Content,
		Type:              domain.CampaignType(m.Type),
		Status:            domain.CampaignStatus(m.Status),
		TargetAudience:    m.TargetAudience,
		ScheduledDate:     m.ScheduledDate,
		AIPersonalization: m.AIPersonalization != 0,
		UserID:            m.UserID,
		CreatedAt:         m.CreatedAt,
		SentCount:         m.SentCount,
		OpenRate:          m.OpenRate,
		ClickRate:         m.ClickRate,
		ReplyRate:         m.ReplyRate,
	}
}

func FromDomain(c *domain.Campaign) *CampaignModel {
	flag := 0
	if c.AIPersonalization {
		flag = 1
	}
	return &CampaignModel{
		ID:                c.ID,
		Name:              c.Name,
		Subject:           c.Subject,
		Content:           c.Content,
		Type:              string(c.Type),
		Status:            string(c.Status),
		TargetAudience:    c.TargetAudience,
		ScheduledDate:     c.ScheduledDate,
		AIPersonalization: flag,
		UserID:            c.UserID,
		SentCount:         c.SentCount,
		OpenRate:          c.OpenRate,
		ClickRate:         c.ClickRate,
		ReplyRate:         c.ReplyRate,
	}
}

package candidate

import (
	"time"

	"talentdesk/internal/domain"
	"talentdesk/internal/record"
)

// CandidateModel keeps the skills list as JSON text, the column shape the
// legacy exports use.
type CandidateModel struct {
	ID          string `gorm:"primaryKey;type:varchar(32)"`
	FirstName   string `gorm:"size:64;not null"`
	LastName    string `gorm:"size:64;not null"`
	Email       string `gorm:"size:255;index"`
	Phone       string `gorm:"size:32"`
	Location    string `gorm:"size:128"`
	Title       string `gorm:"size:128"`
	Experience  int
	Skills      string `gorm:"type:text"`
	Education   string `gorm:"size:255"`
	ResumeURL   string `gorm:"size:255"`
	LinkedinURL string `gorm:"size:255"`
	Status      string `gorm:"size:16;not null;index"`
	AIScore     int    `gorm:"column:ai_score"`
	MatchScore  int
	Notes       string `gorm:"type:text"`
	Source      string `gorm:"size:64"`
	AppliedDate time.Time
	UserID      string `gorm:"size:32;not null;index"`
	JobID       string `gorm:"size:32;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CandidateModel) TableName() string { return "candidates" }

func (m *CandidateModel) ToDomain() (*domain.Candidate, error) {
	skills, err := record.StringList(m.Skills)
	if err != nil {
		return nil, err
	}
	applied := m.AppliedDate
	if applied.IsZero() {
		applied = m.CreatedAt
	}
	return &domain.Candidate{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		Location:    m.Location,
		Title:       m.Title,
		Experience:  m.Experience,
		Skills:      skills,
		Education:   m.Education,
		ResumeURL:   m.ResumeURL,
		LinkedinURL: m.LinkedinURL,
		Status:      domain.CandidateStatus(m.Status),
		AIScore:     m.AIScore,
		MatchScore:  m.MatchScore,
		Notes:       m.Notes,
		Source:      m.Source,
		AppliedDate: applied,
		UpdatedAt:   m.UpdatedAt,
		UserID:      m.UserID,
		JobID:       m.JobID,
	}, nil
}

func FromDomain(c *domain.Candidate) *CandidateModel {
	return &CandidateModel{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Location:    c.Location,
		Title:       c.Title,
		Experience:  c.Experience,
		Skills:      record.EncodeList(c.Skills),
		Education:   c.Education,
		ResumeURL:   c.ResumeURL,
		LinkedinURL: c.LinkedinURL,
		Status:      string(c.Status),
		AIScore:     c.AIScore,
		MatchScore:  c.MatchScore,
		Notes:       c.Notes,
		Source:      c.Source,
		AppliedDate: c.AppliedDate,
		UserID:      c.UserID,
		JobID:       c.JobID,
	}
}

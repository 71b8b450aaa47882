package job

import (
	"time"

	"talentdesk/internal/domain"
	"talentdesk/internal/record"
)

type JobModel struct {
	ID             string `gorm:"primaryKey;type:varchar(32)"`
	Title          string `gorm:"size:128;not null"`
	Company        string `gorm:"size:128;not null"`
	Location       string `gorm:"size:128"`
	Type           string `gorm:"size:16;not null"`
	SalaryMin      int
	SalaryMax      int
	SalaryCurrency string `gorm:"size:8"`
	Description    string `gorm:"type:text"`
	Requirements   string `gorm:"type:text"`
	Skills         string `gorm:"type:text"`
	Status         string `gorm:"size:16;not null;index"`
	Applications   int
	Views          int
	ClientID       string `gorm:"size:32;index"`
	UserID         string `gorm:"size:32;not null;index"`
	PostedDate     time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (JobModel) TableName() string { return "jobs" }

func (m *JobModel) ToDomain() (*domain.Job, error) {
	reqs, err := record.StringList(m.Requirements)
	if err != nil {
		return nil, err
	}
	skills, err := record.StringList(m.Skills)
	if err != nil {
		return nil, err
	}
	posted := m.PostedDate
	if posted.IsZero() {
		posted = m.CreatedAt
	}
	cur := m.SalaryCurrency
	if cur == "" {
		cur = "USD"
	}
	return &domain.Job{
		ID:       m.ID,
		Title:    m.Title,
		Company:  m.Company,
		Location: m.Location,
		Type:     domain.JobType(m.Type),
		Salary: domain.Salary{
			Min:      m.SalaryMin,
			Max:      m.SalaryMax,
			Currency: cur,
		},
		Description:  m.Description,
		Requirements: reqs,
		Skills:       skills,
		Status:       domain.JobStatus(m.Status),
		Applications: m.Applications,
		Views:        m.Views,
		ClientID:     m.ClientID,
		UserID:       m.UserID,
		PostedDate:   posted,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func FromDomain(j *domain.Job) *JobModel {
	return &JobModel{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		Type:           string(j.Type),
		SalaryMin:      j.Salary.Min,
		SalaryMax:      j.Salary.Max,
		SalaryCurrency: j.Salary.Currency,
		Description:    j.Description,
		Requirements:   record.EncodeList(j.Requirements),
		Skills:         record.EncodeList(j.Skills),
		Status:         string(j.Status),
		Applications:   j.Applications,
		Views:          j.Views,
		ClientID:       j.ClientID,
		UserID:         j.UserID,
		PostedDate:     j.PostedDate,
	}
}

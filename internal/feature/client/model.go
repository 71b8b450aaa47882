package client

import (
	"time"

	"talentdesk/internal/domain"
)

type ClientModel struct {
	ID              string `gorm:"primaryKey;type:varchar(32)"`
	Name            string `gorm:"size:128;not null"`
	Industry        string `gorm:"size:64"`
	Size            string `gorm:"size:32"`
	Location        string `gorm:"size:128"`
	Website         string `gorm:"size:255"`
	Description     string `gorm:"type:text"`
	ContactPerson   string `gorm:"size:64"`
	Email           string `gorm:"size:255"`
	Phone           string `gorm:"size:32"`
	Status          string `gorm:"size:16;not null;index"`
	ActiveJobs      int
	TotalPlacements int
	UserID          string `gorm:"size:32;not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ClientModel) TableName() string { return "clients" }

func (m *ClientModel) ToDomain() *domain.Client {
	return &domain.Client{
		ID:              m.ID,
		Name:            m.Name,
		Industry:        m.Industry,
		Size:            m.Size,
		Location:        m.Location,
		Website:         m.Website,
		Description:     m.Description,
		ContactPerson:   m.ContactPerson,
		Email:           m.Email,
		Phone:           m.Phone,
		Status:          domain.ClientStatus(m.Status),
		ActiveJobs:      m.ActiveJobs,
		TotalPlacements: m.TotalPlacements,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromDomain(c *domain.Client) *ClientModel {
	return &ClientModel{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		Size:            c.Size,
		Location:        c.Location,
		Website:         c.Website,
		Description:     c.Description,
		ContactPerson:   c.ContactPerson,
		Email:           c.Email,
		Phone:           c.Phone,
		Status:          string(c.Status),
		ActiveJobs:      c.ActiveJobs,
		TotalPlacements: c.TotalPlacements,
		UserID:          c.UserID,
	}
}

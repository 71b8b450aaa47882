package service

import (
	"context"
	"errors"
	"testing"

	"talentdesk/internal/domain"
)

func TestClientCreateDefaultsToProspect(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewClientService(repo)

	c, err := svc.Create(context.Background(), "u1", CreateClientInput{Name: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Status != domain.ClientProspect {
		t.Fatalf("status default: got %q", c.Status)
	}
	if c.UserID != "u1" {
		t.Fatalf("owner: got %q", c.UserID)
	}
}

func TestClientListSortByName(t *testing.T) {
	repo := &fakeClientRepo{items: []domain.Client{
		{ID: "a", UserID: "u1", Name: "zeta", Industry: "Fintech", Status: domain.ClientActive},
		{ID: "b", UserID: "u1", Name: "Alpha", Industry: "Health", Status: domain.ClientProspect},
	}}
	svc := NewClientService(repo)

	got, err := svc.List(context.Background(), "u1", ListOptions{Sort: "name"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Alpha" {
		t.Fatalf("case-insensitive name sort: got %v", got)
	}

	if _, err := svc.List(context.Background(), "u1", ListOptions{Sort: "revenue"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown sort key: expected validation error, got %v", err)
	}
}

func TestClientUpdateStatusRejectsPaused(t *testing.T) {
	repo := &fakeClientRepo{items: []domain.Client{
		{ID: "a", UserID: "u1", Name: "Acme", Status: domain.ClientActive},
	}}
	svc := NewClientService(repo)
	ctx := context.Background()

	// paused is a legacy read-side value, not a target
	if err := svc.UpdateStatus(ctx, "u1", "a", domain.ClientPaused); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.UpdateStatus(ctx, "u1", "a", domain.ClientInactive); err != nil {
		t.Fatal(err)
	}
	if repo.items[0].Status != domain.ClientInactive {
		t.Fatalf("status not persisted: %q", repo.items[0].Status)
	}
}

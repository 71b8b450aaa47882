package auth

import (
	"testing"
	"time"
)

func TestIssueParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "talentdesk", TTL: time.Hour}

	token, err := j.Issue("u1", "recruiter")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := j.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UID != "u1" || claims.Role != "recruiter" {
		t.Fatalf("claims: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := &JWTer{Secret: []byte("a"), Issuer: "talentdesk", TTL: time.Hour}
	verifier := &JWTer{Secret: []byte("b"), Issuer: "talentdesk", TTL: time.Hour}

	token, err := issuer.Issue("u1", "recruiter")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	issuer := &JWTer{Secret: []byte("a"), Issuer: "someone-else", TTL: time.Hour}
	verifier := &JWTer{Secret: []byte("a"), Issuer: "talentdesk", TTL: time.Hour}

	token, err := issuer.Issue("u1", "recruiter")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected issuer error")
	}
}

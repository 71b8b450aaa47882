package record

import (
	"reflect"
	"testing"
)

func TestNormalizeJob(t *testing.T) {
	in := Raw{
		"id":           "j1",
		"title":        "Backend Engineer",
		"requirements": `["Go","SQL"]`,
		"skills":       []any{"Go", "Kubernetes"},
		"salaryMin":    float64(120000),
		"salaryMax":    float64(150000),
		"createdAt":    "2025-01-10T00:00:00Z",
	}
	out, err := NormalizeJob(in)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(out["requirements"], []string{"Go", "SQL"}) {
		t.Fatalf("requirements: got %v", out["requirements"])
	}
	if !reflect.DeepEqual(out["skills"], []string{"Go", "Kubernetes"}) {
		t.Fatalf("skills: got %v", out["skills"])
	}

	salary, ok := out["salary"].(map[string]any)
	if !ok {
		t.Fatalf("salary block missing: %v", out["salary"])
	}
	if salary["min"] != float64(120000) || salary["max"] != float64(150000) {
		t.Fatalf("salary bounds: got %v", salary)
	}
	if salary["currency"] != "USD" {
		t.Fatalf("currency default: got %v", salary["currency"])
	}
	for _, k := range []string{"salaryMin", "salaryMax", "salaryCurrency"} {
		if _, ok := out[k]; ok {
			t.Fatalf("flat key %q should be dropped", k)
		}
	}

	if out["postedDate"] != "2025-01-10T00:00:00Z" {
		t.Fatalf("postedDate fallback: got %v", out["postedDate"])
	}

	// input must not be mutated
	if _, ok := in["salary"]; ok {
		t.Fatal("input record was mutated")
	}
}

func TestNormalizeJobKeepsExplicitPostedDate(t *testing.T) {
	out, err := NormalizeJob(Raw{
		"postedDate": "2025-02-01T00:00:00Z",
		"createdAt":  "2025-01-10T00:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out["postedDate"] != "2025-02-01T00:00:00Z" {
		t.Fatalf("postedDate: got %v", out["postedDate"])
	}
}

func TestNormalizeJobMalformedList(t *testing.T) {
	_, err := NormalizeJob(Raw{"requirements": `["Go"`})
	if err == nil {
		t.Fatal("expected error for malformed requirements text")
	}
}

func TestNormalizeCampaign(t *testing.T) {
	out, err := NormalizeCampaign(Raw{
		"id":                "c1",
		"name":              "Q1 Outreach",
		"createdDate":       "2025-01-05T00:00:00Z",
		"responseRate":      float64(12.5),
		"aiPersonalization": float64(1),
		"type":              "email",
		"scheduledDate":     "",
	})
	if err != nil {
		t.Fatal(err)
	}

	if out["createdAt"] != "2025-01-05T00:00:00Z" {
		t.Fatalf("createdAt: got %v", out["createdAt"])
	}
	if _, ok := out["createdDate"]; ok {
		t.Fatal("createdDate should be dropped")
	}
	if out["replyRate"] != float64(12.5) {
		t.Fatalf("replyRate: got %v", out["replyRate"])
	}
	if _, ok := out["responseRate"]; ok {
		t.Fatal("responseRate should be dropped")
	}
	if out["aiPersonalization"] != true {
		t.Fatalf("aiPersonalization: got %v", out["aiPersonalization"])
	}
	if out["type"] != "outreach" {
		t.Fatalf("legacy channel type: got %v", out["type"])
	}
	if _, ok := out["scheduledDate"]; ok {
		t.Fatal("empty scheduledDate should be dropped")
	}
}

func TestNormalizeCampaignReplyRatePrecedence(t *testing.T) {
	cases := []struct {
		name string
		in   Raw
		want float64
	}{
		{"canonical wins over legacy", Raw{"replyRate": 9.9, "responseRate": 2.2}, 9.9},
		{"legacy fills missing canonical", Raw{"responseRate": 2.2}, 2.2},
		{"legacy fills zero canonical", Raw{"replyRate": 0.0, "responseRate": 2.2}, 2.2},
		{"canonical alone", Raw{"replyRate": 9.9}, 9.9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := NormalizeCampaign(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if out["replyRate"] != c.want {
				t.Fatalf("replyRate: got %v, want %v", out["replyRate"], c.want)
			}
			if _, ok := out["responseRate"]; ok {
				t.Fatal("responseRate should be dropped")
			}
		})
	}
}

func TestNormalizeCampaignDefaults(t *testing.T) {
	out, err := NormalizeCampaign(Raw{"name": "bare"})
	if err != nil {
		t.Fatal(err)
	}
	if out["replyRate"] != 0.0 {
		t.Fatalf("replyRate default: got %v", out["replyRate"])
	}
	if out["aiPersonalization"] != false {
		t.Fatalf("aiPersonalization default: got %v", out["aiPersonalization"])
	}
}

func TestNormalizeCandidate(t *testing.T) {
	out, err := NormalizeCandidate(Raw{
		"firstName": "Sarah",
		"skills":    `["React","TypeScript"]`,
		"createdAt": "2025-03-01T00:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out["skills"], []string{"React", "TypeScript"}) {
		t.Fatalf("skills: got %v", out["skills"])
	}
	if out["appliedDate"] != "2025-03-01T00:00:00Z" {
		t.Fatalf("appliedDate fallback: got %v", out["appliedDate"])
	}
	if _, ok := out["createdAt"]; ok {
		t.Fatal("createdAt should be dropped after the fallback")
	}
}

// Normalizing an already-canonical record must be a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	jobs := Raw{
		"title":        "Backend Engineer",
		"requirements": `["Go"]`,
		"skills":       []any{"Go"},
		"salaryMin":    float64(1),
		"createdAt":    "2025-01-10T00:00:00Z",
	}
	camps := Raw{
		"name":              "Q1 Outreach",
		"createdDate":       "2025-01-05T00:00:00Z",
		"responseRate":      float64(3),
		"aiPersonalization": float64(0),
		"type":              "sms",
	}
	cands := Raw{
		"firstName": "Mike",
		"skills":    `["Go"]`,
		"createdAt": "2025-03-01T00:00:00Z",
	}

	check := func(name string, norm func(Raw) (Raw, error), in Raw) {
		once, err := norm(in)
		if err != nil {
			t.Fatalf("%s first pass: %v", name, err)
		}
		twice, err := norm(once)
		if err != nil {
			t.Fatalf("%s second pass: %v", name, err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("%s not idempotent:\nonce:  %v\ntwice: %v", name, once, twice)
		}
	}
	check("job", NormalizeJob, jobs)
	check("campaign", NormalizeCampaign, camps)
	check("candidate", NormalizeCandidate, cands)
}

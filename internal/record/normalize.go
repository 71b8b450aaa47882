package record

// NormalizeJob canonicalizes a raw job record: serialized requirements and
// skills lists become native lists, the salary block is assembled with a
// USD default, and postedDate falls back to createdAt when absent.
func NormalizeJob(r Raw) (Raw, error) {
	out := clone(r)

	reqs, err := StringList(out["requirements"])
	if err != nil {
		return nil, err
	}
	out["requirements"] = reqs

	skills, err := StringList(out["skills"])
	if err != nil {
		return nil, err
	}
	out["skills"] = skills

	if _, ok := out["salary"]; !ok {
		cur := str(out, "salaryCurrency")
		if cur == "" {
			cur = "USD"
		}
		out["salary"] = map[string]any{
			"min":      numOrZero(out["salaryMin"]),
			"max":      numOrZero(out["salaryMax"]),
			"currency": cur,
		}
	}
	delete(out, "salaryMin")
	delete(out, "salaryMax")
	delete(out, "salaryCurrency")

	if str(out, "postedDate") == "" {
		out["postedDate"] = out["createdAt"]
	}
	return out, nil
}

// NormalizeCampaign canonicalizes a raw campaign record: the legacy
// createdDate and responseRate names collapse into createdAt and
// replyRate, and the aiPersonalization 0/1 flag becomes a bool.
func NormalizeCampaign(r Raw) (Raw, error) {
	out := clone(r)
	collapse(out, "createdDate", "createdAt")
	// The canonical replyRate wins; the legacy responseRate only fills in
	// when the canonical value is missing or zero.
	if v, ok := out["responseRate"]; ok {
		if numOrZero(out["replyRate"]) == 0 {
			out["replyRate"] = v
		}
		delete(out, "responseRate")
	}
	if _, ok := out["replyRate"]; !ok {
		out["replyRate"] = 0.0
	}
	out["aiPersonalization"] = Bool01(out["aiPersonalization"])

	// One legacy variant stored channel types; fold them into outreach.
	switch str(out, "type") {
	case "email", "linkedin", "sms":
		out["type"] = "outreach"
	}
	if s, ok := out["scheduledDate"].(string); ok && s == "" {
		delete(out, "scheduledDate")
	}
	return out, nil
}

// NormalizeCandidate canonicalizes a raw candidate record.
func NormalizeCandidate(r Raw) (Raw, error) {
	out := clone(r)

	skills, err := StringList(out["skills"])
	if err != nil {
		return nil, err
	}
	out["skills"] = skills

	if str(out, "appliedDate") == "" {
		out["appliedDate"] = out["createdAt"]
	}
	delete(out, "createdAt")
	return out, nil
}

func numOrZero(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

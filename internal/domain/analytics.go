package domain

// Analytics is the dashboard summary derived from the owner's collections.
type Analytics struct {
	TotalCandidates  int     `json:"totalCandidates"`
	ActiveCandidates int     `json:"activeCandidates"`
	TotalJobs        int     `json:"totalJobs"`
	ActiveJobs       int     `json:"activeJobs"`
	TotalClients     int     `json:"totalClients"`
	AvgTimeToFill    float64 `json:"avgTimeToFill"` // days, applied → hired
	ConversionRate   float64 `json:"conversionRate"`
	MonthlyHires     int     `json:"monthlyHires"`
}

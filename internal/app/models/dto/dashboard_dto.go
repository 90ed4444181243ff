package dto

// ChartPoint is one labelled bucket of a grouped count. Empty collections
// render as a single {"label":"No data","count":1} point so the client's
// charts still draw.
type ChartPoint struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// TrendPoint is one day of a submission trend series.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardSummary is the aggregated snapshot behind the admin dashboard.
// Collections are read independently; no cross-collection consistency is
// promised.
type DashboardSummary struct {
	Totals               map[string]int64        `json:"totals"`
	StudentsByGender     []ChartPoint            `json:"studentsByGender"`
	ApplicationsByStatus []ChartPoint            `json:"applicationsByStatus"`
	CourseInterest       []ChartPoint            `json:"courseInterest"`
	SubmissionTrends     map[string][]TrendPoint `json:"submissionTrends"`
}

package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/cache"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// dashboardCacheKey is the fixed redis key for the summary snapshot.
const dashboardCacheKey = "dashboard:summary"

// DashboardService builds the aggregated snapshot behind the admin
// dashboard.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

type dashboardServiceImpl struct {
	repos *repositories.Repositories
	cache *cache.Redis
	ttl   time.Duration
}

// NewDashboardService creates a new dashboard service instance. The cache
// may be nil; the snapshot is then recomputed on every request.
func NewDashboardService(repos *repositories.Repositories, cache *cache.Redis, ttl time.Duration) DashboardService {
	return &dashboardServiceImpl{
		repos: repos,
		cache: cache,
		ttl:   ttl,
	}
}

// Summary returns the cached snapshot when fresh, otherwise recomputes it.
// Collections are read concurrently and independently, so counts may skew
// slightly under concurrent writes.
func (s *dashboardServiceImpl) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	if data, ok := s.cache.Get(ctx, dashboardCacheKey); ok {
		summary := &dto.DashboardSummary{}
		if err := json.Unmarshal(data, summary); err == nil {
			return summary, nil
		}
		logger.Warn().Msg("Discarding unreadable cached dashboard snapshot")
	}

	summary, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, dashboardCacheKey, data, s.ttl)
	}
	return summary, nil
}

func (s *dashboardServiceImpl) snapshot(ctx context.Context) (*dto.DashboardSummary, error) {
	var (
		studentCount, partnerCount, formCount, applicationCount int64
		brochureCount, counsellingCount, partnerCounselingCount int64
		blogCount, eventCount                                   int64

		genderCounts, statusCounts, courseCounts map[string]int64

		counsellingTrend, brochureTrend, partnerCounselingTrend map[string]int64
		blogTrend, eventTrend                                   map[string]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { studentCount, err = s.repos.StudentRepository.CountAll(gctx); return })
	g.Go(func() (err error) { partnerCount, err = s.repos.PartnerRepository.CountAll(gctx); return })
	g.Go(func() (err error) { formCount, err = s.repos.FormRepository.CountAll(gctx); return })
	g.Go(func() (err error) { applicationCount, err = s.repos.ApplicationRepository.CountAll(gctx); return })
	g.Go(func() (err error) { brochureCount, err = s.repos.BrochureRepository.CountAll(gctx); return })
	g.Go(func() (err error) { counsellingCount, err = s.repos.CounsellingRepository.CountAll(gctx); return })
	g.Go(func() (err error) {
		partnerCounselingCount, err = s.repos.PartnerCounselingRepository.CountAll(gctx)
		return
	})
	g.Go(func() (err error) { blogCount, err = s.repos.BlogRepository.CountAll(gctx); return })
	g.Go(func() (err error) { eventCount, err = s.repos.EventRepository.CountAll(gctx); return })

	g.Go(func() (err error) { genderCounts, err = s.repos.StudentRepository.CountByGender(gctx); return })
	g.Go(func() (err error) { statusCounts, err = s.repos.ApplicationRepository.CountByStatus(gctx); return })
	g.Go(func() (err error) {
		courseCounts, err = s.repos.BrochureRepository.CountByCourseInterest(gctx)
		return
	})

	g.Go(func() (err error) { counsellingTrend, err = s.repos.CounsellingRepository.CountPerDay(gctx); return })
	g.Go(func() (err error) { brochureTrend, err = s.repos.BrochureRepository.CountPerDay(gctx); return })
	g.Go(func() (err error) {
		partnerCounselingTrend, err = s.repos.PartnerCounselingRepository.CountPerDay(gctx)
		return
	})
	g.Go(func() (err error) { blogTrend, err = s.repos.BlogRepository.CountPerDay(gctx); return })
	g.Go(func() (err error) { eventTrend, err = s.repos.EventRepository.CountPerDay(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		Totals: map[string]int64{
			"students":          studentCount,
			"partners":          partnerCount,
			"forms":             formCount,
			"applications":      applicationCount,
			"brochureRequests":  brochureCount,
			"counselling":       counsellingCount,
			"partnerCounseling": partnerCounselingCount,
			"blogs":             blogCount,
			"events":            eventCount,
		},
		StudentsByGender:     GenderChart(genderCounts),
		ApplicationsByStatus: GroupChart(statusCounts),
		CourseInterest:       GroupChart(courseCounts),
		SubmissionTrends: map[string][]dto.TrendPoint{
			"counselling":       TrendSeries(counsellingTrend),
			"brochureRequests":  TrendSeries(brochureTrend),
			"partnerCounseling": TrendSeries(partnerCounselingTrend),
			"blogs":             TrendSeries(blogTrend),
			"events":            TrendSeries(eventTrend),
		},
	}, nil
}

// noDataChart is rendered for an empty collection so the client's charts
// still draw a placeholder slice.
func noDataChart() []dto.ChartPoint {
	return []dto.ChartPoint{{Label: "No data", Count: 1}}
}

// GenderChart folds raw gender values into Male, Female and Other. Blank
// and unrecognized values count as Other.
func GenderChart(counts map[string]int64) []dto.ChartPoint {
	var male, female, other int64
	for value, count := range counts {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "male":
			male += count
		case "female":
			female += count
		default:
			other += count
		}
	}
	if male+female+other == 0 {
		return noDataChart()
	}
	return []dto.ChartPoint{
		{Label: "Male", Count: male},
		{Label: "Female", Count: female},
		{Label: "Other", Count: other},
	}
}

// GroupChart turns raw grouped counts into chart points, folding blank
// labels into "Unknown" and ordering by count descending, then label.
func GroupChart(counts map[string]int64) []dto.ChartPoint {
	merged := map[string]int64{}
	for label, count := range counts {
		if strings.TrimSpace(label) == "" {
			label = "Unknown"
		}
		merged[label] += count
	}
	if len(merged) == 0 {
		return noDataChart()
	}

	points := make([]dto.ChartPoint, 0, len(merged))
	for label, count := range merged {
		points = append(points, dto.ChartPoint{Label: label, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Count != points[j].Count {
			return points[i].Count > points[j].Count
		}
		return points[i].Label < points[j].Label
	})
	return points
}

// TrendSeries turns per-day counts into a date-sorted series.
func TrendSeries(counts map[string]int64) []dto.TrendPoint {
	points := make([]dto.TrendPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, dto.TrendPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

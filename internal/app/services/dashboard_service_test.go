package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
)

func TestGenderChartBucketsUnknownValues(t *testing.T) {
	points := GenderChart(map[string]int64{
		"Male":    10,
		"female":  7,
		"":        2,
		"Unknown": 1,
	})

	assert.Equal(t, []dto.ChartPoint{
		{Label: "Male", Count: 10},
		{Label: "Female", Count: 7},
		{Label: "Other", Count: 3},
	}, points)
}

func TestGenderChartEmpty(t *testing.T) {
	assert.Equal(t,
		[]dto.ChartPoint{{Label: "No data", Count: 1}},
		GenderChart(nil))
}

func TestGroupChartFoldsBlankAndSorts(t *testing.T) {
	points := GroupChart(map[string]int64{
		"Pending":  3,
		"Approved": 5,
		"":         2,
		"  ":       1,
	})

	assert.Equal(t, []dto.ChartPoint{
		{Label: "Approved", Count: 5},
		{Label: "Pending", Count: 3},
		{Label: "Unknown", Count: 3},
	}, points)
}

func TestGroupChartTiesSortByLabel(t *testing.T) {
	points := GroupChart(map[string]int64{
		"MBA": 2,
		"BBA": 2,
	})

	assert.Equal(t, []dto.ChartPoint{
		{Label: "BBA", Count: 2},
		{Label: "MBA", Count: 2},
	}, points)
}

func TestGroupChartEmpty(t *testing.T) {
	assert.Equal(t,
		[]dto.ChartPoint{{Label: "No data", Count: 1}},
		GroupChart(map[string]int64{}))
}

func TestTrendSeriesSortedByDate(t *testing.T) {
	points := TrendSeries(map[string]int64{
		"2026-08-30": 4,
		"2026-08-28": 1,
		"2026-08-29": 2,
	})

	assert.Equal(t, []dto.TrendPoint{
		{Date: "2026-08-28", Count: 1},
		{Date: "2026-08-29", Count: 2},
		{Date: "2026-08-30", Count: 4},
	}, points)
}

func TestTrendSeriesEmpty(t *testing.T) {
	assert.Empty(t, TrendSeries(nil))
}

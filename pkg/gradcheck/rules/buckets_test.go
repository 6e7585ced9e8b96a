package rules

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

func f64(v float64) *float64 { return &v }

func named(name string) models.Course {
	c := models.NewCourse()
	c.Name = &name
	return c
}

func bucketConfig() *Config {
	return &Config{
		CategoryBuckets: []Bucket{
			{Match: "全校共同", Bucket: "common"},
			{Match: "通識", Bucket: "general"},
			{Match: "學系專業", Bucket: "major"},
		},
		PE:                 PERule{Keywords: []string{"體育"}, RequiredCredits: 4},
		Service:            ServiceRule{Keywords: []string{"服務學習"}, RequiredTimes: 1},
		RequiredMin:        60,
		ElectiveMin:        40,
		GeneralMin:         28,
		GraduationTotalMin: 6,
	}
}

func TestConfigBucket(t *testing.T) {
	cfg := bucketConfig()
	tests := []struct {
		category string
		expected string
	}{
		{"全校共同課程", "common"},
		{"通識領域課程", "general"},
		{"學系專業課程", "major"},
		{"自由選修", OtherBucket},
		{"", OtherBucket},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cfg.Bucket(tt.category), tt.category)
	}
}

func TestApply(t *testing.T) {
	rows := []models.Row{
		{Category: "全校共同課程", EarnedCreditsCourse: f64(2), Course: named("體育(一)")},
		{Category: "通識領域課程", CourseCredits: f64(3), Course: models.NewCourse()},
		{Category: "學系專業課程", EarnedCreditsCourse: f64(0), CourseCredits: f64(3), Course: models.NewCourse()},
		{CourseRawHTML: `<span style="color:blue">1121 服務學習(一)</span>`, Course: models.NewCourse()},
		{Category: "其他", EarnedCreditsCourse: f64(1), Course: models.NewCourse()},
		{Category: "學系專業課程", EarnedCreditsCourse: f64(math.NaN()), Course: models.NewCourse()},
	}
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	summary := Apply(rows, bucketConfig(), now)

	assert.Equal(t, "2024-03-05 14:07:09", summary.GeneratedAt)
	assert.Equal(t, map[string]float64{
		"common":    2,
		"general":   3,
		"major":     0,
		OtherBucket: 1,
	}, summary.ByBucket)

	assert.Equal(t, models.Requirement{Earned: 2, Required: 4, Passed: false}, summary.PE)
	assert.Equal(t, models.CountRequirement{Count: 1, Required: 1, Passed: true}, summary.Service)
	assert.Equal(t, models.Requirement{Earned: 6, Required: 6, Passed: true}, summary.Graduation)
	assert.Equal(t, 60.0, summary.RequiredMin)
	assert.Equal(t, 28.0, summary.GeneralMin)
}

func TestApplyDoesNotModifyRows(t *testing.T) {
	rows := []models.Row{{Category: "學系專業課程", Domain: "x", EarnedCreditsCourse: f64(3), Course: models.NewCourse()}}

	Apply(rows, bucketConfig(), time.Now())

	assert.Equal(t, "x", rows[0].Domain)
	assert.Nil(t, rows[0].DomainReassignedFrom)
}

func TestApplyNilConfig(t *testing.T) {
	rows := []models.Row{{Category: "通識", EarnedCreditsCourse: f64(2), Course: models.NewCourse()}}

	summary := Apply(rows, nil, time.Now())

	require.Len(t, summary.ByBucket, 1)
	assert.Equal(t, 2.0, summary.ByBucket[OtherBucket])
	assert.True(t, summary.PE.Passed)
	assert.True(t, summary.Graduation.Passed)
}

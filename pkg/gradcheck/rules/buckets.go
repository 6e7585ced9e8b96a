package rules

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// OtherBucket collects rows whose category matches no configured bucket.
const OtherBucket = "other"

// GeneratedAtLayout is the timestamp layout of RuleSummary.GeneratedAt.
const GeneratedAtLayout = "2006-01-02 15:04:05"

var markupTag = regexp.MustCompile(`<[^>]+>`)

// Bucket returns the bucket id for a category.
func (c *Config) Bucket(category string) string {
	if category == "" {
		return OtherBucket
	}
	for _, b := range c.CategoryBuckets {
		if strings.Contains(category, b.Match) {
			return b.Bucket
		}
	}
	return OtherBucket
}

// Apply aggregates row credits into buckets and checks the configured
// requirements. Rows are read only.
func Apply(rows []models.Row, cfg *Config, now time.Time) models.RuleSummary {
	if cfg == nil {
		cfg = &Config{}
	}

	totals := map[string]float64{OtherBucket: 0}
	for _, b := range cfg.CategoryBuckets {
		totals[b.Bucket] = 0
	}

	var peCredits float64
	var serviceCount int
	for i := range rows {
		row := &rows[i]
		credit := rowCredit(row)
		totals[cfg.Bucket(row.Category)] += credit

		name := ""
		if row.Course.Name != nil {
			name = *row.Course.Name
		}
		text := markupTag.ReplaceAllString(row.CourseRawHTML, "")

		if matchesAny(cfg.PE.Keywords, name, text) {
			peCredits += credit
		}
		if matchesAny(cfg.Service.Keywords, name, text) {
			serviceCount++
		}
	}

	var graduation float64
	for _, v := range totals {
		graduation += v
	}

	return models.RuleSummary{
		GeneratedAt: now.Format(GeneratedAtLayout),
		ByBucket:    totals,
		PE: models.Requirement{
			Earned:   peCredits,
			Required: cfg.PE.RequiredCredits,
			Passed:   peCredits >= cfg.PE.RequiredCredits,
		},
		Service: models.CountRequirement{
			Count:    serviceCount,
			Required: cfg.Service.RequiredTimes,
			Passed:   serviceCount >= cfg.Service.RequiredTimes,
		},
		RequiredMin:        cfg.RequiredMin,
		ElectiveMin:        cfg.ElectiveMin,
		GeneralMin:         cfg.GeneralMin,
		GraduationTotalMin: cfg.GraduationTotalMin,
		Graduation: models.Requirement{
			Earned:   graduation,
			Required: cfg.GraduationTotalMin,
			Passed:   graduation >= cfg.GraduationTotalMin,
		},
	}
}

// rowCredit prefers the earned course credits, then the nominal course credits.
func rowCredit(row *models.Row) float64 {
	v := row.EarnedCreditsCourse
	if v == nil {
		v = row.CourseCredits
	}
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

func matchesAny(keywords []string, candidates ...string) bool {
	for _, k := range keywords {
		if k == "" {
			continue
		}
		for _, c := range candidates {
			if strings.Contains(c, k) {
				return true
			}
		}
	}
	return false
}

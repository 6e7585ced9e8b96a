package rules

import (
	"fmt"
	"math"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// Reclassify moves credits between the two competing sub-domains of one
// category once either reaches the threshold.
//
// The sub-domain with the larger earned total is kept (ties follow
// cfg.TieBreak). Walking its rows in order, rows are left alone until the
// running total reaches the threshold; every later qualifying row is moved to
// the overflow domain. All qualifying rows of the other sub-domain are moved.
// Only Domain and DomainReassignedFrom are written; rows are never removed or
// reordered. Failures are reported in the result, never returned.
func Reclassify(rows []models.Row, cfg ReassignConfig) (res models.Reassignment) {
	if !cfg.Enabled {
		return models.Reassignment{Enabled: false}
	}

	res = models.Reassignment{
		Enabled:   true,
		Category:  cfg.Category,
		Threshold: cfg.Threshold,
		Target:    cfg.Overflow,
	}
	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Sprintf("reclassification failed: %v", r)
		}
	}()

	if err := cfg.validate(); err != nil {
		res.Error = err.Error()
		return res
	}

	var setA, setB []int
	for i := range rows {
		if rows[i].Category != cfg.Category {
			continue
		}
		switch rows[i].Domain {
		case cfg.SubdomainA:
			setA = append(setA, i)
		case cfg.SubdomainB:
			setB = append(setB, i)
		}
	}

	totalA, totalB := sumEarned(rows, setA), sumEarned(rows, setB)
	res.Totals = models.SubdomainTotals{SubA: totalA, SubB: totalB}

	if totalA < cfg.Threshold && totalB < cfg.Threshold {
		return res
	}

	chosen, kept, other := cfg.SubdomainA, setA, setB
	switch {
	case totalB > totalA:
		chosen, kept, other = cfg.SubdomainB, setB, setA
	case totalA == totalB:
		label, _ := cfg.tieBreakLabel()
		if label == cfg.SubdomainB {
			chosen, kept, other = cfg.SubdomainB, setB, setA
		}
	}
	res.Chosen = &chosen

	move := func(i int) {
		from := rows[i].Domain
		rows[i].DomainReassignedFrom = &from
		rows[i].Domain = cfg.Overflow
		res.MovedCount++
		res.MovedCredits += earned(&rows[i])
	}

	running := 0.0
	reached := false
	for _, i := range kept {
		if reached {
			if qualifies(&rows[i], cfg) {
				move(i)
			}
			continue
		}
		running += earned(&rows[i])
		reached = running >= cfg.Threshold
	}

	for _, i := range other {
		if qualifies(&rows[i], cfg) {
			move(i)
		}
	}

	return res
}

func qualifies(row *models.Row, cfg ReassignConfig) bool {
	return !cfg.PositiveOnly || earned(row) > 0
}

// earned returns the earned course credits, treating unknown or non-finite as 0.
func earned(row *models.Row) float64 {
	v := row.EarnedCredits()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func sumEarned(rows []models.Row, idx []int) float64 {
	total := 0.0
	for _, i := range idx {
		total += earned(&rows[i])
	}
	return total
}

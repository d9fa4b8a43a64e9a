package rfm

import (
	"math"
	"math/rand"
	"rfmInsights/domain"
)

// reengage simulates a win-back campaign: a fixed share of Lost rows,
// drawn uniformly without replacement from a seeded source, is
// relabeled as Potential Loyalists in place. Scores and value segments
// are untouched. The same table and seed always produce the same
// selection. Returns the number of relabeled rows.
func reengage(rows []domain.RFMRow, seed int64) int {
	var lost []int
	for i := range rows {
		if rows[i].CustomerSegment == domain.SegmentLost {
			lost = append(lost, i)
		}
	}

	n := int(math.Round(reengageRatio * float64(len(lost))))
	if n == 0 {
		return 0
	}

	rng := rand.New(rand.NewSource(seed))
	for _, j := range rng.Perm(len(lost))[:n] {
		rows[lost[j]].CustomerSegment = domain.SegmentPotentialLoyalists
	}
	return n
}

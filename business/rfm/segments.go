package rfm

import "rfmInsights/domain"

// segmentForScore maps a composite score to its named segment. Fixed
// thresholds, first match wins. Valid scores live in [3, 15], so every
// scored row matches a rule; anything else stays unlabeled.
func segmentForScore(score int) string {
	switch {
	case score >= 9:
		return domain.SegmentChampions
	case score >= 6:
		return domain.SegmentPotentialLoyalists
	case score >= 5:
		return domain.SegmentAtRisk
	case score >= 4:
		return domain.SegmentCantLose
	case score >= 3:
		return domain.SegmentLost
	default:
		return ""
	}
}

func assignCustomerSegments(rows []domain.RFMRow) {
	for i := range rows {
		if rows[i].RFMScore > 0 {
			rows[i].CustomerSegment = segmentForScore(rows[i].RFMScore)
		}
	}
}

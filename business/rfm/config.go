package rfm

import "rfmInsights/domain"

// Fixed pipeline parameters. Bin counts, labels, thresholds and the
// re-engagement draw are deliberately not configurable.
const (
	scoreBins        = 5
	valueSegmentBins = 3

	reengageRatio = 0.2
	reengageSeed  = 1
)

// Labels per ascending bin. Recency runs high-to-low: the most recent
// purchases sit in the lowest bin and earn the highest score.
var (
	recencyLabels   = [scoreBins]int{5, 4, 3, 2, 1}
	frequencyLabels = [scoreBins]int{1, 2, 3, 4, 5}
	monetaryLabels  = [scoreBins]int{1, 2, 3, 4, 5}

	valueSegmentLabels = [valueSegmentBins]string{
		domain.ValueSegmentLow,
		domain.ValueSegmentMid,
		domain.ValueSegmentHigh,
	}
)

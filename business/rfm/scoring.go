package rfm

import (
	"math"
	"rfmInsights/domain"
)

// metricRange tracks the observed min and max of one metric.
type metricRange struct {
	min, max float64
	seen     bool
}

func (r *metricRange) observe(v float64) {
	if !r.seen {
		r.min, r.max = v, v
		r.seen = true
		return
	}
	if v < r.min {
		r.min = v
	}
	if v > r.max {
		r.max = v
	}
}

// binner places values into equal-width bins over [min, max].
// Intervals are [lo, hi) with the last bin closed on the right, so the
// maximum lands in the top bin. A zero-width range puts every value in
// the middle bin.
type binner struct {
	min   float64
	width float64
	bins  int
}

func newBinner(r metricRange, bins int) binner {
	return binner{
		min:   r.min,
		width: (r.max - r.min) / float64(bins),
		bins:  bins,
	}
}

func (b binner) index(v float64) int {
	if b.width == 0 {
		return b.bins / 2
	}
	idx := int(math.Floor((v - b.min) / b.width))
	if idx < 0 {
		idx = 0
	}
	if idx >= b.bins {
		idx = b.bins - 1
	}
	return idx
}

// scoreRows fills the three component scores and their sum. Frequency
// and monetary scores are always assigned; rows without a recency keep
// zero for RecencyScore and RFMScore.
func scoreRows(rows []domain.RFMRow) {
	var rec, freq, mon metricRange
	for i := range rows {
		if rows[i].HasRecency {
			rec.observe(float64(rows[i].Recency))
		}
		freq.observe(float64(rows[i].Frequency))
		mon.observe(rows[i].Monetary)
	}

	recBin := newBinner(rec, scoreBins)
	freqBin := newBinner(freq, scoreBins)
	monBin := newBinner(mon, scoreBins)

	for i := range rows {
		row := &rows[i]
		row.FrequencyScore = frequencyLabels[freqBin.index(float64(row.Frequency))]
		row.MonetaryScore = monetaryLabels[monBin.index(row.Monetary)]
		if row.HasRecency && rec.seen {
			row.RecencyScore = recencyLabels[recBin.index(float64(row.Recency))]
			row.RFMScore = row.RecencyScore + row.FrequencyScore + row.MonetaryScore
		}
	}
}

// assignValueSegments buckets the composite score into three
// equal-width tiers over its observed range. Rows without a score are
// skipped.
func assignValueSegments(rows []domain.RFMRow) {
	var scores metricRange
	for i := range rows {
		if rows[i].RFMScore > 0 {
			scores.observe(float64(rows[i].RFMScore))
		}
	}
	if !scores.seen {
		return
	}

	vBin := newBinner(scores, valueSegmentBins)
	for i := range rows {
		if rows[i].RFMScore > 0 {
			rows[i].ValueSegment = valueSegmentLabels[vBin.index(float64(rows[i].RFMScore))]
		}
	}
}

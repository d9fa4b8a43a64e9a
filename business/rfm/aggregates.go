package rfm

import (
	"rfmInsights/domain"
	"sort"
)

// Aggregate views feeding the dashboard charts. Rows that never
// received a segment (missing purchase date) are left out.

func countSegments(rows []domain.RFMRow, pick func(domain.RFMRow) string) []domain.SegmentCount {
	counts := make(map[string]int)
	for _, row := range rows {
		if seg := pick(row); seg != "" {
			counts[seg]++
		}
	}

	out := make([]domain.SegmentCount, 0, len(counts))
	for seg, n := range counts {
		out = append(out, domain.SegmentCount{Segment: seg, Count: n})
	}
	// most populous first, names break ties
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Segment < out[j].Segment
	})
	return out
}

func valueSegmentCounts(rows []domain.RFMRow) []domain.SegmentCount {
	return countSegments(rows, func(r domain.RFMRow) string { return r.ValueSegment })
}

func customerSegmentCounts(rows []domain.RFMRow) []domain.SegmentCount {
	return countSegments(rows, func(r domain.RFMRow) string { return r.CustomerSegment })
}

// segmentScoreMeans averages the three component scores per customer
// segment, ordered by segment name.
func segmentScoreMeans(rows []domain.RFMRow) []domain.SegmentScoreMeans {
	type scoreSums struct {
		recency, frequency, monetary float64
		n                            int
	}
	bySegment := make(map[string]*scoreSums)
	for _, row := range rows {
		if row.CustomerSegment == "" {
			continue
		}
		s, ok := bySegment[row.CustomerSegment]
		if !ok {
			s = &scoreSums{}
			bySegment[row.CustomerSegment] = s
		}
		s.recency += float64(row.RecencyScore)
		s.frequency += float64(row.FrequencyScore)
		s.monetary += float64(row.MonetaryScore)
		s.n++
	}

	segments := make([]string, 0, len(bySegment))
	for seg := range bySegment {
		segments = append(segments, seg)
	}
	sort.Strings(segments)

	out := make([]domain.SegmentScoreMeans, 0, len(segments))
	for _, seg := range segments {
		s := bySegment[seg]
		out = append(out, domain.SegmentScoreMeans{
			Segment:   seg,
			Recency:   s.recency / float64(s.n),
			Frequency: s.frequency / float64(s.n),
			Monetary:  s.monetary / float64(s.n),
		})
	}
	return out
}

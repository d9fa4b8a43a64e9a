package rfm

import (
	"context"
	"fmt"
	"rfmInsights/domain"
	"rfmInsights/pkg/logger"
	"time"
)

// ---- Repository interfaces ----

type TransactionRepository interface {
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}

// ---- Usecase / Service ----

type RFMService struct {
	transactionRepo TransactionRepository

	// now supplies the evaluation date and seed feeds the
	// re-engagement draw; both are swapped out in tests.
	now  func() time.Time
	seed int64
}

func NewRFMService(transactionRepo TransactionRepository) *RFMService {
	return &RFMService{
		transactionRepo: transactionRepo,
		now:             time.Now,
		seed:            reengageSeed,
	}
}

// BuildReport recomputes the full segmentation from the source table:
// metric derivation, scoring, value tiers, named segments, the
// aggregate views and the re-engagement relabeling. Nothing is cached
// between calls; every request sees a fresh read of the source.
func (s *RFMService) BuildReport(ctx context.Context) (domain.RFMReport, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building rfm report")
		return domain.RFMReport{}, fmt.Errorf("context error: %w", err)
	}

	started := time.Now()

	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load transactions", err)
		return domain.RFMReport{}, fmt.Errorf("load transactions: %w", err)
	}

	report := s.segment(transactions, s.now())

	SegmentationDuration.Observe(time.Since(started).Seconds())

	logger.Debug("rfm_report",
		"run_id", RunIDFromContext(ctx),
		"rows", len(report.Rows),
		"evaluated_at", report.EvaluatedAt.Format(time.RFC3339),
		"reengaged", report.ReengagedRows,
	)

	return report, nil
}

// segment is the pure pipeline over an already-loaded table. The count
// and score views are taken before the re-engagement pass so the
// dashboard can show the before/after shift.
func (s *RFMService) segment(transactions []domain.Transaction, evalDate time.Time) domain.RFMReport {
	rows := buildRows(transactions, evalDate)
	scoreRows(rows)
	assignValueSegments(rows)
	assignCustomerSegments(rows)

	for i := range rows {
		if rows[i].CustomerSegment != "" {
			SegmentedRowsTotal.WithLabelValues(rows[i].CustomerSegment).Inc()
		}
	}

	report := domain.RFMReport{
		EvaluatedAt:           evalDate,
		ValueSegmentCounts:    valueSegmentCounts(rows),
		CustomerSegmentCounts: customerSegmentCounts(rows),
		SegmentScores:         segmentScoreMeans(rows),
	}

	report.ReengagedRows = reengage(rows, s.seed)
	ReengagedRowsTotal.Add(float64(report.ReengagedRows))

	report.ReengagedSegmentCounts = customerSegmentCounts(rows)
	report.Rows = rows

	return report
}

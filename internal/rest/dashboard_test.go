package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"rfmInsights/business/rfm"
	"rfmInsights/domain"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type stubDashboardService struct {
	report domain.RFMReport
	err    error
}

func (s *stubDashboardService) BuildReport(ctx context.Context) (domain.RFMReport, error) {
	if s.err != nil {
		return domain.RFMReport{}, s.err
	}
	return s.report, nil
}

type dashboardServiceFunc func(ctx context.Context) (domain.RFMReport, error)

func (f dashboardServiceFunc) BuildReport(ctx context.Context) (domain.RFMReport, error) {
	return f(ctx)
}

func serveDashboard(t *testing.T, h *DashboardHandler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.Dashboard(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestDashboardServesChartPage(t *testing.T) {
	report := domain.RFMReport{
		CustomerSegmentCounts: []domain.SegmentCount{
			{Segment: domain.SegmentChampions, Count: 3},
		},
	}
	h := NewDashboardHandler(&stubDashboardService{report: report})

	rec := serveDashboard(t, h)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Fatalf("got content type %q, want html", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{"<h2>", "RFM Analysis", domain.SegmentChampions} {
		if !strings.Contains(body, want) {
			t.Fatalf("body does not contain %q", want)
		}
	}
}

func TestDashboardServiceFailure(t *testing.T) {
	h := NewDashboardHandler(&stubDashboardService{err: errors.New("source file gone")})

	rec := serveDashboard(t, h)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "failed to build dashboard") {
		t.Fatalf("body %q does not carry the generic message", body)
	}
	if strings.Contains(body, "source file gone") {
		t.Fatal("pipeline details must not leak to the caller")
	}
}

func TestDashboardStampsRunID(t *testing.T) {
	var runID string
	svc := dashboardServiceFunc(func(ctx context.Context) (domain.RFMReport, error) {
		runID = rfm.RunIDFromContext(ctx)
		return domain.RFMReport{}, nil
	})

	serveDashboard(t, NewDashboardHandler(svc))

	if runID == "" {
		t.Fatal("service must see a run id on the context")
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", runID, err)
	}
}

func TestDashboardDeadlineOnContext(t *testing.T) {
	var hasDeadline bool
	svc := dashboardServiceFunc(func(ctx context.Context) (domain.RFMReport, error) {
		_, hasDeadline = ctx.Deadline()
		return domain.RFMReport{}, nil
	})

	serveDashboard(t, NewDashboardHandler(svc))

	if !hasDeadline {
		t.Fatal("service context must carry the request timeout")
	}
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
)

// ReportService orchestrates one reporting run: fetch service principals,
// rank their credentials by days until expiry, and hand the result to the
// reporter.
type ReportService struct {
	dirClient      driven.DirectoryClient
	reporter       driven.Reporter
	topN           int
	includeSecrets bool
	strict         bool
}

// NewReportService creates a ReportService with all required dependencies.
// strict controls the error policy: when false, fetch failures are logged
// and the run continues to an empty report; when true they abort the run.
func NewReportService(
	dirClient driven.DirectoryClient,
	reporter driven.Reporter,
	topN int,
	includeSecrets bool,
	strict bool,
) *ReportService {
	return &ReportService{
		dirClient:      dirClient,
		reporter:       reporter,
		topN:           topN,
		includeSecrets: includeSecrets,
		strict:         strict,
	}
}

// Run executes one fetch-rank-report pass. In best-effort mode a failed
// fetch still produces a report over zero records, so the output is the
// "none found" line; the failure itself is only visible in the logs. That
// reproduces the long-standing behavior of this report and is why strict
// mode exists.
func (s *ReportService) Run(ctx context.Context) error {
	start := time.Now()

	principals, err := s.dirClient.ListServicePrincipals(ctx)
	if err != nil {
		if s.strict {
			return fmt.Errorf("listing service principals: %w", err)
		}
		slog.Error("service principal fetch failed, reporting on zero records", "error", err)
		principals = nil
	}

	entries := RankCredentials(principals, time.Now(), s.topN, s.includeSecrets)

	if err := s.reporter.Report(entries); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	slog.Info("report complete",
		"principals", len(principals),
		"reported", len(entries),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return nil
}

// Package console implements the Reporter port as plain lines on a writer.
package console

import (
	"fmt"
	"io"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Reporter = (*Reporter)(nil)

// Reporter writes ranked expiry entries as human-readable lines.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w. main passes os.Stdout so the
// report stays separable from the structured logs on stderr.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report renders one line per entry under a header, or a single "none found"
// line when there are no entries.
func (r *Reporter) Report(entries []model.ExpiryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.w, "No certificates found.")
		return err
	}

	if _, err := fmt.Fprintln(r.w, "Service principal credentials expiring soonest:"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(r.w, "%s will expire in %d days\n", e.AppName, e.DaysRemaining); err != nil {
			return err
		}
	}
	return nil
}

// Package application contains use-case orchestration services.
package application

import (
	"sort"
	"time"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// RankCredentials maps each service principal to at most one expiry entry,
// sorts entries soonest-first, and truncates to the first topN. It is a pure
// function: same input, same output, no side effects.
//
// Only the first eligible credential of each record is considered, matching
// the behavior this report has always had. A record whose first eligible
// credential carries no expiration instant is skipped. Already-expired
// credentials are not filtered out; their negative day counts sort them
// first. Ties keep input order.
func RankCredentials(principals []model.ServicePrincipal, now time.Time, topN int, includeSecrets bool) []model.ExpiryEntry {
	today := truncateToDate(now)

	entries := make([]model.ExpiryEntry, 0, len(principals))
	for _, sp := range principals {
		cred, ok := firstEligible(sp, includeSecrets)
		if !ok || cred.ExpiresAt == nil {
			continue
		}
		entries = append(entries, model.ExpiryEntry{
			AppName:       sp.DisplayName,
			DaysRemaining: wholeDays(today, *cred.ExpiresAt),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysRemaining < entries[j].DaysRemaining
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// firstEligible returns the first credential the report inspects for a
// record. Certificates are always eligible; secrets only when the report is
// widened to include them.
func firstEligible(sp model.ServicePrincipal, includeSecrets bool) (model.Credential, bool) {
	for _, cred := range sp.Credentials {
		if cred.Kind == model.CredentialKindSecret && !includeSecrets {
			continue
		}
		return cred, true
	}
	return model.Credential{}, false
}

// truncateToDate drops the time-of-day from now, keeping its location.
func truncateToDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// wholeDays returns the whole-day span from the start of today to the
// expiration instant. Truncation is toward zero, so a credential expiring
// later today counts as 0 days and one expired within the last day as 0 or
// negative.
func wholeDays(today time.Time, expiresAt time.Time) int {
	return int(expiresAt.Sub(today).Hours() / 24)
}

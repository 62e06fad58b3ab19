package driven

import "github.com/ericfisherdev/certpanel/internal/domain/model"

// Reporter renders ranked expiry entries for the operator. An empty entry
// list must be rendered as an explicit "none found" signal, not silence.
type Reporter interface {
	Report(entries []model.ExpiryEntry) error
}

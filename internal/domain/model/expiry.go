package model

// ExpiryEntry pairs an application's display name with the whole days until
// its credential expires. DaysRemaining is zero for credentials expiring
// today and negative for credentials that have already expired.
type ExpiryEntry struct {
	AppName       string
	DaysRemaining int
}

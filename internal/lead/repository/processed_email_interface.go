package repository

// ProcessedEmailRepository is the write-once ledger of digests that have
// already been parsed, keyed by the provider's email ID.
type ProcessedEmailRepository interface {
	// ProcessedIDs returns which of the given email IDs are already in the
	// ledger.
	ProcessedIDs(emailIDs []string) (map[string]struct{}, error)
	// MarkProcessed adds an email to the ledger. Marking an already-marked
	// email is a no-op.
	MarkProcessed(emailID string) error
}

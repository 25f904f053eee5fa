package constants

// MatchStatus is the outcome of reconciling one order against the shipping
// label set.
type MatchStatus string

// Stable values (these exact strings appear in exports).
const (
	MatchStatusMatched MatchStatus = "Matched"
	MatchStatusMissing MatchStatus = "Missing"
)

// BatchStatus is the canonical lifecycle state of an uploaded batch.
type BatchStatus string

const (
	BatchStatusQueued  BatchStatus = "QUEUED"
	BatchStatusRunning BatchStatus = "RUNNING"
	BatchStatusDone    BatchStatus = "DONE"
	BatchStatusFailed  BatchStatus = "FAILED"
)

// GiftOption is the normalized answer to the gift note & gift bag field.
type GiftOption string

const (
	GiftOptionYes GiftOption = "YES"
	GiftOptionNo  GiftOption = "NO"
)

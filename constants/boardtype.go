package constants

// Canonical board-type labels. Raw strings that map to none of these pass
// through extraction unchanged so nothing is silently lost.
const (
	BoardTypeNoEngraving       = "No Engraving"
	BoardTypeBoardOnly         = "Board Only"
	BoardTypeUtensilsEngraving = "Board+Utensils Engraving"
)

package model

// Claim represents a single news claim submitted for verification
type Claim struct {
	Text   string `json:"text"`             // The claim text itself (required, non-empty)
	Source string `json:"source,omitempty"` // Declared origin, carried as metadata only
}

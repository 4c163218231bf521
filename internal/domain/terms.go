package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gowebpki/jcs"
)

// CampaignTerms are the immutable terms attached to a sponsor deposit.
// They are canonicalized and content-addressed at submission time; the
// resulting hash is stored on the receipt and never recomputed afterwards.
type CampaignTerms struct {
	SponsorName  string   `json:"sponsor_name"`
	Objective    string   `json:"objective"`
	Deliverables []string `json:"deliverables"`
	StartDate    string   `json:"start_date"` // ISO 8601 date (2006-01-02)
	EndDate      string   `json:"end_date"`   // ISO 8601 date (2006-01-02)
	Disclosure   string   `json:"disclosure,omitempty"`
}

// CampaignSubmitInput is the richer ledger-writer payload for sponsor deposits
type CampaignSubmitInput struct {
	SubmitInput
	Terms     CampaignTerms `json:"terms"`
	TermsHash string        `json:"terms_hash,omitempty"`
}

const termsDateLayout = "2006-01-02"

// Validate checks the campaign terms and returns a ValidationError on the
// first violation
func (t *CampaignTerms) Validate() error {
	if strings.TrimSpace(t.SponsorName) == "" {
		return NewValidationError("sponsor_name", "must not be empty")
	}
	if strings.TrimSpace(t.Objective) == "" {
		return NewValidationError("objective", "must not be empty")
	}
	if len(t.Deliverables) == 0 {
		return NewValidationError("deliverables", "at least one deliverable is required")
	}
	for i, d := range t.Deliverables {
		if strings.TrimSpace(d) == "" {
			return NewValidationError("deliverables", fmt.Sprintf("deliverable %d is empty", i))
		}
	}

	start, err := time.Parse(termsDateLayout, t.StartDate)
	if err != nil {
		return NewValidationError("start_date", "must be an ISO 8601 date")
	}
	end, err := time.Parse(termsDateLayout, t.EndDate)
	if err != nil {
		return NewValidationError("end_date", "must be an ISO 8601 date")
	}
	if start.After(end) {
		return NewValidationError("start_date", "must not be after end_date")
	}

	return nil
}

// Canonicalize trims whitespace from all free-text fields so semantically
// identical terms hash to the same value
func (t *CampaignTerms) Canonicalize() {
	t.SponsorName = strings.TrimSpace(t.SponsorName)
	t.Objective = strings.TrimSpace(t.Objective)
	t.Disclosure = strings.TrimSpace(t.Disclosure)
	for i := range t.Deliverables {
		t.Deliverables[i] = strings.TrimSpace(t.Deliverables[i])
	}
}

// Hash computes the content-addressed terms hash: SHA-256 over the
// RFC 8785 canonical JSON encoding of the terms, 0x-prefixed hex
func (t *CampaignTerms) Hash() (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to marshal terms: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize terms: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return "0x" + hex.EncodeToString(sum[:]), nil
}

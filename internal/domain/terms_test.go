package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patronly/boost-ledger/internal/domain"
)

func validTerms() domain.CampaignTerms {
	return domain.CampaignTerms{
		SponsorName:  "Acme Corp",
		Objective:    "Promote the spring collection",
		Deliverables: []string{"3 posts", "1 video"},
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-31",
		Disclosure:   "Paid partnership",
	}
}

func TestCampaignTermsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CampaignTerms)
		field  string
	}{
		{"empty sponsor name", func(tm *domain.CampaignTerms) { tm.SponsorName = "  " }, "sponsor_name"},
		{"empty objective", func(tm *domain.CampaignTerms) { tm.Objective = "" }, "objective"},
		{"no deliverables", func(tm *domain.CampaignTerms) { tm.Deliverables = nil }, "deliverables"},
		{"blank deliverable", func(tm *domain.CampaignTerms) { tm.Deliverables = []string{"posts", " "} }, "deliverables"},
		{"bad start date", func(tm *domain.CampaignTerms) { tm.StartDate = "03/01/2026" }, "start_date"},
		{"bad end date", func(tm *domain.CampaignTerms) { tm.EndDate = "soon" }, "end_date"},
		{"start after end", func(tm *domain.CampaignTerms) { tm.StartDate = "2026-04-01" }, "start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := validTerms()
			tt.mutate(&terms)

			err := terms.Validate()
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	t.Run("valid terms pass", func(t *testing.T) {
		terms := validTerms()
		assert.NoError(t, terms.Validate())
	})

	t.Run("single day campaign is valid", func(t *testing.T) {
		terms := validTerms()
		terms.StartDate = "2026-03-15"
		terms.EndDate = "2026-03-15"
		assert.NoError(t, terms.Validate())
	})

	t.Run("missing disclosure is valid", func(t *testing.T) {
		terms := validTerms()
		terms.Disclosure = ""
		assert.NoError(t, terms.Validate())
	})
}

func TestCampaignTermsCanonicalize(t *testing.T) {
	terms := domain.CampaignTerms{
		SponsorName:  "  Acme Corp\t",
		Objective:    " Promote ",
		Deliverables: []string{" 3 posts ", "1 video\n"},
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-31",
		Disclosure:   " Paid partnership ",
	}
	terms.Canonicalize()

	assert.Equal(t, "Acme Corp", terms.SponsorName)
	assert.Equal(t, "Promote", terms.Objective)
	assert.Equal(t, []string{"3 posts", "1 video"}, terms.Deliverables)
	assert.Equal(t, "Paid partnership", terms.Disclosure)
}

func TestCampaignTermsHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := validTerms()
		b := validTerms()

		hashA, err := a.Hash()
		require.NoError(t, err)
		hashB, err := b.Hash()
		require.NoError(t, err)

		assert.Equal(t, hashA, hashB)
		assert.True(t, strings.HasPrefix(hashA, "0x"))
		assert.Len(t, hashA, 66)
	})

	t.Run("whitespace insensitive after canonicalization", func(t *testing.T) {
		a := validTerms()
		b := validTerms()
		b.SponsorName = "  " + b.SponsorName + " "
		b.Canonicalize()

		hashA, err := a.Hash()
		require.NoError(t, err)
		hashB, err := b.Hash()
		require.NoError(t, err)

		assert.Equal(t, hashA, hashB)
	})

	t.Run("content change produces a different hash", func(t *testing.T) {
		a := validTerms()
		b := validTerms()
		b.Objective = "Promote the autumn collection"

		hashA, err := a.Hash()
		require.NoError(t, err)
		hashB, err := b.Hash()
		require.NoError(t, err)

		assert.NotEqual(t, hashA, hashB)
	})

	t.Run("deliverable order is significant", func(t *testing.T) {
		a := validTerms()
		b := validTerms()
		b.Deliverables = []string{"1 video", "3 posts"}

		hashA, err := a.Hash()
		require.NoError(t, err)
		hashB, err := b.Hash()
		require.NoError(t, err)

		assert.NotEqual(t, hashA, hashB)
	})
}

// Package ledger implements the write path: validated submission of
// speculative deposits, immediate pending persistence, confirmation
// scheduling, and the initial activity feed projection.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/projector"
	"github.com/patronly/boost-ledger/internal/providers/temporal"
	"github.com/patronly/boost-ledger/internal/store"
	"github.com/patronly/boost-ledger/internal/store/schema"
	"github.com/patronly/boost-ledger/internal/workflows"
)

// Config holds the ledger writer configuration
type Config struct {
	// TaskQueue is the Temporal task queue confirmation workflows run on
	TaskQueue string
	// AssetSymbol is the display symbol attached to activity amounts
	AssetSymbol string
}

// Writer defines the ledger write path
//
//go:generate mockgen -source=writer.go -destination=../mocks/writer.go -package=mocks -mock_names=Writer=MockWriter
type Writer interface {
	// Submit validates and records a speculative deposit as pending,
	// schedules its confirmation, and projects a pending activity event.
	// Invalid input is rejected with a domain.ValidationError and nothing
	// is persisted.
	Submit(ctx context.Context, input domain.SubmitInput) (*schema.TransactionRecord, error)

	// SubmitCampaign is the richer sponsor-deposit path: campaign terms
	// are validated, canonicalized, and content-addressed before the
	// receipt is recorded under the same ledger contract.
	SubmitCampaign(ctx context.Context, input domain.CampaignSubmitInput) (*schema.CampaignReceipt, error)
}

type writer struct {
	config       Config
	store        store.Store
	projector    projector.Projector
	orchestrator temporal.TemporalOrchestrator
}

// NewWriter creates a new ledger writer
func NewWriter(cfg Config, st store.Store, proj projector.Projector, orchestrator temporal.TemporalOrchestrator) Writer {
	if cfg.AssetSymbol == "" {
		cfg.AssetSymbol = "ETH"
	}
	return &writer{
		config:       cfg,
		store:        st,
		projector:    proj,
		orchestrator: orchestrator,
	}
}

// Submit validates and records a speculative deposit as pending
func (w *writer) Submit(ctx context.Context, input domain.SubmitInput) (*schema.TransactionRecord, error) {
	if err := validateSubmitInput(&input); err != nil {
		return nil, err
	}

	record, err := w.store.CreateTransactionRecord(ctx, store.CreateTransactionRecordInput{
		Kind:      input.Kind,
		Wallet:    input.Wallet,
		CreatorID: input.CreatorID,
		PostID:    input.PostID,
		AssetsWei: input.AssetsWei,
		TxHash:    input.TxHash,
		ChainID:   input.ChainID,
	})
	if err != nil {
		return nil, err
	}

	ref := domain.RecordRef{Source: domain.SourceTransactionRecord, ID: record.ID}
	w.scheduleConfirmation(ctx, ref)
	w.projectPending(ctx, w.buildActivityInput(ctx, record))

	return record, nil
}

// SubmitCampaign records a sponsor deposit together with its campaign terms
func (w *writer) SubmitCampaign(ctx context.Context, input domain.CampaignSubmitInput) (*schema.CampaignReceipt, error) {
	if input.Kind != domain.KindSponsorDeposit {
		return nil, domain.NewValidationError("kind", "campaign submissions must be sponsor deposits")
	}
	if err := validateSubmitInput(&input.SubmitInput); err != nil {
		return nil, err
	}

	input.Terms.Canonicalize()
	if err := input.Terms.Validate(); err != nil {
		return nil, err
	}

	termsHash, err := input.Terms.Hash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash campaign terms: %w", err)
	}
	if input.TermsHash != "" && input.TermsHash != termsHash {
		return nil, domain.ErrTermsHashMismatch
	}

	deliverables, err := json.Marshal(input.Terms.Deliverables)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deliverables: %w", err)
	}

	receipt, err := w.store.CreateCampaignReceipt(ctx, store.CreateCampaignReceiptInput{
		CreateTransactionRecordInput: store.CreateTransactionRecordInput{
			Kind:      input.Kind,
			Wallet:    input.Wallet,
			CreatorID: input.CreatorID,
			PostID:    input.PostID,
			AssetsWei: input.AssetsWei,
			TxHash:    input.TxHash,
			ChainID:   input.ChainID,
		},
		SponsorName:  input.Terms.SponsorName,
		Objective:    input.Terms.Objective,
		Deliverables: deliverables,
		StartDate:    input.Terms.StartDate,
		EndDate:      input.Terms.EndDate,
		Disclosure:   input.Terms.Disclosure,
		TermsHash:    termsHash,
	})
	if err != nil {
		return nil, err
	}

	ref := domain.RecordRef{Source: domain.SourceCampaignReceipt, ID: receipt.ID}
	w.scheduleConfirmation(ctx, ref)

	subtitle := receipt.SponsorName
	w.projectPending(ctx, store.UpsertActivityEventInput{
		Wallet:      receipt.Wallet,
		ChainID:     receipt.ChainID,
		TxHash:      receipt.TxHash,
		Kind:        receipt.Kind,
		Status:      domain.StatusPending,
		Title:       "Sponsored a campaign",
		Subtitle:    &subtitle,
		Href:        fmt.Sprintf("/campaigns/%d", receipt.ID),
		AmountWei:   &receipt.AssetsWei,
		AssetSymbol: &w.config.AssetSymbol,
	})

	return receipt, nil
}

// validateSubmitInput rejects malformed submissions and normalizes addresses
// and the tx hash in place. Nothing is persisted on failure.
func validateSubmitInput(input *domain.SubmitInput) error {
	if !domain.IsValidKind(input.Kind) {
		return domain.NewValidationError("kind", fmt.Sprintf("unrecognized deposit kind %q", input.Kind))
	}
	if !domain.ValidAddress(input.Wallet) {
		return domain.NewValidationError("wallet", "not a valid address")
	}
	if input.CreatorID != nil && !domain.ValidAddress(*input.CreatorID) {
		return domain.NewValidationError("creatorId", "not a valid address")
	}
	if domain.ParsePositiveWei(input.AssetsWei) == nil {
		return domain.NewValidationError("assetsWei", "must be a positive integer amount")
	}
	if !domain.ValidTxHash(input.TxHash) {
		return domain.NewValidationError("txHash", "not a valid transaction hash")
	}

	input.Wallet = domain.NormalizeAddress(input.Wallet)
	if input.CreatorID != nil {
		normalized := domain.NormalizeAddress(*input.CreatorID)
		input.CreatorID = &normalized
	}
	input.TxHash = domain.NormalizeTxHash(input.TxHash)

	return nil
}

// scheduleConfirmation enqueues one confirmation workflow for the record.
// Scheduling is fire-and-forget relative to the caller: the record is already
// persisted, and the retry sweeper repairs any record whose task never ran.
func (w *writer) scheduleConfirmation(ctx context.Context, ref domain.RecordRef) {
	wf := workflows.NewWorkerCore(nil)
	opt := client.StartWorkflowOptions{
		ID:                    workflows.ConfirmWorkflowID(ref),
		TaskQueue:             w.config.TaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	if _, err := w.orchestrator.ExecuteWorkflow(ctx, opt, wf.ConfirmDeposit, ref); err != nil {
		logger.WarnCtx(ctx, "Failed to schedule confirmation workflow",
			zap.String("source", string(ref.Source)),
			zap.Int64("recordID", ref.ID),
			zap.Error(err))
	}
}

// projectPending upserts the initial pending activity event. The feed is a
// best-effort projection, so failures are logged and swallowed.
func (w *writer) projectPending(ctx context.Context, input store.UpsertActivityEventInput) {
	if _, err := w.projector.Upsert(ctx, input); err != nil {
		logger.WarnCtx(ctx, "Failed to project pending activity event",
			zap.String("txHash", input.TxHash),
			zap.Error(err))
	}
}

// buildActivityInput derives kind-specific display text for a transaction
// record's feed entry
func (w *writer) buildActivityInput(ctx context.Context, record *schema.TransactionRecord) store.UpsertActivityEventInput {
	input := store.UpsertActivityEventInput{
		Wallet:      record.Wallet,
		ChainID:     record.ChainID,
		TxHash:      record.TxHash,
		Kind:        record.Kind,
		Status:      domain.StatusPending,
		Href:        "/tx/" + record.TxHash,
		AmountWei:   &record.AssetsWei,
		AssetSymbol: &w.config.AssetSymbol,
	}

	switch record.Kind {
	case domain.KindBoostDeposit:
		input.Title = "Boosted a post"
		if record.CreatorID != nil {
			subtitle := "Creator " + *record.CreatorID
			input.Subtitle = &subtitle
		}
		if record.PostID != nil {
			input.Href = "/posts/" + *record.PostID
		}
	case domain.KindSponsorDeposit:
		input.Title = "Sponsored a campaign"
		// A campaign receipt recorded under the same tx hash carries the
		// sponsor-facing display text
		if receipt, err := w.store.GetCampaignReceiptByTxHash(ctx, record.TxHash); err == nil && receipt != nil {
			subtitle := receipt.SponsorName
			input.Subtitle = &subtitle
			input.Href = fmt.Sprintf("/campaigns/%d", receipt.ID)
		} else if record.CreatorID != nil {
			subtitle := "Creator " + *record.CreatorID
			input.Subtitle = &subtitle
		}
	case domain.KindYieldDeposit:
		input.Title = "Deposited into the yield vault"
	}

	return input
}

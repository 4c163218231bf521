package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/mocks"
	"github.com/patronly/boost-ledger/internal/workflows"
)

const (
	testWallet = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
	testTxHash = "0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890"
)

// ConfirmDepositWorkflowTestSuite is the test suite for deposit confirmation
// workflow tests
type ConfirmDepositWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *ConfirmDepositWorkflowTestSuite) SetupTest() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor)
}

// TearDownTest is called after each test
func (s *ConfirmDepositWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestConfirmDepositWorkflowTestSuite runs the test suite
func TestConfirmDepositWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ConfirmDepositWorkflowTestSuite))
}

func (s *ConfirmDepositWorkflowTestSuite) pendingRef() domain.RecordRef {
	return domain.RecordRef{Source: domain.SourceTransactionRecord, ID: 7}
}

func (s *ConfirmDepositWorkflowTestSuite) pendingRecord() *domain.LedgerRecord {
	return &domain.LedgerRecord{
		Ref:       s.pendingRef(),
		Kind:      domain.KindBoostDeposit,
		Wallet:    testWallet,
		AssetsWei: "1000000000000000000",
		TxHash:    testTxHash,
		ChainID:   8453,
		Status:    domain.StatusPending,
	}
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_Success() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(s.pendingRecord(), nil)

	s.env.OnActivity(s.executor.WaitForReceipt, mock.Anything, workflows.WaitForReceiptInput{
		TxHash:  testTxHash,
		Timeout: workflows.ReceiptWaitTimeout,
	}).Return(&workflows.ReceiptResult{Reverted: false, BlockNumber: 1234}, nil)

	s.env.OnActivity(s.executor.GetBlockTimestamp, mock.Anything, uint64(1234)).
		Return("2026-05-12T10:30:00Z", nil)

	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.MatchedBy(func(input workflows.FinalizeRecordInput) bool {
		return input.Ref == ref &&
			input.Result.Status == domain.StatusConfirmed &&
			input.Result.L2BlockNumber != nil && *input.Result.L2BlockNumber == 1234 &&
			input.Result.L2TimestampIso != nil && *input.Result.L2TimestampIso == "2026-05-12T10:30:00Z"
	})).Return(true, nil)

	s.env.OnActivity(s.executor.MirrorActivityStatus, mock.Anything, workflows.MirrorActivityStatusInput{
		TxHash: testTxHash,
		Status: domain.StatusConfirmed,
	}).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_RevertedReceiptMarksFailed() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(s.pendingRecord(), nil)

	s.env.OnActivity(s.executor.WaitForReceipt, mock.Anything, mock.Anything).
		Return(&workflows.ReceiptResult{Reverted: true, BlockNumber: 1234}, nil)

	s.env.OnActivity(s.executor.GetBlockTimestamp, mock.Anything, uint64(1234)).
		Return("2026-05-12T10:30:00Z", nil)

	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.MatchedBy(func(input workflows.FinalizeRecordInput) bool {
		return input.Result.Status == domain.StatusFailed &&
			input.Result.L2BlockNumber != nil && *input.Result.L2BlockNumber == 1234
	})).Return(true, nil)

	s.env.OnActivity(s.executor.MirrorActivityStatus, mock.Anything, workflows.MirrorActivityStatusInput{
		TxHash: testTxHash,
		Status: domain.StatusFailed,
	}).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

// A chain poll failure (timeout or RPC error) resolves the record to failed
// permanently. The poll runs with a single attempt and the sweeper only
// re-targets pending rows, so the record is never retried.
func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_ChainPollFailureIsPermanent() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(s.pendingRecord(), nil)

	s.env.OnActivity(s.executor.WaitForReceipt, mock.Anything, mock.Anything).
		Return(nil, errors.New("receipt not found within timeout"))

	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.MatchedBy(func(input workflows.FinalizeRecordInput) bool {
		// No block metadata on an unresolved poll
		return input.Ref == ref &&
			input.Result.Status == domain.StatusFailed &&
			input.Result.L2BlockNumber == nil &&
			input.Result.L2TimestampIso == nil
	})).Return(true, nil)

	s.env.OnActivity(s.executor.MirrorActivityStatus, mock.Anything, workflows.MirrorActivityStatusInput{
		TxHash: testTxHash,
		Status: domain.StatusFailed,
	}).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	// The workflow itself completes cleanly; failure is a record outcome,
	// not a workflow error
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_MissingRecordIsNoop() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(nil, nil)

	// No chain poll, finalize, or mirror

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_TerminalRecordIsNoop() {
	ref := s.pendingRef()
	record := s.pendingRecord()
	record.Status = domain.StatusConfirmed

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(record, nil)

	// Redundant scheduling of a terminal record never touches the chain or
	// the stored status

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_MalformedTxHashFailsWithoutChainCall() {
	ref := s.pendingRef()
	record := s.pendingRecord()
	record.TxHash = "not-a-hash"

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(record, nil)

	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.MatchedBy(func(input workflows.FinalizeRecordInput) bool {
		return input.Result.Status == domain.StatusFailed && input.Result.L2BlockNumber == nil
	})).Return(true, nil)

	s.env.OnActivity(s.executor.MirrorActivityStatus, mock.Anything, workflows.MirrorActivityStatusInput{
		TxHash: "not-a-hash",
		Status: domain.StatusFailed,
	}).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_ConcurrentFinalizeSkipsMirror() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(s.pendingRecord(), nil)

	s.env.OnActivity(s.executor.WaitForReceipt, mock.Anything, mock.Anything).
		Return(&workflows.ReceiptResult{Reverted: false, BlockNumber: 1234}, nil)

	s.env.OnActivity(s.executor.GetBlockTimestamp, mock.Anything, uint64(1234)).
		Return("2026-05-12T10:30:00Z", nil)

	// Another attempt finalized the record first; the feed must not be
	// mirrored again
	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.Anything).
		Return(false, nil)

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_TimestampFailureIsBestEffort() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(s.pendingRecord(), nil)

	s.env.OnActivity(s.executor.WaitForReceipt, mock.Anything, mock.Anything).
		Return(&workflows.ReceiptResult{Reverted: false, BlockNumber: 1234}, nil)

	s.env.OnActivity(s.executor.GetBlockTimestamp, mock.Anything, uint64(1234)).
		Return("", errors.New("rpc unavailable"))

	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.MatchedBy(func(input workflows.FinalizeRecordInput) bool {
		return input.Result.Status == domain.StatusConfirmed &&
			input.Result.L2BlockNumber != nil &&
			input.Result.L2TimestampIso == nil
	})).Return(true, nil)

	s.env.OnActivity(s.executor.MirrorActivityStatus, mock.Anything, mock.Anything).
		Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_MirrorFailureDoesNotFailWorkflow() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(s.pendingRecord(), nil)

	s.env.OnActivity(s.executor.WaitForReceipt, mock.Anything, mock.Anything).
		Return(&workflows.ReceiptResult{Reverted: false, BlockNumber: 1234}, nil)

	s.env.OnActivity(s.executor.GetBlockTimestamp, mock.Anything, uint64(1234)).
		Return("2026-05-12T10:30:00Z", nil)

	s.env.OnActivity(s.executor.FinalizeRecord, mock.Anything, mock.Anything).
		Return(true, nil)

	s.env.OnActivity(s.executor.MirrorActivityStatus, mock.Anything, mock.Anything).
		Return(errors.New("feed unavailable"))

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmDeposit_GetRecordErrorPropagates() {
	ref := s.pendingRef()

	s.env.OnActivity(s.executor.GetLedgerRecord, mock.Anything, ref).
		Return(nil, errors.New("database unavailable"))

	s.env.ExecuteWorkflow(s.workerCore.ConfirmDeposit, ref)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *ConfirmDepositWorkflowTestSuite) TestConfirmWorkflowID() {
	s.Equal("confirm-transaction_record-7", workflows.ConfirmWorkflowID(s.pendingRef()))
	s.Equal("confirm-campaign_receipt-12", workflows.ConfirmWorkflowID(domain.RecordRef{
		Source: domain.SourceCampaignReceipt,
		ID:     12,
	}))
}

package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"

	"github.com/patronly/boost-ledger/internal/domain"
)

// WorkerCore defines the confirmation workflows run by the reconciliation worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// ConfirmDeposit reconciles a pending ledger record against the chain
	// and writes its terminal state. Safe to invoke any number of times
	// for the same ref.
	ConfirmDeposit(ctx workflow.Context, ref domain.RecordRef) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{executor: executor}
}

// ConfirmWorkflowID builds the deterministic workflow ID for a confirmation
// task. Writer and sweeper both use it, so redundant scheduling of the same
// record collapses onto one execution when possible.
func ConfirmWorkflowID(ref domain.RecordRef) string {
	return fmt.Sprintf("confirm-%s-%d", ref.Source, ref.ID)
}

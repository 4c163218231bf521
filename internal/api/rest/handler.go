package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patronly/boost-ledger/internal/api/shared/dto"
	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/ledger"
	"github.com/patronly/boost-ledger/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitDeposit records a speculative vault deposit (requires authentication)
	// POST /api/v1/deposits
	SubmitDeposit(c *gin.Context)

	// SubmitCampaign records a sponsor deposit with campaign terms (requires authentication)
	// POST /api/v1/campaigns
	SubmitCampaign(c *gin.Context)

	// GetDeposit retrieves a single transaction record by ID
	// GET /api/v1/deposits/:id
	GetDeposit(c *gin.Context)

	// ListDeposits retrieves transaction records with optional filters
	// GET /api/v1/deposits?wallet=<address>&kind=<kind>&status=<status>&limit=<limit>&offset=<offset>
	ListDeposits(c *gin.Context)

	// GetCampaign retrieves a single campaign receipt by ID
	// GET /api/v1/campaigns/:id
	GetCampaign(c *gin.Context)

	// ListCampaigns retrieves campaign receipts with optional filters
	// GET /api/v1/campaigns?wallet=<address>&status=<status>&limit=<limit>&offset=<offset>
	ListCampaigns(c *gin.Context)

	// ListActivity retrieves the activity feed, newest first
	// GET /api/v1/activity?wallet=<address>&kind=<kind>&limit=<limit>&offset=<offset>
	ListActivity(c *gin.Context)

	// GetLeaderboard retrieves the latest leaderboard snapshot
	// GET /api/v1/leaderboard
	GetLeaderboard(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store  store.Store
	writer ledger.Writer
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, writer ledger.Writer) Handler {
	return &handler{
		store:  st,
		writer: writer,
	}
}

// SubmitDeposit records a speculative vault deposit
func (h *handler) SubmitDeposit(c *gin.Context) {
	var input domain.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	record, err := h.writer.Submit(c.Request.Context(), input)
	if err != nil {
		respondSubmitError(c, err, "Failed to submit deposit")
		return
	}

	c.JSON(http.StatusCreated, dto.FromTransactionRecord(record))
}

// SubmitCampaign records a sponsor deposit with campaign terms
func (h *handler) SubmitCampaign(c *gin.Context) {
	var input domain.CampaignSubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	receipt, err := h.writer.SubmitCampaign(c.Request.Context(), input)
	if err != nil {
		respondSubmitError(c, err, "Failed to submit campaign")
		return
	}

	c.JSON(http.StatusCreated, dto.FromCampaignReceipt(receipt))
}

// respondSubmitError maps ledger writer errors onto HTTP responses
func respondSubmitError(c *gin.Context, err error, message string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondValidationError(c, validationErr.Error())
	case errors.Is(err, domain.ErrTermsHashMismatch):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateTxHash):
		respondConflict(c, "Transaction hash already recorded")
	default:
		respondInternalError(c, err, message)
	}
}

// GetDeposit retrieves a single transaction record by ID
func (h *handler) GetDeposit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid deposit ID")
		return
	}

	record, err := h.store.GetTransactionRecordByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get deposit")
		return
	}

	if record == nil {
		respondNotFound(c, "Deposit not found")
		return
	}

	c.JSON(http.StatusOK, dto.FromTransactionRecord(record))
}

// ListDeposits retrieves transaction records with optional filters
func (h *handler) ListDeposits(c *gin.Context) {
	queryParams, err := ParseListDepositsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	records, total, err := h.store.ListTransactionRecords(c.Request.Context(), queryParams.Filter())
	if err != nil {
		respondInternalError(c, err, "Failed to list deposits")
		return
	}

	items := make([]dto.DepositResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.FromTransactionRecord(&records[i]))
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.DepositResponse]{
		Items:  items,
		Total:  total,
		Limit:  queryParams.Limit,
		Offset: queryParams.Offset,
	})
}

// GetCampaign retrieves a single campaign receipt by ID
func (h *handler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid campaign ID")
		return
	}

	receipt, err := h.store.GetCampaignReceiptByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get campaign")
		return
	}

	if receipt == nil {
		respondNotFound(c, "Campaign not found")
		return
	}

	c.JSON(http.StatusOK, dto.FromCampaignReceipt(receipt))
}

// ListCampaigns retrieves campaign receipts with optional filters
func (h *handler) ListCampaigns(c *gin.Context) {
	queryParams, err := ParseListDepositsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	receipts, total, err := h.store.ListCampaignReceipts(c.Request.Context(), queryParams.Filter())
	if err != nil {
		respondInternalError(c, err, "Failed to list campaigns")
		return
	}

	items := make([]dto.CampaignResponse, 0, len(receipts))
	for i := range receipts {
		items = append(items, dto.FromCampaignReceipt(&receipts[i]))
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.CampaignResponse]{
		Items:  items,
		Total:  total,
		Limit:  queryParams.Limit,
		Offset: queryParams.Offset,
	})
}

// ListActivity retrieves the activity feed, newest first
func (h *handler) ListActivity(c *gin.Context) {
	queryParams, err := ParseListActivityQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	events, total, err := h.store.ListActivityEvents(c.Request.Context(), queryParams.Filter())
	if err != nil {
		respondInternalError(c, err, "Failed to list activity")
		return
	}

	items := make([]dto.ActivityEventResponse, 0, len(events))
	for i := range events {
		items = append(items, dto.FromActivityEvent(&events[i]))
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.ActivityEventResponse]{
		Items:  items,
		Total:  total,
		Limit:  queryParams.Limit,
		Offset: queryParams.Offset,
	})
}

// GetLeaderboard retrieves the latest leaderboard snapshot
func (h *handler) GetLeaderboard(c *gin.Context) {
	snapshot, err := h.store.GetLatestLeaderboardSnapshot(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get leaderboard")
		return
	}

	c.JSON(http.StatusOK, dto.FromLeaderboardSnapshot(snapshot))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "boost-ledger-api",
	})
}

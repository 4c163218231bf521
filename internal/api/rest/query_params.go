package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/store"
)

const MAX_PAGE_SIZE = 100

// ListDepositsQueryParams holds query parameters for GET /deposits and
// GET /campaigns
type ListDepositsQueryParams struct {
	// Filters
	Wallet string `form:"wallet"`
	Kind   string `form:"kind"`
	Status string `form:"status"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ListActivityQueryParams holds query parameters for GET /activity
type ListActivityQueryParams struct {
	// Filters
	Wallet string `form:"wallet"`
	Kind   string `form:"kind"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListDepositsQuery parses query parameters for GET /deposits
func ParseListDepositsQuery(c *gin.Context) (*ListDepositsQueryParams, error) {
	var params ListDepositsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}

	return &params, nil
}

// Validate checks the filter values
func (p *ListDepositsQueryParams) Validate() error {
	if p.Wallet != "" && !domain.ValidAddress(p.Wallet) {
		return fmt.Errorf("invalid wallet address: %s", p.Wallet)
	}
	if p.Kind != "" && !domain.IsValidKind(domain.DepositKind(p.Kind)) {
		return fmt.Errorf("invalid kind: %s", p.Kind)
	}
	if p.Status != "" && !domain.IsValidStatus(domain.Status(p.Status)) {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	return nil
}

// Filter converts the parsed query into a store filter
func (p *ListDepositsQueryParams) Filter() store.RecordQueryFilter {
	filter := store.RecordQueryFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if p.Wallet != "" {
		wallet := domain.NormalizeAddress(p.Wallet)
		filter.Wallet = &wallet
	}
	if p.Kind != "" {
		kind := domain.DepositKind(p.Kind)
		filter.Kind = &kind
	}
	if p.Status != "" {
		status := domain.Status(p.Status)
		filter.Status = &status
	}
	return filter
}

// ParseListActivityQuery parses query parameters for GET /activity
func ParseListActivityQuery(c *gin.Context) (*ListActivityQueryParams, error) {
	var params ListActivityQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}

	return &params, nil
}

// Validate checks the filter values
func (p *ListActivityQueryParams) Validate() error {
	if p.Wallet != "" && !domain.ValidAddress(p.Wallet) {
		return fmt.Errorf("invalid wallet address: %s", p.Wallet)
	}
	if p.Kind != "" && !domain.IsValidKind(domain.DepositKind(p.Kind)) {
		return fmt.Errorf("invalid kind: %s", p.Kind)
	}
	return nil
}

// Filter converts the parsed query into a store filter
func (p *ListActivityQueryParams) Filter() store.ActivityQueryFilter {
	filter := store.ActivityQueryFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if p.Wallet != "" {
		wallet := domain.NormalizeAddress(p.Wallet)
		filter.Wallet = &wallet
	}
	if p.Kind != "" {
		kind := domain.DepositKind(p.Kind)
		filter.Kind = &kind
	}
	return filter
}

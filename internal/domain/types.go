package domain

import (
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DepositKind represents the kind of speculative deposit recorded in the ledger
type DepositKind string

const (
	KindBoostDeposit   DepositKind = "boost-deposit"
	KindSponsorDeposit DepositKind = "sponsor-deposit"
	KindYieldDeposit   DepositKind = "yield-deposit"
)

// IsValidKind checks if a deposit kind is recognized
func IsValidKind(kind DepositKind) bool {
	return kind == KindBoostDeposit ||
		kind == KindSponsorDeposit ||
		kind == KindYieldDeposit
}

// Status represents the reconciliation state of a ledger record.
// Pending is the only non-terminal state; once a record reaches
// confirmed or failed it never transitions again.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// IsTerminal reports whether the status permits no further transition
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// IsValidStatus checks if a status is recognized
func IsValidStatus(status Status) bool {
	return status == StatusPending || status == StatusConfirmed || status == StatusFailed
}

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// ValidTxHash checks that a transaction hash is 0x-prefixed 32-byte hex
func ValidTxHash(txHash string) bool {
	return txHashPattern.MatchString(txHash)
}

// ValidAddress checks that an address is a well-formed hex address
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress normalizes an address to its EIP-55 checksummed form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X") {
		return common.HexToAddress(address).String()
	}
	return address
}

// NormalizeTxHash lowercases the hex portion of a transaction hash so the
// unique tx_hash index treats mixed-case submissions as the same transaction
func NormalizeTxHash(txHash string) string {
	return strings.ToLower(txHash)
}

// ParseWei parses a decimal string into an arbitrary-precision integer.
// Returns nil if the string is not a plain base-10 integer.
// Amounts are wei-denominated and routinely exceed the float64 integer
// range, so they must never pass through a native numeric type.
func ParseWei(s string) *big.Int {
	if s == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return v
}

// ParsePositiveWei parses a decimal string and requires it to be > 0
func ParsePositiveWei(s string) *big.Int {
	v := ParseWei(s)
	if v == nil || v.Sign() <= 0 {
		return nil
	}
	return v
}

// SubmitInput is the payload accepted by the ledger writer for a generic
// vault deposit
type SubmitInput struct {
	Kind      DepositKind `json:"kind"`
	Wallet    string      `json:"wallet"`
	AssetsWei string      `json:"assets_wei"`
	TxHash    string      `json:"tx_hash"`
	ChainID   uint64      `json:"chain_id"`
	CreatorID *string     `json:"creator_id,omitempty"`
	PostID    *string     `json:"post_id,omitempty"`
}

// ConfirmationResult carries the terminal outcome derived from a chain receipt
type ConfirmationResult struct {
	Status         Status    `json:"status"`
	L2BlockNumber  *uint64   `json:"l2_block_number,omitempty"`
	L2TimestampIso *string   `json:"l2_timestamp_iso,omitempty"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownCrop      = "unknown crop"
	ErrMsgUnknownMachinery = "unknown machinery"

	// Wallet errors
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgInsufficientCrypto = "insufficient crypto"
	ErrMsgAmountTooSmall     = "amount too small for current rate"

	// Inventory errors
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgNothingToSell     = "nothing to sell"
	ErrMsgInvalidQuantity   = "invalid quantity"

	// Plot errors
	ErrMsgPlotOutOfRange = "plot index out of range"
	ErrMsgPlotOccupied   = "plot is occupied"
	ErrMsgPlotEmpty      = "plot is empty"
	ErrMsgNotEligible    = "plot is not eligible for this action"

	// Machinery errors
	ErrMsgNoUnitAvailable   = "no machinery unit available"
	ErrMsgNothingToMaintain = "nothing to maintain"

	// Farm errors
	ErrMsgMaxFarmSize = "farm is already at maximum size"

	// Persistence errors
	ErrMsgSnapshotNotFound = "snapshot not found"
	ErrMsgInvalidSnapshot  = "invalid snapshot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownCrop      = errors.New(ErrMsgUnknownCrop)
	ErrUnknownMachinery = errors.New(ErrMsgUnknownMachinery)

	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientCrypto = errors.New(ErrMsgInsufficientCrypto)
	ErrAmountTooSmall     = errors.New(ErrMsgAmountTooSmall)

	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrNothingToSell     = errors.New(ErrMsgNothingToSell)
	ErrInvalidQuantity   = errors.New(ErrMsgInvalidQuantity)

	ErrPlotOutOfRange = errors.New(ErrMsgPlotOutOfRange)
	ErrPlotOccupied   = errors.New(ErrMsgPlotOccupied)
	ErrPlotEmpty      = errors.New(ErrMsgPlotEmpty)
	ErrNotEligible    = errors.New(ErrMsgNotEligible)

	ErrNoUnitAvailable   = errors.New(ErrMsgNoUnitAvailable)
	ErrNothingToMaintain = errors.New(ErrMsgNothingToMaintain)

	ErrMaxFarmSize = errors.New(ErrMsgMaxFarmSize)

	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)
	ErrInvalidSnapshot  = errors.New(ErrMsgInvalidSnapshot)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

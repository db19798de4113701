package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlotIndex      = "Invalid plot index"
	ErrMsgInvalidWindow         = "Invalid window parameter"
	ErrMsgResetFailed           = "Failed to reset the farm"
)

// Success messages for API responses
const (
	MsgSeedsBought         = "Seeds bought"
	MsgMachineryBought     = "Machinery bought"
	MsgMachinerySold       = "Machinery sold"
	MsgMachineryMaintained = "Machinery maintained"
	MsgMachineryDeployed   = "Machine deployed to the field"
	MsgMachineryRecalled   = "Machine recalled to the garage"
	MsgPlanted             = "Seed planted"
	MsgFertilized          = "Plot fertilized"
	MsgWeeded              = "Plot weeded"
	MsgWatered             = "Plot watered"
	MsgCollectionStarted   = "Collection started"
	MsgHarvested           = "Crop harvested"
	MsgProduceSold         = "Produce sold"
	MsgFarmExpanded        = "Farm expanded"
	MsgCryptoBought        = "Crypto bought"
	MsgCryptoSold          = "Crypto sold"
	MsgFarmReset           = "Farm reset"
)

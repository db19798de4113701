package game

// Log messages
const (
	LogMsgNoSaveStartingFresh = "No usable save, starting a new farm"
	LogMsgSaveLoaded          = "Saved farm loaded"
	LogMsgSaveFailed          = "Failed to save farm"
	LogMsgFlushSkipped        = "Save queue busy, relying on autosave"
	LogMsgPublishFailed       = "Failed to publish event"
	LogMsgTickApplied         = "Automation pass committed"
	LogMsgCommandSkipped      = "Machinery command skipped"
	LogMsgFarmReset           = "Farm reset to a new game"
	LogMsgShutdownFlush       = "Flushing farm before shutdown"
)

// Trade ids are nanoid strings over this alphabet.
const (
	tradeIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	tradeIDLength   = 12
)

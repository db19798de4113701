package domain

// Event type constants published on the event bus after a successful action.
// The type doubles as the sound cue a UI plays for the action.
const (
	EventTypeBuy       = "buy"
	EventTypeSell      = "sell"
	EventTypePlant     = "plant"
	EventTypeFertilize = "fertilize"
	EventTypeWeed      = "weed"
	EventTypeWater     = "water"
	EventTypeCollect   = "collect"
	EventTypeHarvest   = "harvest"
	EventTypeExpand    = "expand"
	EventTypeDeploy    = "deploy"
	EventTypeRecall    = "recall"
	EventTypeMaintain  = "maintain"
	EventTypeReset     = "reset"
)

// Haptic feedback styles attached to feedback events.
const (
	HapticLight  = "light"
	HapticMedium = "medium"
)

// Action sources
const (
	SourcePlayer    = "player"
	SourceMachinery = "machinery"
)

// FeedbackPayload is the payload of every feedback event.
type FeedbackPayload struct {
	Action string `json:"action"`
	Source string `json:"source"`
	Haptic string `json:"haptic,omitempty"`
	SeedID string `json:"seed_id,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Plot   *int   `json:"plot,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Coins  int    `json:"coins"`
	Crypto int    `json:"crypto"`
}

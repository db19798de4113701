package sse

// FeedbackPayload is what a UI needs to play the cue for an action
type FeedbackPayload struct {
	Sound  string `json:"sound"`
	Haptic string `json:"haptic,omitempty"`
	Source string `json:"source"`
	SeedID string `json:"seed_id,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Plot   *int   `json:"plot,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Coins  int    `json:"coins"`
	Crypto int    `json:"crypto"`
}

// StateChangedPayload tells clients to refetch state newer than Revision
type StateChangedPayload struct {
	Revision uint64 `json:"revision"`
	Coins    int    `json:"coins"`
	Crypto   int    `json:"crypto"`
}

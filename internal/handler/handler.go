package handler

import (
	"github.com/osse101/IdleFarm_Go/internal/game"
)

// FarmHandler serves the player operations of the farm service.
type FarmHandler struct {
	svc game.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(svc game.Service) *FarmHandler {
	return &FarmHandler{svc: svc}
}

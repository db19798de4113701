package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// History window bounds for GET /market/history
const (
	DefaultHistoryWindow = time.Hour
	MaxHistoryWindow     = 7 * 24 * time.Hour
)

// CatalogResponse lists the static game data.
type CatalogResponse struct {
	Crops      []domain.CropType      `json:"crops"`
	Machinery  []domain.MachineryType `json:"machinery"`
	Expansions []catalog.FarmSize     `json:"expansions"`
	Economy    catalog.Economy        `json:"economy"`
}

// HandleGetState returns the full game view.
// @Summary Get game state
// @Description Returns the wallet, plots, inventories, machinery pools and current market quote in one consistent read
// @Tags state
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} game.View "Game state"
// @Router /state [get]
func (h *FarmHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.State())
}

// HandleGetPlots returns the derived state of every plot.
// @Summary List plots
// @Description Returns the derived state of every plot
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} growth.State "Plot states"
// @Router /plots [get]
func (h *FarmHandler) HandleGetPlots(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Plots())
}

// HandleGetPlot returns the derived state of one plot.
// @Summary Get plot
// @Description Returns the derived state of one plot
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Success 200 {object} growth.State "Plot state"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Router /plots/{index} [get]
func (h *FarmHandler) HandleGetPlot(w http.ResponseWriter, r *http.Request) {
	idx, ok := plotIndexParam(w, r)
	if !ok {
		return
	}
	st, err := h.svc.PlotState(idx)
	if err != nil {
		respondServiceError(w, r, "Get plot", err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// HandleGetCatalog handles GET /catalog
// @Summary Get catalog
// @Description Lists the crops, machinery kinds, farm sizes and economy settings
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CatalogResponse "Catalog"
// @Router /catalog [get]
func (h *FarmHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.svc.Catalog()
	respondJSON(w, http.StatusOK, CatalogResponse{
		Crops:      cat.Crops(),
		Machinery:  cat.Machinery(),
		Expansions: cat.Expansions(),
		Economy:    cat.Economy(),
	})
}

// HandleGetFarm handles GET /farm
// @Summary Get farm size
// @Description Returns the farm level and the cost of the next expansion
// @Tags farm
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} game.FarmInfo "Farm size"
// @Router /farm [get]
func (h *FarmHandler) HandleGetFarm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.FarmLevel())
}

// HandleGetMachinery returns pool statistics for one machinery kind.
// @Summary Get machinery pools
// @Description Returns garage and field statistics plus the maintenance quote for one kind
// @Tags machinery
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Machinery kind"
// @Success 200 {object} game.MachineryStats "Machinery statistics"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Router /machinery/{kind} [get]
func (h *FarmHandler) HandleGetMachinery(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.MachineryStats(chi.URLParam(r, "kind"))
	if err != nil {
		respondServiceError(w, r, "Get machinery", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// HandleGetRates handles GET /market/rates
// @Summary Get exchange rates
// @Description Returns the buy and sell rate for the current time bucket
// @Tags market
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} market.Rates "Current rates"
// @Router /market/rates [get]
func (h *FarmHandler) HandleGetRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Rates())
}

// HandleGetRateHistory returns the market curve over ?window= (a Go duration, default 1h).
// @Summary Get rate history
// @Description Returns the market curve over a window
// @Tags market
// @Produce json
// @Security ApiKeyAuth
// @Param window query string false "Go duration, at most 168h"
// @Success 200 {array} market.Point "Rate history"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Router /market/history [get]
func (h *FarmHandler) HandleGetRateHistory(w http.ResponseWriter, r *http.Request) {
	window, err := time.ParseDuration(GetOptionalQueryParam(r, "window", DefaultHistoryWindow.String()))
	if err != nil || window <= 0 || window > MaxHistoryWindow {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWindow)
		return
	}
	respondJSON(w, http.StatusOK, h.svc.RateHistory(window))
}

package handler

import (
	"context"
	"net/http"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// BuySeedsRequest is the request body for POST /seeds/buy
type BuySeedsRequest struct {
	SeedID   string `json:"seed_id" validate:"required,resource_id"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=10000"`
}

// MachineryRequest names a machinery kind. Quantity defaults to 1 for buy and sell.
type MachineryRequest struct {
	Kind     string `json:"kind" validate:"required,resource_id"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1,max=1000"`
}

// PlantRequest is the request body for POST /plots/{index}/plant
type PlantRequest struct {
	SeedID string `json:"seed_id" validate:"required,resource_id"`
}

// SellProduceRequest sells from the barn. A zero quantity sells all of the crop.
type SellProduceRequest struct {
	SeedID   string `json:"seed_id" validate:"required,resource_id"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type BuyCryptoRequest struct {
	Coins int `json:"coins" validate:"required,min=1"`
}

type SellCryptoRequest struct {
	Amount int `json:"amount" validate:"required,min=1"`
}

// AmountResponse reports the coins spent or refunded by an operation.
type AmountResponse struct {
	Message string `json:"message"`
	Amount  int    `json:"amount"`
}

// HarvestResponse names the crop moved into the barn.
type HarvestResponse struct {
	Message string `json:"message"`
	SeedID  string `json:"seed_id"`
}

func quantityOrOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func amountResponse(msg string) func(int) interface{} {
	return func(n int) interface{} {
		return AmountResponse{Message: msg, Amount: n}
	}
}

func dataResponse[T any](msg string) func(T) interface{} {
	return func(v T) interface{} {
		return DataResponse{Message: msg, Data: v}
	}
}

func success(msg string) func(struct{}) interface{} {
	return func(struct{}) interface{} {
		return SuccessResponse{Message: msg}
	}
}

// HandleBuySeeds handles POST /seeds/buy
// @Summary Buy seeds
// @Description Buys seeds into the warehouse
// @Tags seeds
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BuySeedsRequest true "Request body"
// @Success 200 {object} AmountResponse "Seeds bought"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /seeds/buy [post]
func (h *FarmHandler) HandleBuySeeds(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Buy seeds",
		func(ctx context.Context, req BuySeedsRequest) (int, error) {
			return h.svc.BuySeeds(ctx, req.SeedID, req.Quantity)
		},
		amountResponse(MsgSeedsBought))
}

// HandleBuyMachinery handles POST /machinery/buy
// @Summary Buy machinery
// @Description Buys units into the garage. Quantity defaults to 1
// @Tags machinery
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body MachineryRequest true "Request body"
// @Success 200 {object} AmountResponse "Machinery bought"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /machinery/buy [post]
func (h *FarmHandler) HandleBuyMachinery(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Buy machinery",
		func(ctx context.Context, req MachineryRequest) (int, error) {
			return h.svc.BuyMachinery(ctx, req.Kind, quantityOrOne(req.Quantity))
		},
		amountResponse(MsgMachineryBought))
}

// HandleSellMachinery handles POST /machinery/sell
// @Summary Sell machinery
// @Description Sells garage units for a partial refund. Quantity defaults to 1
// @Tags machinery
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body MachineryRequest true "Request body"
// @Success 200 {object} AmountResponse "Machinery sold"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /machinery/sell [post]
func (h *FarmHandler) HandleSellMachinery(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Sell machinery",
		func(ctx context.Context, req MachineryRequest) (int, error) {
			return h.svc.SellMachinery(ctx, req.Kind, quantityOrOne(req.Quantity))
		},
		amountResponse(MsgMachinerySold))
}

// HandleMaintain handles POST /machinery/maintain
// @Summary Maintain machinery
// @Description Refuels and repairs every unit of a kind
// @Tags machinery
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body MachineryRequest true "Request body"
// @Success 200 {object} AmountResponse "Machinery maintained"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /machinery/maintain [post]
func (h *FarmHandler) HandleMaintain(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Maintain machinery",
		func(ctx context.Context, req MachineryRequest) (int, error) {
			return h.svc.Maintain(ctx, req.Kind)
		},
		amountResponse(MsgMachineryMaintained))
}

// HandleDeploy handles POST /machinery/deploy
// @Summary Deploy a machine
// @Description Moves one unit from the garage to the field
// @Tags machinery
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body MachineryRequest true "Request body"
// @Success 200 {object} SuccessResponse "Machine deployed"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /machinery/deploy [post]
func (h *FarmHandler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Deploy machinery",
		func(ctx context.Context, req MachineryRequest) (struct{}, error) {
			return struct{}{}, h.svc.Deploy(ctx, req.Kind)
		},
		success(MsgMachineryDeployed))
}

// HandleRecall handles POST /machinery/recall
// @Summary Recall a machine
// @Description Moves one unit from the field back to the garage
// @Tags machinery
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body MachineryRequest true "Request body"
// @Success 200 {object} SuccessResponse "Machine recalled"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /machinery/recall [post]
func (h *FarmHandler) HandleRecall(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Recall machinery",
		func(ctx context.Context, req MachineryRequest) (struct{}, error) {
			return struct{}{}, h.svc.Recall(ctx, req.Kind)
		},
		success(MsgMachineryRecalled))
}

// HandlePlant handles POST /plots/{index}/plant
// @Summary Plant a seed
// @Description Plants one seed from the warehouse on an empty plot
// @Tags plots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Param request body PlantRequest true "Request body"
// @Success 200 {object} SuccessResponse "Seed planted"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plots/{index}/plant [post]
func (h *FarmHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	idx, ok := plotIndexParam(w, r)
	if !ok {
		return
	}
	handleAction(w, r, "Plant",
		func(ctx context.Context, req PlantRequest) (struct{}, error) {
			return struct{}{}, h.svc.Plant(ctx, idx, req.SeedID)
		},
		success(MsgPlanted))
}

// HandleFertilize handles POST /plots/{index}/fertilize
// @Summary Fertilize a plot
// @Description Unlocks the second quarter of growth
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Success 200 {object} SuccessResponse "Plot fertilized"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plots/{index}/fertilize [post]
func (h *FarmHandler) HandleFertilize(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Fertilize", MsgFertilized, h.svc.Fertilize)
}

// HandleWeed handles POST /plots/{index}/weed
// @Summary Weed a plot
// @Description Unlocks the third quarter of growth
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Success 200 {object} SuccessResponse "Plot weeded"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plots/{index}/weed [post]
func (h *FarmHandler) HandleWeed(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Weed", MsgWeeded, h.svc.Weed)
}

// HandleWater handles POST /plots/{index}/water
// @Summary Water a plot
// @Description Unlocks the last quarter of growth
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Success 200 {object} SuccessResponse "Plot watered"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plots/{index}/water [post]
func (h *FarmHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Water", MsgWatered, h.svc.Water)
}

// HandleStartCollection handles POST /plots/{index}/collect
// @Summary Start collection
// @Description Starts collecting a fully grown crop
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Success 200 {object} SuccessResponse "Collection started"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plots/{index}/collect [post]
func (h *FarmHandler) HandleStartCollection(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Start collection", MsgCollectionStarted, h.svc.StartCollection)
}

// HandleHarvest handles POST /plots/{index}/harvest
// @Summary Harvest a plot
// @Description Moves a collected crop into the barn and clears the plot
// @Tags plots
// @Produce json
// @Security ApiKeyAuth
// @Param index path integer true "Plot index"
// @Success 200 {object} HarvestResponse "Crop harvested"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plots/{index}/harvest [post]
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	idx, ok := plotIndexParam(w, r)
	if !ok {
		return
	}
	seedID, err := h.svc.Harvest(r.Context(), idx)
	if err != nil {
		respondServiceError(w, r, "Harvest", err)
		return
	}
	respondJSON(w, http.StatusOK, HarvestResponse{Message: MsgHarvested, SeedID: seedID})
}

// HandleSellProduce handles POST /barn/sell
// @Summary Sell produce
// @Description Sells one crop from the barn. A zero quantity sells all of it
// @Tags barn
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SellProduceRequest true "Request body"
// @Success 200 {object} DataResponse{data=game.Sale} "Produce sold"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Unknown crop, machinery or plot"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /barn/sell [post]
func (h *FarmHandler) HandleSellProduce(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Sell produce",
		func(ctx context.Context, req SellProduceRequest) (game.Sale, error) {
			return h.svc.SellFromBarn(ctx, req.SeedID, req.Quantity)
		},
		dataResponse[game.Sale](MsgProduceSold))
}

// HandleSellAllProduce handles POST /barn/sell-all
// @Summary Sell all produce
// @Description Sells everything in the barn
// @Tags barn
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse{data=game.Sale} "Produce sold"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /barn/sell-all [post]
func (h *FarmHandler) HandleSellAllProduce(w http.ResponseWriter, r *http.Request) {
	sale, err := h.svc.SellAllFromBarn(r.Context())
	if err != nil {
		respondServiceError(w, r, "Sell all produce", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgProduceSold, Data: sale})
}

// HandleExpand handles POST /farm/expand
// @Summary Expand the farm
// @Description Grows the farm to the next size in the expansion table
// @Tags farm
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse{data=game.Expansion} "Farm expanded"
// @Failure 400 {object} ErrorResponse "Invalid request or rule violation"
// @Failure 409 {object} ErrorResponse "Action not allowed in the current state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /farm/expand [post]
func (h *FarmHandler) HandleExpand(w http.ResponseWriter, r *http.Request) {
	exp, err := h.svc.ExpandFarm(r.Context())
	if err != nil {
		respondServiceError(w, r, "Expand farm", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgFarmExpanded, Data: exp})
}

// HandleBuyCrypto handles POST /market/buy
// @Summary Buy crypto
// @Description Spends coins on crypto at the current buy rate
// @Tags market
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BuyCryptoRequest true "Request body"
// @Success 200 {object} DataResponse{data=domain.Trade} "Crypto bought"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /market/buy [post]
func (h *FarmHandler) HandleBuyCrypto(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Buy crypto",
		func(ctx context.Context, req BuyCryptoRequest) (domain.Trade, error) {
			return h.svc.BuyCrypto(ctx, req.Coins)
		},
		dataResponse[domain.Trade](MsgCryptoBought))
}

// HandleSellCrypto handles POST /market/sell
// @Summary Sell crypto
// @Description Sells crypto for coins at the current sell rate
// @Tags market
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SellCryptoRequest true "Request body"
// @Success 200 {object} DataResponse{data=domain.Trade} "Crypto sold"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /market/sell [post]
func (h *FarmHandler) HandleSellCrypto(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Sell crypto",
		func(ctx context.Context, req SellCryptoRequest) (domain.Trade, error) {
			return h.svc.SellCrypto(ctx, req.Amount)
		},
		dataResponse[domain.Trade](MsgCryptoSold))
}

// HandleReset wipes the saved game and starts over. Development only.
// @Summary Reset the farm
// @Description Deletes the save and starts a new game. Only mounted outside production
// @Tags dev
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SuccessResponse "Farm reset"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dev/reset [post]
func (h *FarmHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error("Reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgResetFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFarmReset})
}

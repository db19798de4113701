package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the player API, mounted by the server under /api/v1.
func (h *FarmHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/state", h.HandleGetState)
	r.Get("/catalog", h.HandleGetCatalog)
	r.Get("/farm", h.HandleGetFarm)
	r.Post("/farm/expand", h.HandleExpand)

	r.Route("/plots", func(r chi.Router) {
		r.Get("/", h.HandleGetPlots)
		r.Route("/{index}", func(r chi.Router) {
			r.Get("/", h.HandleGetPlot)
			r.Post("/plant", h.HandlePlant)
			r.Post("/fertilize", h.HandleFertilize)
			r.Post("/weed", h.HandleWeed)
			r.Post("/water", h.HandleWater)
			r.Post("/collect", h.HandleStartCollection)
			r.Post("/harvest", h.HandleHarvest)
		})
	})

	r.Post("/seeds/buy", h.HandleBuySeeds)

	r.Route("/machinery", func(r chi.Router) {
		r.Get("/{kind}", h.HandleGetMachinery)
		r.Post("/buy", h.HandleBuyMachinery)
		r.Post("/sell", h.HandleSellMachinery)
		r.Post("/maintain", h.HandleMaintain)
		r.Post("/deploy", h.HandleDeploy)
		r.Post("/recall", h.HandleRecall)
	})

	r.Post("/barn/sell", h.HandleSellProduce)
	r.Post("/barn/sell-all", h.HandleSellAllProduce)

	r.Route("/market", func(r chi.Router) {
		r.Get("/rates", h.HandleGetRates)
		r.Get("/history", h.HandleGetRateHistory)
		r.Post("/buy", h.HandleBuyCrypto)
		r.Post("/sell", h.HandleSellCrypto)
	})

	return r
}

// DevRoutes returns developer tools. Only mounted outside production.
func (h *FarmHandler) DevRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/reset", h.HandleReset)
	return r
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/growth"
	"github.com/osse101/IdleFarm_Go/internal/market"
	"github.com/osse101/IdleFarm_Go/internal/savegame"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

var t0 = time.UnixMilli(1_700_000_000_000).UTC()

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) At(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t0.Add(time.Duration(seconds) * time.Second)
}

type testFarm struct {
	svc    game.Service
	clock  *fakeClock
	router http.Handler
}

func newTestFarm(t *testing.T, coins int) *testFarm {
	t.Helper()
	ctx := context.Background()
	cat := catalog.Default()
	codec, err := savegame.NewCodec(cat)
	require.NoError(t, err)

	mgr := savegame.NewManager(codec, store.NewMemory(), "")
	w := cat.NewWorld()
	w.Coins = coins
	require.NoError(t, mgr.Save(ctx, w))

	clock := &fakeClock{now: t0}
	svc := game.NewService(cat, mgr, event.NewMemoryBus(), nil, clock, market.DefaultConfig())
	require.NoError(t, svc.Init(ctx))

	h := NewFarmHandler(svc)
	return &testFarm{svc: svc, clock: clock, router: h.Routes()}
}

func (f *testFarm) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandleBuySeeds(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedBody   string
		expectedCoins  int
	}{
		{
			name:           "Success",
			body:           BuySeedsRequest{SeedID: "wheat", Quantity: 3},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgSeedsBought,
			expectedCoins:  35,
		},
		{
			name:           "Insufficient funds",
			body:           BuySeedsRequest{SeedID: "pumpkin", Quantity: 2},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughMoneyError,
			expectedCoins:  50,
		},
		{
			name:           "Unknown crop",
			body:           BuySeedsRequest{SeedID: "mandrake", Quantity: 1},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgUnknownCropError,
			expectedCoins:  50,
		},
		{
			name:           "Zero quantity fails validation",
			body:           map[string]interface{}{"seed_id": "wheat", "quantity": 0},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
			expectedCoins:  50,
		},
		{
			name:           "Malformed JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
			expectedCoins:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFarm(t, 50)

			rec := f.do(t, http.MethodPost, "/seeds/buy", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.Equal(t, tt.expectedCoins, f.svc.State().World.Coins)
		})
	}
}

func TestHandleBuySeeds_ReportsCost(t *testing.T) {
	f := newTestFarm(t, 50)

	rec := f.do(t, http.MethodPost, "/seeds/buy", BuySeedsRequest{SeedID: "carrot", Quantity: 2})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[AmountResponse](t, rec)
	assert.Equal(t, 16, resp.Amount)
}

func TestPlotLifecycleOverHTTP(t *testing.T) {
	f := newTestFarm(t, 100)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/seeds/buy", BuySeedsRequest{SeedID: "wheat", Quantity: 1}).Code)

	rec := f.do(t, http.MethodPost, "/plots/0/plant", PlantRequest{SeedID: "wheat"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/plots/0/plant", PlantRequest{SeedID: "wheat"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgPlotOccupiedError)

	rec = f.do(t, http.MethodPost, "/plots/0/fertilize", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "fertilizing before the threshold is not eligible")

	f.clock.At(10)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plots/0/fertilize", nil).Code)
	f.clock.At(20)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plots/0/weed", nil).Code)
	f.clock.At(30)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plots/0/water", nil).Code)

	f.clock.At(40)
	rec = f.do(t, http.MethodGet, "/plots/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, growth.PhaseReady, decode[growth.State](t, rec).Phase)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plots/0/collect", nil).Code)
	assert.Equal(t, http.StatusConflict, f.do(t, http.MethodPost, "/plots/0/harvest", nil).Code,
		"collection window has not elapsed")

	f.clock.At(44)
	rec = f.do(t, http.MethodPost, "/plots/0/harvest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wheat", decode[HarvestResponse](t, rec).SeedID)

	rec = f.do(t, http.MethodPost, "/barn/sell", SellProduceRequest{SeedID: "wheat"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"earned":12`)

	rec = f.do(t, http.MethodPost, "/barn/sell-all", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNothingToSellError)

	assert.Equal(t, 107, f.svc.State().World.Coins)
}

func TestPlotIndexParam(t *testing.T) {
	f := newTestFarm(t, 50)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/plots/abc", http.StatusBadRequest, ErrMsgInvalidPlotIndex},
		{"/plots/-1", http.StatusBadRequest, ErrMsgInvalidPlotIndex},
		{"/plots/4", http.StatusNotFound, ErrMsgPlotNotFoundError},
		{"/plots/3", http.StatusOK, `"phase":"empty"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestHandleMachinery(t *testing.T) {
	f := newTestFarm(t, 500)

	rec := f.do(t, http.MethodPost, "/machinery/buy", MachineryRequest{Kind: domain.KindSeeder})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 120, decode[AmountResponse](t, rec).Amount)

	rec = f.do(t, http.MethodPost, "/machinery/maintain", MachineryRequest{Kind: domain.KindSeeder})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNothingToMaintainErr)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/machinery/deploy", MachineryRequest{Kind: domain.KindSeeder}).Code)

	rec = f.do(t, http.MethodGet, "/machinery/"+domain.KindSeeder, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[game.MachineryStats](t, rec)
	assert.Equal(t, 0, stats.Garage.Count)
	assert.Equal(t, 1, stats.Field.Count)

	rec = f.do(t, http.MethodPost, "/machinery/sell", MachineryRequest{Kind: domain.KindSeeder})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "deployed units cannot be sold")

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/machinery/recall", MachineryRequest{Kind: domain.KindSeeder}).Code)
	rec = f.do(t, http.MethodPost, "/machinery/sell", MachineryRequest{Kind: domain.KindSeeder})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60, decode[AmountResponse](t, rec).Amount)

	rec = f.do(t, http.MethodGet, "/machinery/drone", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/machinery/buy", MachineryRequest{Kind: "Seeder!"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[ValidationErrorResponse](t, rec).Fields, "kind")
}

func TestHandleExpand(t *testing.T) {
	f := newTestFarm(t, 100)

	rec := f.do(t, http.MethodPost, "/farm/expand", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/farm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[game.FarmInfo](t, rec)
	assert.Equal(t, 2, info.Cols)
	assert.Equal(t, 3, info.Rows)

	rec = f.do(t, http.MethodGet, "/plots", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]growth.State](t, rec), 6)

	rec = f.do(t, http.MethodPost, "/farm/expand", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNotEnoughMoneyError)
}

func TestHandleMarket(t *testing.T) {
	f := newTestFarm(t, 300)

	rec := f.do(t, http.MethodGet, "/market/rates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rates := decode[market.Rates](t, rec)
	assert.Greater(t, rates.Buy, rates.Sell)

	rec = f.do(t, http.MethodPost, "/market/buy", BuyCryptoRequest{Coins: 200})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var bought struct {
		Data domain.Trade `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bought))
	assert.Equal(t, 200/rates.Buy, bought.Data.Amount)

	rec = f.do(t, http.MethodPost, "/market/sell", SellCryptoRequest{Amount: bought.Data.Amount + 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNotEnoughCryptoError)

	rec = f.do(t, http.MethodPost, "/market/sell", SellCryptoRequest{Amount: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/market/history?window=10m", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[[]market.Point](t, rec))

	for _, window := range []string{"forever", "-1h", "720h"} {
		rec = f.do(t, http.MethodGet, "/market/history?window="+window, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, window)
	}
}

func TestHandleReadOnlyViews(t *testing.T) {
	f := newTestFarm(t, 50)

	rec := f.do(t, http.MethodGet, "/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[game.View](t, rec)
	assert.Equal(t, 50, view.World.Coins)
	assert.Len(t, view.Plots, 4)

	rec = f.do(t, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cat := decode[CatalogResponse](t, rec)
	assert.Len(t, cat.Crops, len(catalog.Default().Crops()))
	assert.Len(t, cat.Expansions, 13)
}

func TestHandleReset(t *testing.T) {
	f := newTestFarm(t, 999)
	h := NewFarmHandler(f.svc)

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	rec := httptest.NewRecorder()
	h.DevRoutes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StartingCoins, f.svc.State().World.Coins)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{domain.ErrPlotEmpty, http.StatusConflict, ErrMsgPlotEmptyError},
		{domain.ErrMaxFarmSize, http.StatusConflict, ErrMsgMaxFarmSizeError},
		{domain.ErrUnknownMachinery, http.StatusNotFound, ErrMsgUnknownMachineryError},
		{assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.msg, msg)
	}

	t.Run("wrapped errors keep their mapping", func(t *testing.T) {
		status, msg := mapServiceErrorToUserMessage(fmtWrap(domain.ErrNotEligible))
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, ErrMsgNotEligibleError, msg)
	})
}

func fmtWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "plot 2: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }

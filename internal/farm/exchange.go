package farm

import (
	"fmt"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// BuyCrypto spends coinsAmount at buyRate. Only whole crypto units are bought
// and only their price is charged.
func BuyCrypto(w *domain.WorldState, coinsAmount, buyRate int, tradeID string, now time.Time) (domain.Trade, error) {
	if coinsAmount < 1 || buyRate < 1 {
		return domain.Trade{}, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, coinsAmount)
	}
	if w.Coins < coinsAmount {
		return domain.Trade{}, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, coinsAmount, w.Coins)
	}
	amount := coinsAmount / buyRate
	if amount < 1 {
		return domain.Trade{}, fmt.Errorf("%w: rate is %d", domain.ErrAmountTooSmall, buyRate)
	}

	trade := domain.Trade{
		ID:        tradeID,
		Type:      domain.TradeBuy,
		Amount:    amount,
		Rate:      buyRate,
		Total:     amount * buyRate,
		CreatedAt: now,
	}
	w.Coins -= trade.Total
	w.Crypto += amount
	appendTrade(w, trade)
	return trade, nil
}

// SellCrypto sells amount crypto units at sellRate.
func SellCrypto(w *domain.WorldState, amount, sellRate int, tradeID string, now time.Time) (domain.Trade, error) {
	if amount < 1 || sellRate < 1 {
		return domain.Trade{}, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, amount)
	}
	if w.Crypto < amount {
		return domain.Trade{}, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCrypto, amount, w.Crypto)
	}

	trade := domain.Trade{
		ID:        tradeID,
		Type:      domain.TradeSell,
		Amount:    amount,
		Rate:      sellRate,
		Total:     amount * sellRate,
		CreatedAt: now,
	}
	w.Crypto -= amount
	w.Coins += trade.Total
	appendTrade(w, trade)
	return trade, nil
}

func appendTrade(w *domain.WorldState, trade domain.Trade) {
	history := append(append([]domain.Trade{}, w.TradeHistory...), trade)
	if len(history) > domain.MaxTradeHistory {
		history = history[len(history)-domain.MaxTradeHistory:]
	}
	w.TradeHistory = history
}

// RecordEarnings appends a coin sample unless the previous sample holds the
// same balance and is younger than the dedup window.
func RecordEarnings(w *domain.WorldState, now time.Time) bool {
	if n := len(w.EarningsHistory); n > 0 {
		last := w.EarningsHistory[n-1]
		if last.Coins == w.Coins && now.Sub(last.Time) < domain.EarningsDedupWindow {
			return false
		}
	}
	history := append(append([]domain.EarningsPoint{}, w.EarningsHistory...), domain.EarningsPoint{Coins: w.Coins, Time: now})
	if len(history) > domain.MaxEarningsHistory {
		history = history[len(history)-domain.MaxEarningsHistory:]
	}
	w.EarningsHistory = history
	return true
}

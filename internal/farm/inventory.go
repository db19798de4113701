package farm

import (
	"fmt"
	"math"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// BuySeeds buys count seeds into the warehouse and returns the total cost.
func BuySeeds(w *domain.WorldState, cat *catalog.Catalog, seedID string, count int) (int, error) {
	crop, ok := cat.Crop(seedID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownCrop, seedID)
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, count)
	}
	total, err := totalCost(crop.Cost, count)
	if err != nil {
		return 0, err
	}
	if w.Coins < total {
		return 0, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, total, w.Coins)
	}

	w.Coins -= total
	w.Warehouse[seedID] += count
	return total, nil
}

// SellProduce sells up to count units of a crop from the barn. A count of zero
// or less sells the whole stock. It returns the units sold and coins earned.
func SellProduce(w *domain.WorldState, cat *catalog.Catalog, seedID string, count int) (int, int, error) {
	crop, ok := cat.Crop(seedID)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", domain.ErrUnknownCrop, seedID)
	}
	stock := w.Barn[seedID]
	if stock < 1 {
		return 0, 0, fmt.Errorf("%w: no %s in barn", domain.ErrNothingToSell, seedID)
	}
	sold := stock
	if count > 0 && count < stock {
		sold = count
	}

	earned := sold * crop.SellPrice
	w.Barn[seedID] -= sold
	w.Coins += earned
	return sold, earned, nil
}

// SellAllProduce empties the barn and returns the units sold and coins earned.
func SellAllProduce(w *domain.WorldState, cat *catalog.Catalog) (int, int, error) {
	units, earned := 0, 0
	for _, crop := range cat.Crops() {
		units += w.Barn[crop.ID]
		earned += w.Barn[crop.ID] * crop.SellPrice
	}
	if units == 0 {
		return 0, 0, domain.ErrNothingToSell
	}

	for _, crop := range cat.Crops() {
		w.Barn[crop.ID] = 0
	}
	w.Coins += earned
	return units, earned, nil
}

// totalCost is price*count, rejecting counts whose total would overflow.
func totalCost(price, count int) (int, error) {
	if price > 0 && count > math.MaxInt/price {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, count)
	}
	return price * count, nil
}

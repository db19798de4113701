package farm

import (
	"fmt"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
)

func machineryType(cat *catalog.Catalog, id string) (domain.MachineryType, error) {
	mt, ok := cat.MachineryType(id)
	if !ok {
		return domain.MachineryType{}, fmt.Errorf("%w: %s", domain.ErrUnknownMachinery, id)
	}
	return mt, nil
}

// BuyMachinery adds count full units to the garage and returns the cost.
func BuyMachinery(w *domain.WorldState, cat *catalog.Catalog, id string, count int) (int, error) {
	mt, err := machineryType(cat, id)
	if err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, count)
	}
	if owned := len(w.Garage[id]) + len(w.Field[id]); count > domain.MaxPoolUnits-owned {
		return 0, fmt.Errorf("%w: %d more %s would exceed %d units", domain.ErrInvalidQuantity, count, id, domain.MaxPoolUnits)
	}
	total, err := totalCost(mt.Cost, count)
	if err != nil {
		return 0, err
	}
	if w.Coins < total {
		return 0, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, total, w.Coins)
	}

	units := append([]domain.Unit{}, w.Garage[id]...)
	for i := 0; i < count; i++ {
		units = append(units, domain.NewUnit())
	}
	w.Coins -= total
	w.Garage[id] = units
	return total, nil
}

// SellMachinery removes the last count garage units and returns the refund.
func SellMachinery(w *domain.WorldState, cat *catalog.Catalog, id string, count int) (int, error) {
	mt, err := machineryType(cat, id)
	if err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, count)
	}
	garage := w.Garage[id]
	if len(garage) < count {
		return 0, fmt.Errorf("%w: %d %s in garage", domain.ErrInsufficientStock, len(garage), id)
	}

	refund := mt.Cost * cat.Economy().ResalePercent / 100 * count
	w.Garage[id] = append([]domain.Unit{}, garage[:len(garage)-count]...)
	w.Coins += refund
	return refund, nil
}

// Maintain restores every garage unit of a kind to full resources.
func Maintain(w *domain.WorldState, cat *catalog.Catalog, id string) (int, error) {
	if _, err := machineryType(cat, id); err != nil {
		return 0, err
	}
	garage := w.Garage[id]
	needing := 0
	for _, u := range garage {
		if u.NeedsMaintenance() {
			needing++
		}
	}
	if needing == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrNothingToMaintain, id)
	}
	cost := needing * cat.Economy().MaintenanceCost
	if w.Coins < cost {
		return 0, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, cost, w.Coins)
	}

	units := make([]domain.Unit, len(garage))
	for i, u := range garage {
		u.Fuel, u.Integrity = domain.MaxFuel, domain.MaxIntegrity
		units[i] = u
	}
	w.Coins -= cost
	w.Garage[id] = units
	return cost, nil
}

// Deploy moves the first garage unit to the end of the field.
func Deploy(w *domain.WorldState, cat *catalog.Catalog, id string) error {
	if _, err := machineryType(cat, id); err != nil {
		return err
	}
	garage := w.Garage[id]
	if len(garage) == 0 {
		return fmt.Errorf("%w: no %s in garage", domain.ErrNoUnitAvailable, id)
	}

	w.Field[id] = append(append([]domain.Unit{}, w.Field[id]...), garage[0])
	w.Garage[id] = append([]domain.Unit{}, garage[1:]...)
	return nil
}

// Recall moves the last field unit to the end of the garage.
func Recall(w *domain.WorldState, cat *catalog.Catalog, id string) error {
	if _, err := machineryType(cat, id); err != nil {
		return err
	}
	field := w.Field[id]
	if len(field) == 0 {
		return fmt.Errorf("%w: no %s in field", domain.ErrNoUnitAvailable, id)
	}

	w.Garage[id] = append(append([]domain.Unit{}, w.Garage[id]...), field[len(field)-1])
	w.Field[id] = append([]domain.Unit{}, field[:len(field)-1]...)
	return nil
}

// UseUnit charges one action to a field unit, flooring resources at zero.
func UseUnit(w *domain.WorldState, mt domain.MachineryType, index int, now time.Time) error {
	field := w.Field[mt.ID]
	if index < 0 || index >= len(field) {
		return fmt.Errorf("%w: %s unit %d", domain.ErrNoUnitAvailable, mt.ID, index)
	}

	units := append([]domain.Unit{}, field...)
	u := units[index]
	u.Fuel -= mt.FuelPerAction
	u.Integrity -= mt.IntegrityPerAction
	u = u.Clamped()
	u.LastActionAt = domain.TimePtr(now)
	units[index] = u
	w.Field[mt.ID] = units
	return nil
}

// PoolStats summarises one machinery pool.
type PoolStats struct {
	Count        int     `json:"count"`
	AvgFuel      float64 `json:"avg_fuel"`
	AvgIntegrity float64 `json:"avg_integrity"`
}

// Stats returns pool statistics for units.
func Stats(units []domain.Unit) PoolStats {
	s := PoolStats{Count: len(units)}
	if s.Count == 0 {
		return s
	}
	var fuel, integrity int
	for _, u := range units {
		fuel += u.Fuel
		integrity += u.Integrity
	}
	s.AvgFuel = float64(fuel) / float64(s.Count)
	s.AvgIntegrity = float64(integrity) / float64(s.Count)
	return s
}

package game

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/farm"
)

// Sale is the result of selling produce.
type Sale struct {
	Units  int `json:"units"`
	Earned int `json:"earned"`
}

// Expansion is the result of growing the farm.
type Expansion struct {
	Cost  int `json:"cost"`
	Level int `json:"level"`
	Cols  int `json:"cols"`
	Rows  int `json:"rows"`
}

func playerFeedback(action, haptic string) domain.FeedbackPayload {
	return domain.FeedbackPayload{Action: action, Source: domain.SourcePlayer, Haptic: haptic}
}

func plotFeedback(action, haptic string, plot int, seedID string) domain.FeedbackPayload {
	fb := playerFeedback(action, haptic)
	fb.Plot = &plot
	fb.SeedID = seedID
	return fb
}

func (s *service) BuySeeds(ctx context.Context, seedID string, count int) (int, error) {
	var cost int
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if cost, err = farm.BuySeeds(w, s.cat, seedID, count); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeBuy, domain.HapticLight)
		fb.SeedID, fb.Amount = seedID, count
		return []domain.FeedbackPayload{fb}, nil
	})
	return cost, err
}

func (s *service) BuyMachinery(ctx context.Context, id string, count int) (int, error) {
	var cost int
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if cost, err = farm.BuyMachinery(w, s.cat, id, count); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeBuy, domain.HapticMedium)
		fb.Kind, fb.Amount = id, count
		return []domain.FeedbackPayload{fb}, nil
	})
	return cost, err
}

func (s *service) SellMachinery(ctx context.Context, id string, count int) (int, error) {
	var refund int
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if refund, err = farm.SellMachinery(w, s.cat, id, count); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeSell, domain.HapticMedium)
		fb.Kind, fb.Amount = id, count
		return []domain.FeedbackPayload{fb}, nil
	})
	return refund, err
}

func (s *service) Maintain(ctx context.Context, id string) (int, error) {
	var cost int
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if cost, err = farm.Maintain(w, s.cat, id); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeMaintain, domain.HapticMedium)
		fb.Kind = id
		return []domain.FeedbackPayload{fb}, nil
	})
	return cost, err
}

func (s *service) Deploy(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		if err := farm.Deploy(w, s.cat, id); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeDeploy, domain.HapticMedium)
		fb.Kind = id
		return []domain.FeedbackPayload{fb}, nil
	})
	if err == nil {
		s.wakeEngine()
	}
	return err
}

func (s *service) Recall(ctx context.Context, id string) error {
	return s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		if err := farm.Recall(w, s.cat, id); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeRecall, domain.HapticLight)
		fb.Kind = id
		return []domain.FeedbackPayload{fb}, nil
	})
}

func (s *service) Plant(ctx context.Context, plot int, seedID string) error {
	err := s.mutate(ctx, func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error) {
		if err := farm.Plant(w, s.cat, plot, seedID, now); err != nil {
			return nil, err
		}
		return []domain.FeedbackPayload{plotFeedback(domain.EventTypePlant, domain.HapticLight, plot, seedID)}, nil
	})
	if err == nil {
		s.wakeEngine()
	}
	return err
}

func (s *service) care(ctx context.Context, plot int, action farm.CareAction, sound string) error {
	err := s.mutate(ctx, func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error) {
		if err := farm.Care(w, s.cat, plot, action, now); err != nil {
			return nil, err
		}
		return []domain.FeedbackPayload{plotFeedback(sound, domain.HapticLight, plot, w.Grid[plot].SeedID)}, nil
	})
	if err == nil {
		s.wakeEngine()
	}
	return err
}

func (s *service) Fertilize(ctx context.Context, plot int) error {
	return s.care(ctx, plot, farm.CareFertilize, domain.EventTypeFertilize)
}

func (s *service) Weed(ctx context.Context, plot int) error {
	return s.care(ctx, plot, farm.CareWeed, domain.EventTypeWeed)
}

func (s *service) Water(ctx context.Context, plot int) error {
	return s.care(ctx, plot, farm.CareWater, domain.EventTypeWater)
}

func (s *service) StartCollection(ctx context.Context, plot int) error {
	err := s.mutate(ctx, func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error) {
		if err := farm.StartCollection(w, s.cat, plot, now); err != nil {
			return nil, err
		}
		return []domain.FeedbackPayload{plotFeedback(domain.EventTypeCollect, domain.HapticLight, plot, w.Grid[plot].SeedID)}, nil
	})
	if err == nil {
		// the engine also wakes for collection completion
		s.wakeEngine()
	}
	return err
}

func (s *service) Harvest(ctx context.Context, plot int) (string, error) {
	var seedID string
	err := s.mutate(ctx, func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if seedID, err = farm.Harvest(w, s.cat, plot, now); err != nil {
			return nil, err
		}
		fb := plotFeedback(domain.EventTypeHarvest, domain.HapticMedium, plot, seedID)
		fb.Amount = 1
		return []domain.FeedbackPayload{fb}, nil
	})
	return seedID, err
}

func (s *service) SellFromBarn(ctx context.Context, seedID string, count int) (Sale, error) {
	if count < 0 {
		return Sale{}, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, count)
	}
	var sale Sale
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if sale.Units, sale.Earned, err = farm.SellProduce(w, s.cat, seedID, count); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeSell, domain.HapticMedium)
		fb.SeedID, fb.Amount = seedID, sale.Units
		return []domain.FeedbackPayload{fb}, nil
	})
	return sale, err
}

func (s *service) SellAllFromBarn(ctx context.Context) (Sale, error) {
	var sale Sale
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if sale.Units, sale.Earned, err = farm.SellAllProduce(w, s.cat); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeSell, domain.HapticMedium)
		fb.Amount = sale.Units
		return []domain.FeedbackPayload{fb}, nil
	})
	return sale, err
}

func (s *service) ExpandFarm(ctx context.Context) (Expansion, error) {
	var exp Expansion
	err := s.mutate(ctx, func(w *domain.WorldState, _ time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if exp.Cost, err = farm.ExpandFarm(w, s.cat); err != nil {
			return nil, err
		}
		exp.Level = farm.FarmLevel(w, s.cat)
		exp.Cols, exp.Rows = w.FarmCols, w.FarmRows
		return []domain.FeedbackPayload{playerFeedback(domain.EventTypeExpand, domain.HapticMedium)}, nil
	})
	return exp, err
}

func (s *service) BuyCrypto(ctx context.Context, coins int) (domain.Trade, error) {
	id, err := s.newID()
	if err != nil {
		return domain.Trade{}, fmt.Errorf("generate trade id: %w", err)
	}
	var trade domain.Trade
	err = s.mutate(ctx, func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if trade, err = farm.BuyCrypto(w, coins, s.market.At(now).Buy, id, now); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeBuy, domain.HapticLight)
		fb.Amount = trade.Amount
		return []domain.FeedbackPayload{fb}, nil
	})
	return trade, err
}

func (s *service) SellCrypto(ctx context.Context, amount int) (domain.Trade, error) {
	id, err := s.newID()
	if err != nil {
		return domain.Trade{}, fmt.Errorf("generate trade id: %w", err)
	}
	var trade domain.Trade
	err = s.mutate(ctx, func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error) {
		var err error
		if trade, err = farm.SellCrypto(w, amount, s.market.At(now).Sell, id, now); err != nil {
			return nil, err
		}
		fb := playerFeedback(domain.EventTypeSell, domain.HapticLight)
		fb.Amount = trade.Amount
		return []domain.FeedbackPayload{fb}, nil
	})
	return trade, err
}

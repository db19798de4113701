// Package catalog holds the static crop and machinery definitions plus the
// economy tunables, optionally overridden from a YAML file.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// FarmSize is one step of the farm expansion table.
type FarmSize struct {
	Cols int `json:"cols" yaml:"cols"`
	Rows int `json:"rows" yaml:"rows"`
}

// Economy holds the tunable prices and the automation tick period.
type Economy struct {
	ExpandCost      int `json:"expand_cost" yaml:"expand_cost"`
	MaintenanceCost int `json:"maintenance_cost" yaml:"maintenance_cost"`
	ResalePercent   int `json:"resale_percent" yaml:"resale_percent"`
	TickIntervalMs  int `json:"tick_interval_ms" yaml:"tick_interval_ms"`
}

// File is the YAML override layout. Omitted sections keep their defaults.
type File struct {
	Crops      []domain.CropType      `yaml:"crops"`
	Machinery  []domain.MachineryType `yaml:"machinery"`
	Expansions []FarmSize             `yaml:"expansions"`
	Economy    *Economy               `yaml:"economy"`
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	crops      []domain.CropType
	machinery  []domain.MachineryType
	expansions []FarmSize
	economy    Economy

	cropIndex      map[string]int
	machineryIndex map[string]int
}

var knownKinds = map[string]bool{
	domain.KindSeeder:             true,
	domain.KindCultivator:         true,
	domain.KindFertilizerSpreader: true,
	domain.KindIrrigator:          true,
	domain.KindHarvester:          true,
	domain.KindTruck:              true,
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultCrops, defaultMachinery, defaultExpansions, defaultEconomy)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid defaults: %v", err))
	}
	return c
}

// New validates and indexes the given definitions.
func New(crops []domain.CropType, machinery []domain.MachineryType, expansions []FarmSize, economy Economy) (*Catalog, error) {
	c := &Catalog{
		crops:          append([]domain.CropType{}, crops...),
		machinery:      append([]domain.MachineryType{}, machinery...),
		expansions:     append([]FarmSize{}, expansions...),
		economy:        economy,
		cropIndex:      make(map[string]int, len(crops)),
		machineryIndex: make(map[string]int, len(machinery)),
	}

	if len(c.crops) == 0 {
		return nil, fmt.Errorf("%w: at least one crop is required", domain.ErrInvalidInput)
	}
	for i, crop := range c.crops {
		if crop.ID == "" {
			return nil, fmt.Errorf("%w: crop %d has no id", domain.ErrInvalidInput, i)
		}
		if _, dup := c.cropIndex[crop.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate crop %q", domain.ErrInvalidInput, crop.ID)
		}
		if crop.GrowthSeconds <= 0 {
			return nil, fmt.Errorf("%w: crop %q needs a positive growth duration", domain.ErrInvalidInput, crop.ID)
		}
		if crop.Cost < 0 || crop.SellPrice < 0 {
			return nil, fmt.Errorf("%w: crop %q has a negative price", domain.ErrInvalidInput, crop.ID)
		}
		c.cropIndex[crop.ID] = i
	}

	for i, m := range c.machinery {
		if !knownKinds[m.ID] {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMachinery, m.ID)
		}
		if _, dup := c.machineryIndex[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate machinery %q", domain.ErrInvalidInput, m.ID)
		}
		if m.TickInterval <= 0 || m.Cost < 0 || m.FuelPerAction < 0 || m.IntegrityPerAction < 0 {
			return nil, fmt.Errorf("%w: machinery %q has invalid costs or interval", domain.ErrInvalidInput, m.ID)
		}
		c.machineryIndex[m.ID] = i
	}

	if len(c.expansions) == 0 {
		return nil, fmt.Errorf("%w: expansion table is empty", domain.ErrInvalidInput)
	}
	for i, size := range c.expansions {
		if size.Cols <= 0 || size.Rows <= 0 {
			return nil, fmt.Errorf("%w: expansion %d has a non-positive size", domain.ErrInvalidInput, i)
		}
		if i > 0 && size.Cols*size.Rows < c.expansions[i-1].Cols*c.expansions[i-1].Rows {
			return nil, fmt.Errorf("%w: expansion %d shrinks the farm", domain.ErrInvalidInput, i)
		}
	}

	if economy.TickIntervalMs <= 0 {
		return nil, fmt.Errorf("%w: tick interval must be positive", domain.ErrInvalidInput)
	}
	return c, nil
}

// Load reads a YAML override file on top of the defaults.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	crops, machinery, expansions, economy := defaultCrops, defaultMachinery, defaultExpansions, defaultEconomy
	if len(f.Crops) > 0 {
		crops = f.Crops
	}
	if len(f.Machinery) > 0 {
		machinery = f.Machinery
	}
	if len(f.Expansions) > 0 {
		expansions = f.Expansions
	}
	if f.Economy != nil {
		economy = *f.Economy
	}
	return New(crops, machinery, expansions, economy)
}

// Crops returns the crops in catalog order.
func (c *Catalog) Crops() []domain.CropType {
	return append([]domain.CropType{}, c.crops...)
}

// Crop looks up a crop by id.
func (c *Catalog) Crop(id string) (domain.CropType, bool) {
	i, ok := c.cropIndex[id]
	if !ok {
		return domain.CropType{}, false
	}
	return c.crops[i], true
}

// CropIDs returns crop ids in catalog order.
func (c *Catalog) CropIDs() []string {
	ids := make([]string, len(c.crops))
	for i, crop := range c.crops {
		ids[i] = crop.ID
	}
	return ids
}

// Machinery returns the machinery types in catalog order.
func (c *Catalog) Machinery() []domain.MachineryType {
	return append([]domain.MachineryType{}, c.machinery...)
}

// MachineryType looks up a machinery type by id.
func (c *Catalog) MachineryType(id string) (domain.MachineryType, bool) {
	i, ok := c.machineryIndex[id]
	if !ok {
		return domain.MachineryType{}, false
	}
	return c.machinery[i], true
}

// MachineryIDs returns machinery ids in catalog order.
func (c *Catalog) MachineryIDs() []string {
	ids := make([]string, len(c.machinery))
	for i, m := range c.machinery {
		ids[i] = m.ID
	}
	return ids
}

// Expansions returns the farm size table. Index 0 is the starting size.
func (c *Catalog) Expansions() []FarmSize {
	return append([]FarmSize{}, c.expansions...)
}

// Economy returns the economy tunables.
func (c *Catalog) Economy() Economy {
	return c.economy
}

// TickPeriod is the duration of one automation tick.
func (c *Catalog) TickPeriod() time.Duration {
	return time.Duration(c.economy.TickIntervalMs) * time.Millisecond
}

// NewWorld returns a fresh game state keyed by this catalog.
func (c *Catalog) NewWorld() *domain.WorldState {
	w := domain.NewWorldState(c.CropIDs(), c.MachineryIDs())
	start := c.expansions[0]
	w.FarmCols, w.FarmRows = start.Cols, start.Rows
	w.Grid = make([]*domain.Planting, start.Cols*start.Rows)
	return w
}

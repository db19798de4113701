package catalog

import "github.com/osse101/IdleFarm_Go/internal/domain"

// Default crop list. Order matters: the seeder plants and the truck sells the
// first eligible crop in this order.
var defaultCrops = []domain.CropType{
	{ID: "wheat", Name: "Wheat", Emoji: "🌾", GrowthSeconds: 40, HarvestSeconds: 4, Cost: 5, SellPrice: 12},
	{ID: "carrot", Name: "Carrot", Emoji: "🥕", GrowthSeconds: 60, HarvestSeconds: 4, Cost: 8, SellPrice: 18},
	{ID: "potato", Name: "Potato", Emoji: "🥔", GrowthSeconds: 90, HarvestSeconds: 5, Cost: 12, SellPrice: 28},
	{ID: "corn", Name: "Corn", Emoji: "🌽", GrowthSeconds: 120, HarvestSeconds: 6, Cost: 18, SellPrice: 42},
	{ID: "sunflower", Name: "Sunflower", Emoji: "🌻", GrowthSeconds: 150, Cost: 20, SellPrice: 50},
	{ID: "pumpkin", Name: "Pumpkin", Emoji: "🎃", GrowthSeconds: 180, HarvestSeconds: 8, Cost: 30, SellPrice: 75},
}

var defaultMachinery = []domain.MachineryType{
	{
		ID: domain.KindSeeder, Name: "Seeder", Emoji: "🌱",
		Description:   "Plants seeds from the warehouse into empty plots",
		Cost:          120,
		FuelPerAction: 2, IntegrityPerAction: 1, TickInterval: 4,
	},
	{
		ID: domain.KindCultivator, Name: "Cultivator", Emoji: "🪓",
		Description:   "Weeds plots that need weeding",
		Cost:          80,
		FuelPerAction: 2, IntegrityPerAction: 1, TickInterval: 4,
	},
	{
		ID: domain.KindFertilizerSpreader, Name: "Fertilizer Spreader", Emoji: "🧪",
		Description:   "Fertilizes plots that need fertilizing",
		Cost:          100,
		FuelPerAction: 2, IntegrityPerAction: 1, TickInterval: 4,
	},
	{
		ID: domain.KindIrrigator, Name: "Irrigator", Emoji: "💧",
		Description:   "Waters plots that need watering",
		Cost:          90,
		FuelPerAction: 2, IntegrityPerAction: 1, TickInterval: 4,
	},
	{
		ID: domain.KindHarvester, Name: "Harvester", Emoji: "🚜",
		Description:   "Starts collecting ready crops",
		Cost:          350,
		FuelPerAction: 3, IntegrityPerAction: 2, TickInterval: 4,
	},
	{
		ID: domain.KindTruck, Name: "Truck", Emoji: "🚚",
		Description:   "Sells produce from the barn, one unit per trip",
		Cost:          200,
		FuelPerAction: 1, IntegrityPerAction: 1, TickInterval: 6,
	},
}

var defaultExpansions = []FarmSize{
	{2, 2}, {2, 3}, {3, 3}, {3, 4}, {4, 4}, {4, 5}, {5, 5},
	{5, 6}, {6, 6}, {6, 7}, {7, 7}, {7, 8}, {8, 8},
}

var defaultEconomy = Economy{
	ExpandCost:      80,
	MaintenanceCost: 10,
	ResalePercent:   50,
	TickIntervalMs:  500,
}

package models

// TradeRatios are the relative values of the three resources
type TradeRatios struct {
	Metal     float64 `json:"metal" yaml:"metal" toml:"metal"`
	Crystal   float64 `json:"crystal" yaml:"crystal" toml:"crystal"`
	Deuterium float64 `json:"deuterium" yaml:"deuterium" toml:"deuterium"`
}

// DefaultTradeRatios is the standard 2.5:1.5:1 market ratio
func DefaultTradeRatios() TradeRatios {
	return TradeRatios{Metal: 2.5, Crystal: 1.5, Deuterium: 1}
}

// Universe holds the server parameters shared by every account on it
type Universe struct {
	Name                     string      `json:"name" yaml:"name" toml:"name"`
	EconomySpeed             int         `json:"economy_speed" yaml:"economy_speed" toml:"economy_speed"`
	ResearchSpeed            int         `json:"research_speed" yaml:"research_speed" toml:"research_speed"`
	FleetSpeed               int         `json:"fleet_speed" yaml:"fleet_speed" toml:"fleet_speed"`
	Galaxies                 int         `json:"galaxies" yaml:"galaxies" toml:"galaxies"`
	CircularGalaxies         bool        `json:"circular_galaxies" yaml:"circular_galaxies" toml:"circular_galaxies"`
	CircularUniverse         bool        `json:"circular_universe" yaml:"circular_universe" toml:"circular_universe"`
	CollectorProductionBonus int         `json:"collector_production_bonus" yaml:"collector_production_bonus" toml:"collector_production_bonus"` // percent
	CollectorEnergyBonus     int         `json:"collector_energy_bonus" yaml:"collector_energy_bonus" toml:"collector_energy_bonus"`             // percent
	CrawlerCap               int         `json:"crawler_cap" yaml:"crawler_cap" toml:"crawler_cap"`                                              // crawlers per mine level
	HyperspaceCargoBonus     int         `json:"hyperspace_cargo_bonus" yaml:"hyperspace_cargo_bonus" toml:"hyperspace_cargo_bonus"`
	TradeRatios              TradeRatios `json:"trade_ratios" yaml:"trade_ratios" toml:"trade_ratios"`
}

// Officers are the hired officers of an account
type Officers struct {
	Commander       bool `json:"commander" yaml:"commander" toml:"commander"`
	Admiral         bool `json:"admiral" yaml:"admiral" toml:"admiral"`
	Engineer        bool `json:"engineer" yaml:"engineer" toml:"engineer"`
	Geologist       bool `json:"geologist" yaml:"geologist" toml:"geologist"`
	Technocrat      bool `json:"technocrat" yaml:"technocrat" toml:"technocrat"`
	CommandingStaff bool `json:"commanding_staff" yaml:"commanding_staff" toml:"commanding_staff"`
}

// Research holds the account-wide technology levels
type Research struct {
	Levels         map[ResearchType]int `json:"levels" yaml:"levels" toml:"levels"`
	CurrentUpgrade ResearchType         `json:"current_upgrade,omitempty" yaml:"current_upgrade,omitempty" toml:"current_upgrade,omitempty"`
}

// Level returns the level of a technology
func (r *Research) Level(rt ResearchType) int {
	return r.Levels[rt]
}

// SetLevel sets the level of a technology
func (r *Research) SetLevel(rt ResearchType, level int) {
	if r.Levels == nil {
		r.Levels = make(map[ResearchType]int)
	}
	r.Levels[rt] = level
}

// Utilization holds production percentages per facility (0-150)
type Utilization struct {
	Metal          int `json:"metal" yaml:"metal" toml:"metal"`
	Crystal        int `json:"crystal" yaml:"crystal" toml:"crystal"`
	Deuterium      int `json:"deuterium" yaml:"deuterium" toml:"deuterium"`
	SolarPlant     int `json:"solar_plant" yaml:"solar_plant" toml:"solar_plant"`
	FusionReactor  int `json:"fusion_reactor" yaml:"fusion_reactor" toml:"fusion_reactor"`
	SolarSatellite int `json:"solar_satellite" yaml:"solar_satellite" toml:"solar_satellite"`
	Crawler        int `json:"crawler" yaml:"crawler" toml:"crawler"`
}

// FullUtilization runs every facility at 100%
func FullUtilization() Utilization {
	return Utilization{
		Metal: 100, Crystal: 100, Deuterium: 100,
		SolarPlant: 100, FusionReactor: 100, SolarSatellite: 100, Crawler: 100,
	}
}

// Moon is the moon orbiting a planet
type Moon struct {
	Buildings      map[BuildingType]int     `json:"buildings,omitempty" yaml:"buildings,omitempty" toml:"buildings,omitempty"`
	Ships          map[ShipyardItemType]int `json:"ships,omitempty" yaml:"ships,omitempty" toml:"ships,omitempty"`
	CurrentUpgrade BuildingType             `json:"current_upgrade,omitempty" yaml:"current_upgrade,omitempty" toml:"current_upgrade,omitempty"`
}

// Planet is a single colony of the account
type Planet struct {
	ID             int                      `json:"id" yaml:"id" toml:"id"`
	Name           string                   `json:"name" yaml:"name" toml:"name"`
	Coordinates    string                   `json:"coordinates,omitempty" yaml:"coordinates,omitempty" toml:"coordinates,omitempty"`
	BaseFields     int                      `json:"base_fields" yaml:"base_fields" toml:"base_fields"`
	MinTemperature int                      `json:"min_temperature" yaml:"min_temperature" toml:"min_temperature"`
	MaxTemperature int                      `json:"max_temperature" yaml:"max_temperature" toml:"max_temperature"`
	Utilization    Utilization              `json:"utilization" yaml:"utilization" toml:"utilization"`
	MetalBonus     int                      `json:"metal_bonus" yaml:"metal_bonus" toml:"metal_bonus"` // percent, from planet position
	CrystalBonus   int                      `json:"crystal_bonus" yaml:"crystal_bonus" toml:"crystal_bonus"`
	DeuteriumBonus int                      `json:"deuterium_bonus" yaml:"deuterium_bonus" toml:"deuterium_bonus"`
	Buildings      map[BuildingType]int     `json:"buildings" yaml:"buildings" toml:"buildings"`
	Ships          map[ShipyardItemType]int `json:"ships,omitempty" yaml:"ships,omitempty" toml:"ships,omitempty"`
	CurrentUpgrade BuildingType             `json:"current_upgrade,omitempty" yaml:"current_upgrade,omitempty" toml:"current_upgrade,omitempty"`
	Moon           Moon                     `json:"moon" yaml:"moon" toml:"moon"`
}

// AverageTemperature returns the mean of the planet's temperature range
func (p *Planet) AverageTemperature() float64 {
	return float64(p.MinTemperature+p.MaxTemperature) / 2
}

// BuildingLevel returns the level of a building on the planet or its moon
func (p *Planet) BuildingLevel(bt BuildingType, moon bool) int {
	if moon {
		return p.Moon.Buildings[bt]
	}
	return p.Buildings[bt]
}

// SetBuildingLevel sets the level of a building on the planet or its moon
func (p *Planet) SetBuildingLevel(bt BuildingType, moon bool, level int) {
	if moon {
		if p.Moon.Buildings == nil {
			p.Moon.Buildings = make(map[BuildingType]int)
		}
		p.Moon.Buildings[bt] = level
		return
	}
	if p.Buildings == nil {
		p.Buildings = make(map[BuildingType]int)
	}
	p.Buildings[bt] = level
}

// StationedShips returns the count of a shipyard item on the planet or its moon
func (p *Planet) StationedShips(st ShipyardItemType, moon bool) int {
	if moon {
		return p.Moon.Ships[st]
	}
	return p.Ships[st]
}

// SetStationedShips sets the count of a shipyard item on the planet or its moon
func (p *Planet) SetStationedShips(st ShipyardItemType, moon bool, count int) {
	if moon {
		if p.Moon.Ships == nil {
			p.Moon.Ships = make(map[ShipyardItemType]int)
		}
		p.Moon.Ships[st] = count
		return
	}
	if p.Ships == nil {
		p.Ships = make(map[ShipyardItemType]int)
	}
	p.Ships[st] = count
}

// UnderConstruction reports whether the building is currently being upgraded
func (p *Planet) UnderConstruction(bt BuildingType, moon bool) bool {
	if moon {
		return p.Moon.CurrentUpgrade == bt
	}
	return p.CurrentUpgrade == bt
}

// PlannedUpgrade is a queued, not yet applied increase of some level.
// Planet is ignored for research.
type PlannedUpgrade struct {
	Type     UpgradeType `json:"type" yaml:"type" toml:"type"`
	Planet   int         `json:"planet,omitempty" yaml:"planet,omitempty" toml:"planet,omitempty"`
	Moon     bool        `json:"moon,omitempty" yaml:"moon,omitempty" toml:"moon,omitempty"`
	Quantity int         `json:"quantity" yaml:"quantity" toml:"quantity"`
}

// SameTarget reports whether two planned upgrades raise the same level
func (u *PlannedUpgrade) SameTarget(other *PlannedUpgrade) bool {
	if u.Type != other.Type {
		return false
	}
	if u.Type.AccountWide() {
		return true
	}
	return u.Planet == other.Planet && u.Moon == other.Moon
}

// Account is a player account on a universe. The engine only reads it.
type Account struct {
	ID              int               `json:"id" yaml:"id" toml:"id"`
	Name            string            `json:"name" yaml:"name" toml:"name"`
	Class           AccountClass      `json:"class" yaml:"class" toml:"class"`
	Universe        Universe          `json:"universe" yaml:"universe" toml:"universe"`
	Officers        Officers          `json:"officers" yaml:"officers" toml:"officers"`
	Research        Research          `json:"research" yaml:"research" toml:"research"`
	Planets         []*Planet         `json:"planets" yaml:"planets" toml:"planets"`
	PlannedUpgrades []*PlannedUpgrade `json:"planned_upgrades,omitempty" yaml:"planned_upgrades,omitempty" toml:"planned_upgrades,omitempty"`
}

// View is a read-only look at an account's levels. The real account is a
// View of itself; speculative accounts fold extra levels in.
type View interface {
	Account() *Account
	Level(planet *Planet, t UpgradeType, moon bool) int
}

// Account returns the account itself
func (a *Account) Account() *Account {
	return a
}

// Level returns the current level (or count) of an upgrade type. Planet may
// be nil for research.
func (a *Account) Level(planet *Planet, t UpgradeType, moon bool) int {
	switch t.Kind {
	case KindResearch:
		return a.Research.Level(t.Research)
	case KindBuilding:
		if planet == nil {
			return 0
		}
		return planet.BuildingLevel(t.Building, moon)
	case KindShipyard:
		if planet == nil {
			return 0
		}
		return planet.StationedShips(t.Shipyard, moon)
	}
	return 0
}

// Planet returns the planet with the given ID, or nil
func (a *Account) Planet(id int) *Planet {
	for _, p := range a.Planets {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlanetCount returns the number of planets
func (a *Account) PlanetCount() int {
	return len(a.Planets)
}

// UnderConstruction reports whether the upgrade's target is currently being
// built or researched
func (a *Account) UnderConstruction(u *PlannedUpgrade) bool {
	switch u.Type.Kind {
	case KindResearch:
		return a.Research.CurrentUpgrade != "" && a.Research.CurrentUpgrade == u.Type.Research
	case KindBuilding:
		planet := a.Planet(u.Planet)
		return planet != nil && planet.UnderConstruction(u.Type.Building, u.Moon)
	}
	return false
}

package rules

import (
	"math"

	"github.com/napolitain/ogame-economy/internal/models"
)

// ProductionScheme is one facility's contribution to a planet's economy.
// Energy is positive for net energy production, negative for consumption.
type ProductionScheme interface {
	Name() string
	AddProduction(view models.View, planet *models.Planet, acc *Accumulator, energyFactor float64)
	Energy(view models.View, planet *models.Planet) float64
}

// Accumulator collects material production terms from several schemes
type Accumulator struct {
	Metal     models.Production
	Crystal   models.Production
	Deuterium models.Production
}

// Add records a term for a material resource; energy is ignored
func (a *Accumulator) Add(rt models.ResourceType, source models.ProductionSource, amount float64) {
	switch rt {
	case models.Metal:
		a.Metal.Add(source, amount)
	case models.Crystal:
		a.Crystal.Add(source, amount)
	case models.Deuterium:
		a.Deuterium.Add(source, amount)
	}
}

// Of returns the accumulated production of a material resource
func (a *Accumulator) Of(rt models.ResourceType) models.Production {
	switch rt {
	case models.Metal:
		return a.Metal
	case models.Crystal:
		return a.Crystal
	case models.Deuterium:
		return a.Deuterium
	}
	return models.Production{}
}

// facility identifies a utilization slider on a planet
type facility int

const (
	metalFacility facility = iota
	crystalFacility
	deuteriumFacility
	solarPlantFacility
	fusionFacility
	satelliteFacility
	crawlerFacility
)

// utilization returns the facility's production fraction (1 = 100%)
func utilization(planet *models.Planet, f facility) float64 {
	u := planet.Utilization
	var pct int
	switch f {
	case metalFacility:
		pct = u.Metal
	case crystalFacility:
		pct = u.Crystal
	case deuteriumFacility:
		pct = u.Deuterium
	case solarPlantFacility:
		pct = u.SolarPlant
	case fusionFacility:
		pct = u.FusionReactor
	case satelliteFacility:
		pct = u.SolarSatellite
	case crawlerFacility:
		pct = u.Crawler
	}
	return float64(pct) / 100
}

func buildingLevel(view models.View, planet *models.Planet, bt models.BuildingType) int {
	return view.Level(planet, models.BuildingUpgrade(bt), false)
}

func researchLevel(view models.View, rt models.ResearchType) int {
	return view.Level(nil, models.ResearchUpgrade(rt), false)
}

func shipCount(view models.View, planet *models.Planet, st models.ShipyardItemType) int {
	return view.Level(planet, models.ShipyardUpgrade(st), false)
}

func economySpeed(view models.View) float64 {
	speed := view.Account().Universe.EconomySpeed
	if speed <= 0 {
		return 1
	}
	return float64(speed)
}

// levelCurve is the L * 1.1^L growth shared by mines and the solar plant
func levelCurve(level int) float64 {
	return float64(level) * math.Pow(1.1, float64(level))
}

// MineScheme produces metal, crystal or deuterium
type MineScheme struct {
	Resource       models.ResourceType
	Building       models.BuildingType
	BaseProduction float64
	Factor         float64
	PlasmaBonus    float64 // percent per plasma level
	// Temperature dependence: factor * (TempOffset - TempMult * avgTemp).
	// A zero TempOffset disables it.
	TempOffset float64
	TempMult   float64
	EnergyMult float64
	// CrawlerBonus is the percent of mine output each active crawler adds
	CrawlerBonus float64
	// GeologistBonus and StaffBonus are percents granted by officers
	GeologistBonus float64
	StaffBonus     float64
}

func (m MineScheme) Name() string {
	return string(m.Building)
}

func (m MineScheme) facility() facility {
	switch m.Resource {
	case models.Crystal:
		return crystalFacility
	case models.Deuterium:
		return deuteriumFacility
	}
	return metalFacility
}

// Rated returns the mine's unscaled hourly output at a level
func (m MineScheme) Rated(planet *models.Planet, level int) float64 {
	mine := m.Factor * levelCurve(level)
	if m.TempOffset != 0 {
		mine *= math.Max(0, m.TempOffset-m.TempMult*planet.AverageTemperature())
	}
	return m.BaseProduction + mine
}

func (m MineScheme) AddProduction(view models.View, planet *models.Planet, acc *Accumulator, energyFactor float64) {
	account := view.Account()
	level := buildingLevel(view, planet, m.Building)
	scale := utilization(planet, m.facility()) * math.Min(1, energyFactor) * economySpeed(view)

	rated := m.Rated(planet, level)
	acc.Add(m.Resource, models.SourceBase, m.BaseProduction*scale)
	acc.Add(m.Resource, models.SourceMine, (rated-m.BaseProduction)*scale)

	produced := rated * scale
	acc.Add(m.Resource, models.SourcePlasma, produced*m.PlasmaBonus/100*float64(researchLevel(view, models.Plasma)))
	if account.Officers.Geologist {
		acc.Add(m.Resource, models.SourceGeologist, produced*m.GeologistBonus/100)
	}
	if account.Officers.CommandingStaff {
		acc.Add(m.Resource, models.SourceCommandingStaff, produced*m.StaffBonus/100)
	}
	if account.Class == models.Collector {
		acc.Add(m.Resource, models.SourceCollector, produced*account.Universe.CollectorProductionShare())
	}
	if bonus := planetBonus(planet, m.Resource); bonus != 0 {
		acc.Add(m.Resource, models.SourcePlanetBonus, produced*float64(bonus)/100)
	}
	if crawlers := activeCrawlers(view, planet); crawlers > 0 && m.CrawlerBonus > 0 {
		bonus := m.CrawlerBonus * crawlers * utilization(planet, crawlerFacility)
		if account.Class == models.Collector {
			bonus *= CollectorCrawlerMultiplier
		}
		acc.Add(m.Resource, models.SourceCrawler, produced*bonus/100)
	}
}

func (m MineScheme) Energy(view models.View, planet *models.Planet) float64 {
	level := buildingLevel(view, planet, m.Building)
	return -m.EnergyMult * levelCurve(level) * utilization(planet, m.facility())
}

func planetBonus(planet *models.Planet, rt models.ResourceType) int {
	switch rt {
	case models.Metal:
		return planet.MetalBonus
	case models.Crystal:
		return planet.CrystalBonus
	case models.Deuterium:
		return planet.DeuteriumBonus
	}
	return 0
}

// CollectorCrawlerMultiplier boosts the crawler bonus for the collector class
const CollectorCrawlerMultiplier = 1.5

// activeCrawlers is the crawler count capped by the planet's mine levels
func activeCrawlers(view models.View, planet *models.Planet) float64 {
	count := shipCount(view, planet, models.Crawler)
	if count <= 0 {
		return 0
	}
	mines := buildingLevel(view, planet, models.MetalMine) +
		buildingLevel(view, planet, models.CrystalMine) +
		buildingLevel(view, planet, models.DeuteriumSynthesizer)
	limit := view.Account().Universe.CrawlerCap * mines
	return float64(min(count, limit))
}

// FusionScheme burns deuterium for energy
type FusionScheme struct {
	EnergyBase      float64 // energy per level
	EnergyGrowth    float64 // per-level growth before energy technology
	EnergyTechBonus float64 // growth added per energy technology level
	DeutFactor      float64
}

func (f FusionScheme) Name() string {
	return string(models.FusionReactor)
}

func (f FusionScheme) AddProduction(view models.View, planet *models.Planet, acc *Accumulator, _ float64) {
	level := buildingLevel(view, planet, models.FusionReactor)
	consumed := f.DeutFactor * economySpeed(view) * levelCurve(level) * utilization(planet, fusionFacility)
	acc.Add(models.Deuterium, models.SourceFusionReactor, -consumed)
}

func (f FusionScheme) Energy(view models.View, planet *models.Planet) float64 {
	level := buildingLevel(view, planet, models.FusionReactor)
	growth := f.EnergyGrowth + f.EnergyTechBonus*float64(researchLevel(view, models.EnergyTech))
	return f.EnergyBase * float64(level) * utilization(planet, fusionFacility) * math.Pow(growth, float64(level))
}

// SolarPlantScheme produces energy from the solar plant
type SolarPlantScheme struct {
	Factor float64
}

func (s SolarPlantScheme) Name() string {
	return string(models.SolarPlant)
}

func (s SolarPlantScheme) AddProduction(models.View, *models.Planet, *Accumulator, float64) {}

func (s SolarPlantScheme) Energy(view models.View, planet *models.Planet) float64 {
	level := buildingLevel(view, planet, models.SolarPlant)
	return s.Factor * levelCurve(level) * utilization(planet, solarPlantFacility)
}

// SatelliteScheme produces energy from solar satellites, depending on the
// planet's maximum temperature
type SatelliteScheme struct {
	TempOffset float64
	TempDiv    float64
}

func (s SatelliteScheme) Name() string {
	return string(models.SolarSatellite)
}

// PerSatellite returns the energy a single satellite yields on the planet
func (s SatelliteScheme) PerSatellite(planet *models.Planet) float64 {
	return math.Max(0, math.Floor((float64(planet.MaxTemperature)+s.TempOffset)/s.TempDiv))
}

func (s SatelliteScheme) AddProduction(models.View, *models.Planet, *Accumulator, float64) {}

func (s SatelliteScheme) Energy(view models.View, planet *models.Planet) float64 {
	count := shipCount(view, planet, models.SolarSatellite)
	return float64(count) * s.PerSatellite(planet) * utilization(planet, satelliteFacility)
}

// CrawlerScheme accounts for the energy crawlers draw; their production
// bonus is applied by each MineScheme
type CrawlerScheme struct {
	EnergyPerCrawler float64
}

func (c CrawlerScheme) Name() string {
	return string(models.Crawler)
}

func (c CrawlerScheme) AddProduction(models.View, *models.Planet, *Accumulator, float64) {}

func (c CrawlerScheme) Energy(view models.View, planet *models.Planet) float64 {
	return -c.EnergyPerCrawler * activeCrawlers(view, planet) * utilization(planet, crawlerFacility)
}

// EnergyBonuses are percent increases of a planet's energy production
type EnergyBonuses struct {
	Engineer        float64
	CommandingStaff float64
}

func energySource(s ProductionScheme) models.ProductionSource {
	switch s.Name() {
	case string(models.SolarPlant):
		return models.SourceSolarPlant
	case string(models.FusionReactor):
		return models.SourceFusionReactor
	case string(models.SolarSatellite):
		return models.SourceSolarSatellite
	case string(models.Crawler):
		return models.SourceCrawler
	}
	return models.ProductionSource(s.Name())
}

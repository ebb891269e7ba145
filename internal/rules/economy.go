package rules

import (
	"math"

	"github.com/napolitain/ogame-economy/internal/models"
)

// Economy is the cost and production half of a rule set. It holds no mutable
// state; every query is a pure function of the view it is given.
type Economy struct {
	schemes Schemes
}

// Scheme returns the cost scheme of an upgrade type
func (e *Economy) Scheme(t models.UpgradeType) (CostScheme, bool) {
	s, ok := e.schemes.Costs[t]
	return s, ok
}

// ProductionSchemes returns the production schemes in evaluation order
func (e *Economy) ProductionSchemes() []ProductionScheme {
	return append([]ProductionScheme(nil), e.schemes.Production...)
}

// UpgradeCost returns the cost of raising an upgrade type from one level to
// another. Planet is nil for research, or for an account-wide building query,
// in which case building costs apply to every planet.
func (e *Economy) UpgradeCost(view models.View, planet *models.Planet, t models.UpgradeType, from, to int) models.UpgradeCost {
	scheme, ok := e.schemes.Costs[t]
	if !ok || to <= from {
		return models.ZeroCost
	}
	account := view.Account()
	ctx := CostContext{Planets: 1, PlanetCount: account.PlanetCount()}
	if planet == nil && scheme.Kind == BuildingScheme {
		ctx.Planets = account.PlanetCount()
	}
	if scheme.Kind == ColonyScheme {
		ctx.BuildingValue = e.BuildingValue(view)
	}
	return ComputeCost(scheme, ctx, from, to)
}

// ColonyCost returns the cost of growing the account from one planet count to
// another: the astrophysics research it takes plus one planet's worth of
// buildings per current planet
func (e *Economy) ColonyCost(view models.View, fromPlanets, toPlanets int) models.UpgradeCost {
	account := view.Account()
	ctx := CostContext{
		Planets:       1,
		PlanetCount:   account.PlanetCount(),
		BuildingValue: e.BuildingValue(view),
	}
	return ComputeCost(e.schemes.Colony, ctx, fromPlanets, toPlanets)
}

// BuildingValue returns the cost of every building level on the account's
// planets and moons
func (e *Economy) BuildingValue(view models.View) models.UpgradeCost {
	total := models.ZeroCost
	for _, planet := range view.Account().Planets {
		for _, bt := range models.AllBuildingTypes() {
			t := models.BuildingUpgrade(bt)
			for _, moon := range []bool{false, true} {
				if level := view.Level(planet, t, moon); level > 0 {
					total = total.Plus(e.UpgradeCost(view, planet, t, 0, level))
				}
			}
		}
	}
	return total
}

// StationaryValue returns the cost of every building, satellite, crawler and
// defense on the account's planets. Moons are left out.
func (e *Economy) StationaryValue(view models.View) models.UpgradeCost {
	total := models.ZeroCost
	for _, planet := range view.Account().Planets {
		for _, bt := range models.AllBuildingTypes() {
			t := models.BuildingUpgrade(bt)
			if level := view.Level(planet, t, false); level > 0 {
				total = total.Plus(e.UpgradeCost(view, planet, t, 0, level))
			}
		}
		for _, st := range models.AllShipyardItemTypes() {
			if st.Mobile() {
				continue
			}
			t := models.ShipyardUpgrade(st)
			if count := view.Level(planet, t, false); count > 0 {
				total = total.Plus(e.UpgradeCost(view, planet, t, 0, count))
			}
		}
	}
	return total
}

// AccountValue returns the cost of everything the account owns
func (e *Economy) AccountValue(view models.View) models.UpgradeCost {
	total := e.BuildingValue(view)
	for _, planet := range view.Account().Planets {
		for _, st := range models.AllShipyardItemTypes() {
			total = total.Plus(e.shipValue(view, planet, st))
		}
	}
	for _, rt := range models.AllResearchTypes() {
		t := models.ResearchUpgrade(rt)
		if level := view.Level(nil, t, false); level > 0 {
			total = total.Plus(e.UpgradeCost(view, nil, t, 0, level))
		}
	}
	return total
}

func (e *Economy) shipValue(view models.View, planet *models.Planet, st models.ShipyardItemType) models.UpgradeCost {
	t := models.ShipyardUpgrade(st)
	total := models.ZeroCost
	for _, moon := range []bool{false, true} {
		if count := view.Level(planet, t, moon); count > 0 {
			total = total.Plus(e.UpgradeCost(view, planet, t, 0, count))
		}
	}
	return total
}

// EnergyProduction returns the planet's energy production and consumption.
// Energy is never throttled by energy, so no factor applies.
func (e *Economy) EnergyProduction(view models.View, planet *models.Planet) models.Production {
	var energy models.Production
	for _, scheme := range e.schemes.Production {
		energy.Add(energySource(scheme), scheme.Energy(view, planet))
	}

	produced := energy.TotalProduction
	if produced <= 0 {
		return energy
	}
	account := view.Account()
	bonuses := e.schemes.EnergyBonuses
	if account.Officers.Engineer {
		energy.Add(models.SourceEngineer, produced*bonuses.Engineer/100)
	}
	if account.Officers.CommandingStaff {
		energy.Add(models.SourceCommandingStaff, produced*bonuses.CommandingStaff/100)
	}
	if account.Class == models.Collector {
		energy.Add(models.SourceCollector, produced*account.Universe.CollectorEnergyShare())
	}
	return energy
}

// EnergyBalance returns the planet's energy production minus its consumption
func (e *Economy) EnergyBalance(view models.View, planet *models.Planet) float64 {
	return e.EnergyProduction(view, planet).Net()
}

// EnergyFactor resolves how much of the planet's energy demand is met, in
// [0, 1]. A planet producing no energy has factor 0; one consuming none has 1.
func (e *Economy) EnergyFactor(view models.View, planet *models.Planet) float64 {
	return EnergyFactorOf(e.EnergyProduction(view, planet))
}

// EnergyFactorOf derives the energy factor from an energy production
func EnergyFactorOf(energy models.Production) float64 {
	if energy.TotalProduction <= 0 {
		return 0
	}
	if energy.TotalConsumption <= 0 {
		return 1
	}
	return math.Min(1, energy.TotalProduction/energy.TotalConsumption)
}

// Production returns the hourly production of a resource on a planet, with
// energy-dependent facilities throttled by energyFactor. Asking for energy
// returns the energy balance regardless of the factor.
func (e *Economy) Production(view models.View, planet *models.Planet, rt models.ResourceType, energyFactor float64) models.Production {
	if rt == models.Energy {
		return e.EnergyProduction(view, planet)
	}
	acc := e.accumulate(view, planet, energyFactor)
	return acc.Of(rt)
}

// FullProduction evaluates energy first, then every material resource with
// the resulting energy factor
func (e *Economy) FullProduction(view models.View, planet *models.Planet) models.FullProduction {
	energy := e.EnergyProduction(view, planet)
	acc := e.accumulate(view, planet, EnergyFactorOf(energy))
	return models.FullProduction{
		Energy:    energy,
		Metal:     acc.Metal,
		Crystal:   acc.Crystal,
		Deuterium: acc.Deuterium,
	}
}

// AccountProduction returns the full production of every planet, in planet order
func (e *Economy) AccountProduction(view models.View) []models.FullProduction {
	planets := view.Account().Planets
	productions := make([]models.FullProduction, 0, len(planets))
	for _, planet := range planets {
		productions = append(productions, e.FullProduction(view, planet))
	}
	return productions
}

func (e *Economy) accumulate(view models.View, planet *models.Planet, energyFactor float64) *Accumulator {
	energyFactor = math.Max(0, math.Min(1, energyFactor))
	acc := &Accumulator{}
	for _, scheme := range e.schemes.Production {
		scheme.AddProduction(view, planet, acc, energyFactor)
	}
	return acc
}

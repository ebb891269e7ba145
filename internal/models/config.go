package models

import (
	"errors"
	"fmt"
)

// ErrInvalidAccount is wrapped by every validation failure
var ErrInvalidAccount = errors.New("invalid account")

// MaxUtilization is the highest production percentage a facility accepts
const MaxUtilization = 150

// DefaultUniverse returns the parameters of a standard 1x universe
func DefaultUniverse() Universe {
	return Universe{
		EconomySpeed:             1,
		ResearchSpeed:            1,
		FleetSpeed:               1,
		Galaxies:                 9,
		CircularGalaxies:         true,
		CircularUniverse:         true,
		CollectorProductionBonus: 25,
		CollectorEnergyBonus:     10,
		CrawlerCap:               8,
		HyperspaceCargoBonus:     5,
		TradeRatios:              DefaultTradeRatios(),
	}
}

// ApplyDefaults fills zero-valued universe parameters with the standard ones
// and returns the names of the fields it filled. A collector bonus of zero is
// filled too; a negative bonus is kept and means the universe has none.
func ApplyDefaults(a *Account) []string {
	def := DefaultUniverse()
	u := &a.Universe
	var filled []string

	fillInt := func(name string, v *int, d int) {
		if *v == 0 {
			*v = d
			filled = append(filled, name)
		}
	}
	fillInt("economy_speed", &u.EconomySpeed, def.EconomySpeed)
	fillInt("research_speed", &u.ResearchSpeed, def.ResearchSpeed)
	fillInt("fleet_speed", &u.FleetSpeed, def.FleetSpeed)
	fillInt("galaxies", &u.Galaxies, def.Galaxies)
	fillInt("crawler_cap", &u.CrawlerCap, def.CrawlerCap)
	fillInt("collector_production_bonus", &u.CollectorProductionBonus, def.CollectorProductionBonus)
	fillInt("collector_energy_bonus", &u.CollectorEnergyBonus, def.CollectorEnergyBonus)
	fillInt("hyperspace_cargo_bonus", &u.HyperspaceCargoBonus, def.HyperspaceCargoBonus)

	if u.TradeRatios == (TradeRatios{}) {
		u.TradeRatios = def.TradeRatios
		filled = append(filled, "trade_ratios")
	}
	if a.Class == "" {
		a.Class = Unselected
	}
	if a.Research.Levels == nil {
		a.Research.Levels = make(map[ResearchType]int)
	}
	for _, p := range a.Planets {
		if p.Buildings == nil {
			p.Buildings = make(map[BuildingType]int)
		}
		if p.Utilization == (Utilization{}) {
			p.Utilization = FullUtilization()
			filled = append(filled, fmt.Sprintf("planets[%d].utilization", p.ID))
		}
	}
	return filled
}

// CollectorProductionShare is the collector mine bonus as a fraction
func (u Universe) CollectorProductionShare() float64 {
	return percent(u.CollectorProductionBonus)
}

// CollectorEnergyShare is the collector energy bonus as a fraction
func (u Universe) CollectorEnergyShare() float64 {
	return percent(u.CollectorEnergyBonus)
}

func percent(v int) float64 {
	if v <= 0 {
		return 0
	}
	return float64(v) / 100
}

// ValidateAccount checks the account is consistent enough to compute on
func ValidateAccount(a *Account) error {
	if a.Universe.EconomySpeed <= 0 {
		return fmt.Errorf("%w: economy speed must be positive, got %d", ErrInvalidAccount, a.Universe.EconomySpeed)
	}
	tr := a.Universe.TradeRatios
	if tr.Metal <= 0 || tr.Crystal <= 0 || tr.Deuterium <= 0 {
		return fmt.Errorf("%w: trade ratios must be positive, got %+v", ErrInvalidAccount, tr)
	}
	switch a.Class {
	case Unselected, Collector, General, Discoverer:
	default:
		return fmt.Errorf("%w: unknown class %q", ErrInvalidAccount, a.Class)
	}

	for rt, level := range a.Research.Levels {
		if level < 0 {
			return fmt.Errorf("%w: research %s has negative level %d", ErrInvalidAccount, rt, level)
		}
	}

	seen := make(map[int]bool)
	for _, p := range a.Planets {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate planet id %d", ErrInvalidAccount, p.ID)
		}
		seen[p.ID] = true
		if err := validatePlanet(p); err != nil {
			return err
		}
	}

	for i, u := range a.PlannedUpgrades {
		if u.Type.Kind == "" {
			return fmt.Errorf("%w: planned upgrade %d has no type", ErrInvalidAccount, i)
		}
		if u.Quantity <= 0 {
			return fmt.Errorf("%w: planned upgrade %d (%s) has non-positive quantity %d", ErrInvalidAccount, i, u.Type, u.Quantity)
		}
		if !u.Type.AccountWide() && !seen[u.Planet] {
			return fmt.Errorf("%w: planned upgrade %d (%s) targets unknown planet %d", ErrInvalidAccount, i, u.Type, u.Planet)
		}
	}
	return nil
}

func validatePlanet(p *Planet) error {
	if p.MinTemperature > p.MaxTemperature {
		return fmt.Errorf("%w: planet %d temperature range %d..%d is inverted",
			ErrInvalidAccount, p.ID, p.MinTemperature, p.MaxTemperature)
	}
	for bt, level := range p.Buildings {
		if level < 0 {
			return fmt.Errorf("%w: planet %d building %s has negative level %d", ErrInvalidAccount, p.ID, bt, level)
		}
	}
	for bt, level := range p.Moon.Buildings {
		if level < 0 {
			return fmt.Errorf("%w: moon of planet %d building %s has negative level %d", ErrInvalidAccount, p.ID, bt, level)
		}
	}
	for st, count := range p.Ships {
		if count < 0 {
			return fmt.Errorf("%w: planet %d has negative %s count %d", ErrInvalidAccount, p.ID, st, count)
		}
	}
	for st, count := range p.Moon.Ships {
		if count < 0 {
			return fmt.Errorf("%w: moon of planet %d has negative %s count %d", ErrInvalidAccount, p.ID, st, count)
		}
	}

	u := p.Utilization
	for name, v := range map[string]int{
		"metal":           u.Metal,
		"crystal":         u.Crystal,
		"deuterium":       u.Deuterium,
		"solar_plant":     u.SolarPlant,
		"fusion_reactor":  u.FusionReactor,
		"solar_satellite": u.SolarSatellite,
		"crawler":         u.Crawler,
	} {
		if v < 0 || v > MaxUtilization {
			return fmt.Errorf("%w: planet %d %s utilization %d outside 0..%d", ErrInvalidAccount, p.ID, name, v, MaxUtilization)
		}
	}
	return nil
}

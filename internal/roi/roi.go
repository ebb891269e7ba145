// Package roi estimates how long a planned upgrade takes to pay for itself.
package roi

import (
	"math"
	"time"

	"github.com/napolitain/ogame-economy/internal/models"
	"github.com/napolitain/ogame-economy/internal/overlay"
	"github.com/napolitain/ogame-economy/internal/rules"
)

// maxSeconds is the longest payback a time.Duration can hold
const maxSeconds = float64(math.MaxInt64 / int64(time.Second))

// Supported reports whether an upgrade type's value is a direct production
// change, which is all the calculator knows how to price
func Supported(t models.UpgradeType) bool {
	switch t.Kind {
	case models.KindBuilding:
		switch t.Building {
		case models.MetalMine, models.CrystalMine, models.DeuteriumSynthesizer,
			models.SolarPlant, models.FusionReactor:
			return true
		}
	case models.KindResearch:
		switch t.Research {
		case models.Astrophysics, models.Plasma:
			return true
		}
	case models.KindShipyard:
		switch t.Shipyard {
		case models.Crawler, models.SolarSatellite:
			return true
		}
	}
	return false
}

// Metric is the raw material of a payback estimate, all in metal units
type Metric struct {
	Cost    float64
	Current float64 // hourly production before the upgrade
	New     float64 // hourly production after it
}

// Gain returns the hourly production the upgrade adds
func (m Metric) Gain() float64 {
	return m.New - m.Current
}

// Payback converts the metric into a duration. It reports false when the
// upgrade adds nothing, or would take longer than a Duration can hold.
func (m Metric) Payback() (time.Duration, bool) {
	gain := m.Gain()
	if gain <= 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return 0, false
	}
	seconds := math.Trunc(m.Cost / gain * 3600)
	if seconds < 0 || seconds >= maxSeconds || math.IsNaN(seconds) {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

// Compute returns the payback time of a planned upgrade. The state before it
// is the account with every upgrade planned ahead of it; the upgrade need not
// be in the plan, in which case the whole plan precedes it.
func Compute(ruleSet *rules.RuleSet, account *models.Account, upgrade *models.PlannedUpgrade) (time.Duration, bool) {
	metric, ok := Measure(ruleSet, account, upgrade)
	if !ok {
		return 0, false
	}
	return metric.Payback()
}

// Measure computes the cost and production change of a planned upgrade. It
// reports false for unsupported types, empty upgrades, upgrades already paid
// for and accounts without planets.
func Measure(ruleSet *rules.RuleSet, account *models.Account, upgrade *models.PlannedUpgrade) (Metric, bool) {
	if upgrade.Quantity <= 0 || !Supported(upgrade.Type) || account.PlanetCount() == 0 {
		return Metric{}, false
	}
	economy := ruleSet.Economy()
	tr := account.Universe.TradeRatios
	current := overlay.New(account).Before(upgrade)
	projected := current.With(upgrade)

	cost, ok := projected.Cost(economy, upgrade)
	if !ok {
		return Metric{}, false
	}
	metric := Metric{Cost: cost.MetalValue(tr)}

	switch {
	case upgrade.Type.Kind == models.KindResearch && upgrade.Type.Research == models.Astrophysics:
		metric.Current = accountValue(current, economy, tr)
		_, to := projected.Range(upgrade)
		planets := float64(account.PlanetCount())
		newPlanets := float64((to+1)/2 + 1)
		metric.New = metric.Current * newPlanets / planets
		metric.Cost += economy.StationaryValue(current).MetalValue(tr) / planets
	case upgrade.Type.AccountWide():
		metric.Current = accountValue(current, economy, tr)
		metric.New = accountValue(projected, economy, tr)
	default:
		planet := account.Planet(upgrade.Planet)
		if planet == nil {
			return Metric{}, false
		}
		metric.Current = current.Production(economy, planet).MetalValue(tr)
		metric.New = projected.Production(economy, planet).MetalValue(tr)
	}
	return metric, true
}

func accountValue(o *overlay.Overlay, economy *rules.Economy, tr models.TradeRatios) float64 {
	var total float64
	for _, p := range o.AccountProduction(economy) {
		total += p.MetalValue(tr)
	}
	return total
}

// Result is one row of a plan evaluation
type Result struct {
	Upgrade *models.PlannedUpgrade
	From    int
	To      int
	Cost    models.UpgradeCost
	Paid    bool
	ROI     time.Duration
	HasROI  bool
}

// ComputeAll evaluates every planned upgrade of the account, in plan order
func ComputeAll(ruleSet *rules.RuleSet, account *models.Account) []Result {
	plan := overlay.New(account)
	economy := ruleSet.Economy()
	results := make([]Result, 0, len(account.PlannedUpgrades))
	for _, u := range account.PlannedUpgrades {
		from, to := plan.Range(u)
		r := Result{Upgrade: u, From: from, To: to, Paid: plan.Paid(u)}
		r.Cost, _ = plan.Cost(economy, u)
		r.ROI, r.HasROI = Compute(ruleSet, account, u)
		results = append(results, r)
	}
	return results
}

package rules

import (
	"math"
	"testing"

	"github.com/napolitain/ogame-economy/internal/models"
)

func TestUpgradeCostPlanetScope(t *testing.T) {
	planets := []*models.Planet{newTestPlanet(1, nil), newTestPlanet(2, nil), newTestPlanet(3, nil)}
	account := newTestAccount(planets...)
	economy := latestEconomy()
	metal := models.BuildingUpgrade(models.MetalMine)

	one := economy.UpgradeCost(account, planets[0], metal, 10, 11)
	all := economy.UpgradeCost(account, nil, metal, 10, 11)
	if all != one.Multiply(3) {
		t.Errorf("account-wide building cost = %+v, want 3 × %+v", all, one)
	}
	if one.Economy != (models.Cost{Metal: 3460, Crystal: 865}) {
		t.Errorf("metal mine 10→11 = %+v", one.Economy)
	}

	plasma := models.ResearchUpgrade(models.Plasma)
	if economy.UpgradeCost(account, nil, plasma, 0, 1) != economy.UpgradeCost(account, planets[1], plasma, 0, 1) {
		t.Error("research cost should not depend on the planet")
	}
}

func TestUpgradeCostInapplicable(t *testing.T) {
	account := newTestAccount(newTestPlanet(1, nil))
	economy := latestEconomy()
	metal := models.BuildingUpgrade(models.MetalMine)

	if got := economy.UpgradeCost(account, nil, metal, 5, 5); !got.IsZero() {
		t.Errorf("no-op upgrade = %+v, want zero", got)
	}
	if got := economy.UpgradeCost(account, nil, metal, 3, 0); !got.IsZero() {
		t.Errorf("downgrade = %+v, want zero", got)
	}
	if got := economy.UpgradeCost(account, nil, models.UpgradeType{}, 0, 1); !got.IsZero() {
		t.Errorf("unknown type = %+v, want zero", got)
	}
}

func TestEveryUpgradeTypeHasACost(t *testing.T) {
	account := newTestAccount(newTestPlanet(1, nil))
	for _, rs := range DefaultRegistry().RuleSets() {
		economy := rs.Economy()
		for _, ut := range models.AllUpgradeTypes() {
			if _, ok := economy.Scheme(ut); !ok {
				t.Errorf("%s: no scheme for %s", rs.Name(), ut)
			}
			if ut == models.ResearchUpgrade(models.Graviton) {
				continue
			}
			if economy.UpgradeCost(account, account.Planets[0], ut, 0, 1).IsZero() {
				t.Errorf("%s: %s level 1 is free", rs.Name(), ut)
			}
		}
	}
}

func TestCostCategories(t *testing.T) {
	account := newTestAccount(newTestPlanet(1, nil))
	economy := latestEconomy()
	planet := account.Planets[0]

	tests := map[models.UpgradeType]models.PointType{
		models.BuildingUpgrade(models.Shipyard):       models.EconomyPoints,
		models.ResearchUpgrade(models.Armor):          models.ResearchPoints,
		models.ShipyardUpgrade(models.Crawler):        models.EconomyPoints,
		models.ShipyardUpgrade(models.SolarSatellite): models.EconomyPoints,
		models.ShipyardUpgrade(models.Battleship):     models.MilitaryPoints,
		models.ShipyardUpgrade(models.RocketLauncher): models.MilitaryPoints,
	}
	for ut, pt := range tests {
		cost := economy.UpgradeCost(account, planet, ut, 0, 1)
		if cost.In(pt) != cost.Total() {
			t.Errorf("%s should be accounted as %s: %+v", ut, pt, cost)
		}
	}
}

func TestAccountValue(t *testing.T) {
	home := newTestPlanet(1, map[models.BuildingType]int{models.MetalMine: 2})
	home.SetBuildingLevel(models.LunarBase, true, 1)
	home.SetStationedShips(models.SmallCargo, false, 3)
	home.SetStationedShips(models.RocketLauncher, false, 10)
	account := newTestAccount(home)
	account.Research.SetLevel(models.EnergyTech, 1)
	economy := latestEconomy()

	buildings := economy.BuildingValue(account)
	// Metal mine 0→2 plus lunar base 0→1
	wantBuildings := models.Cost{Metal: 60 + 90 + 20_000, Crystal: 15 + 23 + 40_000, Deuterium: 20_000}
	if buildings.Economy != wantBuildings {
		t.Errorf("building value = %+v, want %+v", buildings.Economy, wantBuildings)
	}

	stationary := economy.StationaryValue(account)
	if got := stationary.Military; got != (models.Cost{Metal: 20_000}) {
		t.Errorf("stationary value should count defenses only: %+v", got)
	}

	total := economy.AccountValue(account)
	if got := total.Military; got != (models.Cost{Metal: 26_000, Crystal: 6000}) {
		t.Errorf("military value = %+v", got)
	}
	if got := total.Research; got != (models.Cost{Crystal: 800, Deuterium: 400}) {
		t.Errorf("research value = %+v", got)
	}
}

func TestStationaryValueSkipsMoons(t *testing.T) {
	home := newTestPlanet(1, map[models.BuildingType]int{models.MetalMine: 2})
	home.SetStationedShips(models.RocketLauncher, false, 10)
	account := newTestAccount(home)
	economy := latestEconomy()
	before := economy.StationaryValue(account)

	if want := (models.Cost{Metal: 60 + 90, Crystal: 15 + 23}); before.Economy != want {
		t.Errorf("stationary buildings = %+v, want %+v", before.Economy, want)
	}

	home.SetBuildingLevel(models.LunarBase, true, 1)
	home.SetStationedShips(models.RocketLauncher, true, 8)
	home.SetStationedShips(models.SolarSatellite, true, 4)
	if got := economy.StationaryValue(account); got != before {
		t.Errorf("moon levels changed the stationary value: %+v, want %+v", got, before)
	}
	if got := economy.BuildingValue(account).Economy; got == before.Economy {
		t.Error("building value should still count the lunar base")
	}
}

func TestColonyCostAmortizesBuildings(t *testing.T) {
	planets := []*models.Planet{
		newTestPlanet(1, map[models.BuildingType]int{models.MetalMine: 4}),
		newTestPlanet(2, map[models.BuildingType]int{models.MetalMine: 4}),
	}
	account := newTestAccount(planets...)
	economy := latestEconomy()

	got := economy.ColonyCost(account, 2, 3)
	perPlanet := economy.BuildingValue(account).Economy.Divide(2)
	if got.Economy != perPlanet {
		t.Errorf("colony building share = %+v, want %+v", got.Economy, perPlanet)
	}
	astro := economy.UpgradeCost(account, nil, models.ResearchUpgrade(models.Astrophysics), 1, 3)
	if got.Research != astro.Research {
		t.Errorf("colony research = %+v, want astrophysics 1→3 %+v", got.Research, astro.Research)
	}
}

func TestFullProductionMatchesParts(t *testing.T) {
	planet := newTestPlanet(1, map[models.BuildingType]int{
		models.MetalMine: 20, models.CrystalMine: 17, models.DeuteriumSynthesizer: 15,
		models.SolarPlant: 18, models.FusionReactor: 4,
	})
	account := newTestAccount(planet)
	economy := latestEconomy()

	full := economy.FullProduction(account, planet)
	ef := economy.EnergyFactor(account, planet)
	if ef <= 0 || ef > 1 {
		t.Fatalf("energy factor %v out of range", ef)
	}
	for _, rt := range []models.ResourceType{models.Metal, models.Crystal, models.Deuterium} {
		want := economy.Production(account, planet, rt, ef).Net()
		if math.Abs(full.Of(rt).Net()-want) > epsilon {
			t.Errorf("%s: full = %v, separate = %v", rt, full.Of(rt).Net(), want)
		}
	}
	if math.Abs(economy.EnergyBalance(account, planet)-full.Energy.Net()) > epsilon {
		t.Errorf("energy balance mismatch")
	}

	perPlanet := economy.AccountProduction(account)
	if len(perPlanet) != 1 || perPlanet[0].Metal.Net() != full.Metal.Net() {
		t.Errorf("AccountProduction = %+v", perPlanet)
	}
}

func TestEngineerBoostsEnergy(t *testing.T) {
	planet := newTestPlanet(1, map[models.BuildingType]int{models.SolarPlant: 10})
	account := newTestAccount(planet)
	economy := latestEconomy()

	before := economy.EnergyProduction(account, planet).TotalProduction
	account.Officers.Engineer = true
	account.Officers.CommandingStaff = true
	after := economy.EnergyProduction(account, planet).TotalProduction
	if want := before * 1.12; math.Abs(after-want) > 1e-6 {
		t.Errorf("energy with engineer and staff = %v, want %v", after, want)
	}
}

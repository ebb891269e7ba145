package models

import (
	"errors"
	"slices"
	"testing"
)

func validAccount() *Account {
	a := &Account{
		Name:     "test",
		Universe: DefaultUniverse(),
		Planets: []*Planet{
			{ID: 1, Name: "Home", MinTemperature: -10, MaxTemperature: 30, Utilization: FullUtilization(),
				Buildings: map[BuildingType]int{MetalMine: 10}},
			{ID: 2, Name: "Colony", MinTemperature: 40, MaxTemperature: 80, Utilization: FullUtilization(),
				Buildings: map[BuildingType]int{}},
		},
		PlannedUpgrades: []*PlannedUpgrade{
			{Type: BuildingUpgrade(MetalMine), Planet: 1, Quantity: 1},
			{Type: ResearchUpgrade(Plasma), Quantity: 2},
		},
	}
	ApplyDefaults(a)
	return a
}

func TestApplyDefaults(t *testing.T) {
	a := &Account{Planets: []*Planet{{ID: 1}}}
	filled := ApplyDefaults(a)

	def := DefaultUniverse()
	if a.Universe.EconomySpeed != 1 || a.Universe.CrawlerCap != def.CrawlerCap {
		t.Errorf("universe defaults not applied: %+v", a.Universe)
	}
	if a.Universe.TradeRatios != DefaultTradeRatios() {
		t.Errorf("trade ratios = %+v", a.Universe.TradeRatios)
	}
	if a.Universe.CollectorProductionBonus != 25 || a.Universe.CollectorEnergyBonus != 10 {
		t.Errorf("collector bonuses = %d/%d, want 25/10",
			a.Universe.CollectorProductionBonus, a.Universe.CollectorEnergyBonus)
	}
	if a.Class != Unselected {
		t.Errorf("class = %q, want %q", a.Class, Unselected)
	}
	if a.Planets[0].Utilization != FullUtilization() {
		t.Errorf("utilization = %+v, want full", a.Planets[0].Utilization)
	}
	for _, name := range []string{"economy_speed", "trade_ratios", "planets[1].utilization"} {
		if !slices.Contains(filled, name) {
			t.Errorf("filled fields %v should include %s", filled, name)
		}
	}

	// A second pass has nothing left to fill
	if again := ApplyDefaults(a); len(again) != 0 {
		t.Errorf("second ApplyDefaults filled %v", again)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	a := &Account{Universe: Universe{EconomySpeed: 8, TradeRatios: TradeRatios{Metal: 3, Crystal: 2, Deuterium: 1}}}
	ApplyDefaults(a)
	if a.Universe.EconomySpeed != 8 {
		t.Errorf("economy speed overwritten: %d", a.Universe.EconomySpeed)
	}
	if a.Universe.TradeRatios.Metal != 3 {
		t.Errorf("trade ratios overwritten: %+v", a.Universe.TradeRatios)
	}
}

func TestValidateAccount(t *testing.T) {
	if err := ValidateAccount(validAccount()); err != nil {
		t.Fatalf("valid account rejected: %v", err)
	}

	tests := map[string]func(a *Account){
		"duplicate planet":   func(a *Account) { a.Planets[1].ID = 1 },
		"negative building":  func(a *Account) { a.Planets[0].Buildings[MetalMine] = -1 },
		"negative research":  func(a *Account) { a.Research.SetLevel(Plasma, -2) },
		"negative ships":     func(a *Account) { a.Planets[0].SetStationedShips(Crawler, false, -5) },
		"utilization high":   func(a *Account) { a.Planets[0].Utilization.Metal = MaxUtilization + 1 },
		"utilization low":    func(a *Account) { a.Planets[1].Utilization.Crawler = -1 },
		"inverted temp":      func(a *Account) { a.Planets[0].MinTemperature = 100 },
		"unknown planet":     func(a *Account) { a.PlannedUpgrades[0].Planet = 9 },
		"zero quantity":      func(a *Account) { a.PlannedUpgrades[1].Quantity = 0 },
		"untyped upgrade":    func(a *Account) { a.PlannedUpgrades[1].Type = UpgradeType{} },
		"unknown class":      func(a *Account) { a.Class = "pirate" },
		"zero speed":         func(a *Account) { a.Universe.EconomySpeed = 0 },
		"zero trade ratio":   func(a *Account) { a.Universe.TradeRatios.Crystal = 0 },
		"negative moon":      func(a *Account) { a.Planets[0].SetBuildingLevel(LunarBase, true, -1) },
		"negative moon ship": func(a *Account) { a.Planets[0].SetStationedShips(SolarSatellite, true, -1) },
	}

	for name, mutate := range tests {
		a := validAccount()
		mutate(a)
		err := ValidateAccount(a)
		if err == nil {
			t.Errorf("%s: expected validation error", name)
			continue
		}
		if !errors.Is(err, ErrInvalidAccount) {
			t.Errorf("%s: error %v should wrap ErrInvalidAccount", name, err)
		}
	}
}

func TestNegativeCollectorBonusIsKept(t *testing.T) {
	a := &Account{Universe: Universe{CollectorProductionBonus: -1, CollectorEnergyBonus: 0}}
	filled := ApplyDefaults(a)

	if a.Universe.CollectorProductionBonus != -1 || slices.Contains(filled, "collector_production_bonus") {
		t.Errorf("production bonus = %d, filled %v", a.Universe.CollectorProductionBonus, filled)
	}
	if a.Universe.CollectorEnergyBonus != 10 {
		t.Errorf("energy bonus = %d, want the default 10", a.Universe.CollectorEnergyBonus)
	}
	if got := a.Universe.CollectorProductionShare(); got != 0 {
		t.Errorf("production share = %v, want 0", got)
	}
	if got := a.Universe.CollectorEnergyShare(); got != 0.1 {
		t.Errorf("energy share = %v, want 0.1", got)
	}
	if err := ValidateAccount(a); err != nil {
		t.Errorf("a universe without collector bonus should validate: %v", err)
	}
}

func TestUtilizationBoundsAccepted(t *testing.T) {
	a := validAccount()
	a.Planets[0].Utilization.Metal = MaxUtilization
	a.Planets[0].Utilization.Crystal = 0
	if err := ValidateAccount(a); err != nil {
		t.Errorf("0 and %d%% should be accepted: %v", MaxUtilization, err)
	}
}

func TestAccountLevels(t *testing.T) {
	a := validAccount()
	home := a.Planet(1)
	home.SetBuildingLevel(LunarBase, true, 3)
	home.SetStationedShips(Crawler, false, 12)
	a.Research.SetLevel(Plasma, 7)

	if got := a.Level(home, BuildingUpgrade(MetalMine), false); got != 10 {
		t.Errorf("metal mine = %d, want 10", got)
	}
	if got := a.Level(home, BuildingUpgrade(LunarBase), true); got != 3 {
		t.Errorf("lunar base = %d, want 3", got)
	}
	if got := a.Level(home, ShipyardUpgrade(Crawler), false); got != 12 {
		t.Errorf("crawlers = %d, want 12", got)
	}
	if got := a.Level(nil, ResearchUpgrade(Plasma), false); got != 7 {
		t.Errorf("plasma = %d, want 7", got)
	}
	if got := a.Level(nil, BuildingUpgrade(MetalMine), false); got != 0 {
		t.Errorf("building without planet = %d, want 0", got)
	}
	if a.Planet(42) != nil {
		t.Error("unknown planet should be nil")
	}
}

func TestUnderConstruction(t *testing.T) {
	a := validAccount()
	a.Planet(1).CurrentUpgrade = MetalMine
	a.Research.CurrentUpgrade = Plasma

	if !a.UnderConstruction(a.PlannedUpgrades[0]) {
		t.Error("metal mine on planet 1 is being built")
	}
	if !a.UnderConstruction(a.PlannedUpgrades[1]) {
		t.Error("plasma is being researched")
	}
	other := &PlannedUpgrade{Type: BuildingUpgrade(MetalMine), Planet: 2, Quantity: 1}
	if a.UnderConstruction(other) {
		t.Error("planet 2 builds nothing")
	}
	moon := &PlannedUpgrade{Type: BuildingUpgrade(MetalMine), Planet: 1, Moon: true, Quantity: 1}
	if a.UnderConstruction(moon) {
		t.Error("the moon builds nothing")
	}
}

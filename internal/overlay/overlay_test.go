package overlay

import (
	"math"
	"testing"

	"github.com/napolitain/ogame-economy/internal/models"
	"github.com/napolitain/ogame-economy/internal/rules"
)

var metalMine = models.BuildingUpgrade(models.MetalMine)

func testAccount() *models.Account {
	a := &models.Account{
		Name:     "test",
		Universe: models.DefaultUniverse(),
		Planets: []*models.Planet{
			{ID: 1, Name: "Home", MaxTemperature: 40, Utilization: models.FullUtilization(),
				Buildings: map[models.BuildingType]int{models.MetalMine: 5, models.SolarPlant: 20}},
			{ID: 2, Name: "Colony", MaxTemperature: 40, Utilization: models.FullUtilization(),
				Buildings: map[models.BuildingType]int{models.MetalMine: 1, models.SolarPlant: 5}},
		},
	}
	a.Research.SetLevel(models.Plasma, 3)
	models.ApplyDefaults(a)
	return a
}

func plan(t models.UpgradeType, planet, quantity int) *models.PlannedUpgrade {
	return &models.PlannedUpgrade{Type: t, Planet: planet, Quantity: quantity}
}

func economy() *rules.Economy {
	return rules.DefaultRegistry().Latest().Economy()
}

func TestUpgradesStackOnTheSameTarget(t *testing.T) {
	account := testAccount()
	account.PlannedUpgrades = []*models.PlannedUpgrade{
		plan(metalMine, 1, 2),
		plan(metalMine, 2, 4),
		plan(metalMine, 1, 3),
		plan(metalMine, 1, 1),
	}
	o := New(account)

	want := [][2]int{{5, 7}, {1, 5}, {7, 10}, {10, 11}}
	for i, u := range account.PlannedUpgrades {
		from, to := o.Range(u)
		if from != want[i][0] || to != want[i][1] {
			t.Errorf("upgrade %d: range = (%d, %d), want (%d, %d)", i, from, to, want[i][0], want[i][1])
		}
	}

	home, colony := account.Planet(1), account.Planet(2)
	if got := o.Level(home, metalMine, false); got != 11 {
		t.Errorf("overlay home metal mine = %d, want 11", got)
	}
	if got := o.Level(colony, metalMine, false); got != 5 {
		t.Errorf("overlay colony metal mine = %d, want 5", got)
	}
	if got := o.Level(home, metalMine, true); got != 0 {
		t.Errorf("moon metal mine = %d, want 0", got)
	}
	// The account itself is never written
	if home.Buildings[models.MetalMine] != 5 || colony.Buildings[models.MetalMine] != 1 {
		t.Errorf("account modified: %v %v", home.Buildings, colony.Buildings)
	}
}

func TestResearchStacksAccountWide(t *testing.T) {
	account := testAccount()
	plasma := models.ResearchUpgrade(models.Plasma)
	first := plan(plasma, 0, 1)
	// The planet of a research upgrade is irrelevant
	second := plan(plasma, 2, 2)
	account.PlannedUpgrades = []*models.PlannedUpgrade{first, second}
	o := New(account)

	if from, to := o.Range(second); from != 4 || to != 6 {
		t.Errorf("second plasma range = (%d, %d), want (4, 6)", from, to)
	}
	for _, planet := range []*models.Planet{nil, account.Planet(1), account.Planet(2)} {
		if got := o.Level(planet, plasma, false); got != 6 {
			t.Errorf("plasma on %v = %d, want 6", planet, got)
		}
	}
	if account.Research.Level(models.Plasma) != 3 {
		t.Error("account research modified")
	}
}

func TestPaidUpgrade(t *testing.T) {
	account := testAccount()
	account.Planet(1).CurrentUpgrade = models.MetalMine
	building := plan(metalMine, 1, 1)
	next := plan(metalMine, 1, 1)
	elsewhere := plan(metalMine, 2, 1)
	account.PlannedUpgrades = []*models.PlannedUpgrade{building, next, elsewhere}
	o := New(account)

	if !o.Paid(building) {
		t.Error("the upgrade under construction should be paid")
	}
	if o.Paid(next) || o.Paid(elsewhere) {
		t.Error("only the first upgrade on the building target is paid")
	}
	if _, ok := o.Cost(economy(), building); ok {
		t.Error("paid upgrade should have no cost")
	}

	cost, ok := o.Cost(economy(), next)
	if !ok {
		t.Fatal("unpaid upgrade should have a cost")
	}
	if want := economy().UpgradeCost(account, account.Planet(1), metalMine, 6, 7); cost != want {
		t.Errorf("cost = %+v, want %+v", cost, want)
	}

	total := o.TotalCost(economy())
	other, _ := o.Cost(economy(), elsewhere)
	if total != cost.Plus(other) {
		t.Errorf("total = %+v, want %+v", total, cost.Plus(other))
	}
}

func TestCostOfUnknownPlanet(t *testing.T) {
	account := testAccount()
	u := plan(metalMine, 9, 1)
	if _, ok := New(account).Cost(economy(), u); ok {
		t.Error("an upgrade on a missing planet has no cost")
	}
}

func TestCostMetalMine10To11(t *testing.T) {
	account := testAccount()
	account.Planet(1).Buildings[models.MetalMine] = 10
	u := plan(metalMine, 1, 1)
	account.PlannedUpgrades = []*models.PlannedUpgrade{u}

	cost, ok := New(account).Cost(economy(), u)
	if !ok || cost.Economy != (models.Cost{Metal: 3460, Crystal: 865}) {
		t.Errorf("Cost = %+v, %v", cost, ok)
	}
}

func TestBeforeAndWith(t *testing.T) {
	account := testAccount()
	a, b, c := plan(metalMine, 1, 1), plan(metalMine, 1, 2), plan(metalMine, 1, 3)
	account.PlannedUpgrades = []*models.PlannedUpgrade{a, b, c}
	o := New(account)
	home := account.Planet(1)

	if got := o.Before(b).Level(home, metalMine, false); got != 6 {
		t.Errorf("before b = %d, want 6", got)
	}
	if got := o.Before(a).Level(home, metalMine, false); got != 5 {
		t.Errorf("before a = %d, want 5", got)
	}
	outsider := plan(metalMine, 1, 10)
	if got := o.Before(outsider).Level(home, metalMine, false); got != 11 {
		t.Errorf("before an unfolded upgrade = %d, want 11", got)
	}

	with := o.Before(b).With(b)
	if got := with.Level(home, metalMine, false); got != 8 {
		t.Errorf("before b with b = %d, want 8", got)
	}
	// Derived overlays leave their source alone
	if got := o.Level(home, metalMine, false); got != 11 {
		t.Errorf("source overlay = %d, want 11", got)
	}
	if len(o.Upgrades()) != 3 {
		t.Errorf("source upgrades = %d, want 3", len(o.Upgrades()))
	}
}

func TestRemove(t *testing.T) {
	account := testAccount()
	a, b := plan(metalMine, 1, 2), plan(metalMine, 1, 3)
	account.PlannedUpgrades = []*models.PlannedUpgrade{a, b}
	o := New(account)
	home := account.Planet(1)

	if !o.Remove(a) {
		t.Fatal("Remove(a) = false")
	}
	if o.Remove(a) {
		t.Error("removing twice should report false")
	}
	if got := o.Level(home, metalMine, false); got != 8 {
		t.Errorf("level after remove = %d, want 8", got)
	}
	if from, _ := o.Range(b); from != 5 {
		t.Errorf("b now starts at %d, want 5", from)
	}
}

func TestProductionCache(t *testing.T) {
	account := testAccount()
	o := New(account)
	home := account.Planet(1)
	e := economy()

	before := o.Production(e, home)
	if math.Abs(before.Metal.Net()-e.FullProduction(account, home).Metal.Net()) > 1e-9 {
		t.Fatal("overlay without upgrades should match the account")
	}

	// Edits to the account are invisible until invalidated
	home.Buildings[models.MetalMine] = 15
	if got := o.Production(e, home); got.Metal.Net() != before.Metal.Net() {
		t.Errorf("cached production changed without invalidation")
	}
	o.Invalidate(home.ID)
	after := o.Production(e, home)
	if after.Metal.Net() <= before.Metal.Net() {
		t.Errorf("production after invalidation = %v, want more than %v", after.Metal.Net(), before.Metal.Net())
	}

	// Folding an upgrade invalidates by itself
	extra := plan(metalMine, 1, 2)
	o.Add(extra)
	if got := o.Production(e, home); got.Metal.Net() <= after.Metal.Net() {
		t.Errorf("production after Add = %v, want more than %v", got.Metal.Net(), after.Metal.Net())
	}

	// So does taking it back out
	if !o.Remove(extra) {
		t.Fatal("Remove(extra) = false")
	}
	if got := o.Production(e, home); math.Abs(got.Metal.Net()-after.Metal.Net()) > 1e-9 {
		t.Errorf("production after Remove = %v, want %v", got.Metal.Net(), after.Metal.Net())
	}
	o.Add(extra)

	// Research touches every planet
	colony := account.Planet(2)
	colonyBefore := o.Production(e, colony)
	o.Add(plan(models.ResearchUpgrade(models.Plasma), 0, 5))
	if got := o.Production(e, colony); got.Metal.Net() <= colonyBefore.Metal.Net() {
		t.Errorf("plasma did not reach the colony: %v vs %v", got.Metal.Net(), colonyBefore.Metal.Net())
	}

	home.Buildings[models.MetalMine] = 5
	o.InvalidateAll()
	if got := len(o.AccountProduction(e)); got != 2 {
		t.Errorf("AccountProduction returned %d planets", got)
	}
}

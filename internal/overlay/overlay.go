// Package overlay presents an account with its planned upgrades folded in,
// without ever writing to the account itself.
package overlay

import (
	"slices"

	lru "github.com/hashicorp/golang-lru"

	"github.com/napolitain/ogame-economy/internal/models"
	"github.com/napolitain/ogame-economy/internal/rules"
)

const cacheSize = 256

// target identifies what a planned upgrade raises. Account-wide upgrades
// always use planet 0 and no moon.
type target struct {
	planet int
	t      models.UpgradeType
	moon   bool
}

func targetOf(u *models.PlannedUpgrade) target {
	if u.Type.AccountWide() {
		return target{t: u.Type}
	}
	return target{planet: u.Planet, t: u.Type, moon: u.Moon}
}

type cacheKey struct {
	economy    *rules.Economy
	planet     int
	generation uint64
}

// Overlay is a speculative view of an account: every level is the account's
// level plus the quantities of the planned upgrades on the same target
type Overlay struct {
	account     *models.Account
	upgrades    []*models.PlannedUpgrade
	deltas      map[target]int
	generations map[int]uint64
	cache       *lru.Cache
}

// New folds the account's planned upgrades, in order
func New(account *models.Account) *Overlay {
	return newOverlay(account, account.PlannedUpgrades)
}

func newOverlay(account *models.Account, upgrades []*models.PlannedUpgrade) *Overlay {
	cache, _ := lru.New(cacheSize)
	o := &Overlay{
		account:     account,
		deltas:      make(map[target]int),
		generations: make(map[int]uint64),
		cache:       cache,
	}
	for _, u := range upgrades {
		o.fold(u)
	}
	return o
}

func (o *Overlay) fold(u *models.PlannedUpgrade) {
	o.upgrades = append(o.upgrades, u)
	o.deltas[targetOf(u)] += u.Quantity
}

// Account returns the underlying account. Its levels are the real ones; use
// Level for the speculative values.
func (o *Overlay) Account() *models.Account {
	return o.account
}

// Level returns the account level plus every folded upgrade on the target
func (o *Overlay) Level(planet *models.Planet, t models.UpgradeType, moon bool) int {
	base := o.account.Level(planet, t, moon)
	if t.AccountWide() {
		return base + o.deltas[target{t: t}]
	}
	if planet == nil {
		return base
	}
	return base + o.deltas[target{planet: planet.ID, t: t, moon: moon}]
}

// Upgrades returns the folded upgrades in order
func (o *Overlay) Upgrades() []*models.PlannedUpgrade {
	return slices.Clone(o.upgrades)
}

// Add folds another upgrade and invalidates the production it affects
func (o *Overlay) Add(u *models.PlannedUpgrade) {
	o.fold(u)
	o.invalidateFor(u)
}

// Remove unfolds an upgrade. It reports false when the upgrade was never folded.
func (o *Overlay) Remove(u *models.PlannedUpgrade) bool {
	i := slices.Index(o.upgrades, u)
	if i < 0 {
		return false
	}
	o.upgrades = slices.Delete(o.upgrades, i, i+1)
	key := targetOf(u)
	o.deltas[key] -= u.Quantity
	if o.deltas[key] == 0 {
		delete(o.deltas, key)
	}
	o.invalidateFor(u)
	return true
}

// Before returns a fresh overlay of the upgrades folded ahead of u. An upgrade
// that was never folded sees all of them.
func (o *Overlay) Before(u *models.PlannedUpgrade) *Overlay {
	i := slices.Index(o.upgrades, u)
	if i < 0 {
		i = len(o.upgrades)
	}
	return newOverlay(o.account, o.upgrades[:i])
}

// With returns a fresh overlay with one more upgrade folded last
func (o *Overlay) With(u *models.PlannedUpgrade) *Overlay {
	next := newOverlay(o.account, o.upgrades)
	next.fold(u)
	return next
}

// Range returns the levels an upgrade raises its target from and to: the
// account level plus every earlier upgrade on the same target, then plus its
// own quantity
func (o *Overlay) Range(u *models.PlannedUpgrade) (from, to int) {
	planet := o.account.Planet(u.Planet)
	from = o.account.Level(planet, u.Type, u.Moon)
	for _, prev := range o.upgrades {
		if prev == u {
			break
		}
		if prev.SameTarget(u) {
			from += prev.Quantity
		}
	}
	return from, from + u.Quantity
}

// Paid reports whether the upgrade is the one already under construction:
// it starts at the current level and the account is building its target
func (o *Overlay) Paid(u *models.PlannedUpgrade) bool {
	from, _ := o.Range(u)
	planet := o.account.Planet(u.Planet)
	return from == o.account.Level(planet, u.Type, u.Moon) && o.account.UnderConstruction(u)
}

// Cost returns what the upgrade still costs, evaluated against the upgrades
// ahead of it. It reports false for paid upgrades and for upgrades whose
// planet does not exist.
func (o *Overlay) Cost(economy *rules.Economy, u *models.PlannedUpgrade) (models.UpgradeCost, bool) {
	var planet *models.Planet
	if !u.Type.AccountWide() {
		if planet = o.account.Planet(u.Planet); planet == nil {
			return models.ZeroCost, false
		}
	}
	if o.Paid(u) {
		return models.ZeroCost, false
	}
	from, to := o.Range(u)
	return economy.UpgradeCost(o.Before(u), planet, u.Type, from, to), true
}

// TotalCost sums the cost of every folded upgrade that is not yet paid
func (o *Overlay) TotalCost(economy *rules.Economy) models.UpgradeCost {
	total := models.ZeroCost
	for _, u := range o.upgrades {
		if cost, ok := o.Cost(economy, u); ok {
			total = total.Plus(cost)
		}
	}
	return total
}

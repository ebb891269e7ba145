package overlay

import (
	"log/slog"

	"github.com/napolitain/ogame-economy/internal/models"
	"github.com/napolitain/ogame-economy/internal/rules"
)

// Production returns the planet's full production under the overlay,
// memoised until the planet is invalidated
func (o *Overlay) Production(economy *rules.Economy, planet *models.Planet) models.FullProduction {
	key := cacheKey{economy: economy, planet: planet.ID, generation: o.generations[planet.ID]}
	if cached, ok := o.cache.Get(key); ok {
		return cached.(models.FullProduction)
	}
	production := economy.FullProduction(o, planet)
	o.cache.Add(key, production)
	return production
}

// AccountProduction returns the production of every planet, in planet order
func (o *Overlay) AccountProduction(economy *rules.Economy) []models.FullProduction {
	productions := make([]models.FullProduction, 0, len(o.account.Planets))
	for _, planet := range o.account.Planets {
		productions = append(productions, o.Production(economy, planet))
	}
	return productions
}

// Invalidate drops the cached production of one planet. Callers must invalidate
// after changing the planet on the underlying account.
func (o *Overlay) Invalidate(planetID int) {
	o.generations[planetID]++
	slog.Debug("overlay cache invalidated", "planet", planetID, "generation", o.generations[planetID])
}

// InvalidateAll drops every cached production
func (o *Overlay) InvalidateAll() {
	clear(o.generations)
	o.cache.Purge()
	slog.Debug("overlay cache purged")
}

func (o *Overlay) invalidateFor(u *models.PlannedUpgrade) {
	if u.Type.AccountWide() {
		o.InvalidateAll()
		return
	}
	o.Invalidate(u.Planet)
}

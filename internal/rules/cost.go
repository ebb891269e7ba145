package rules

import (
	"errors"
	"fmt"
	"math"

	"github.com/napolitain/ogame-economy/internal/models"
)

// ErrInvalidScheme is wrapped by every scheme configuration error
var ErrInvalidScheme = errors.New("invalid cost scheme")

// SchemeKind selects the cost formula of a CostScheme
type SchemeKind int

const (
	// BuildingScheme is the geometric series, multiplied by the planets it applies to
	BuildingScheme SchemeKind = iota
	// TechnologyScheme is the geometric series, accounted as research
	TechnologyScheme
	// ColonyScheme remaps planet counts to astrophysics levels and adds one
	// planet's worth of buildings
	ColonyScheme
	// UnitScheme is a flat price per unit (ships, defenses)
	UnitScheme
)

func (k SchemeKind) String() string {
	switch k {
	case BuildingScheme:
		return "building"
	case TechnologyScheme:
		return "technology"
	case ColonyScheme:
		return "colony"
	case UnitScheme:
		return "unit"
	}
	return fmt.Sprintf("SchemeKind(%d)", int(k))
}

// CostScheme parametrizes the cost of raising one upgrade type
type CostScheme struct {
	Kind     SchemeKind
	Initial  models.Cost
	Exponent float64
	// Category only matters for UnitScheme; the other kinds imply theirs.
	Category models.PointType
}

// Building returns a building cost scheme
func Building(metal, crystal, deut int64, exponent float64) CostScheme {
	return CostScheme{Kind: BuildingScheme, Initial: models.Cost{Metal: metal, Crystal: crystal, Deuterium: deut}, Exponent: exponent}
}

// Technology returns a research cost scheme
func Technology(metal, crystal, deut int64, exponent float64) CostScheme {
	return CostScheme{Kind: TechnologyScheme, Initial: models.Cost{Metal: metal, Crystal: crystal, Deuterium: deut}, Exponent: exponent}
}

// Colony returns a colonization cost scheme
func Colony(metal, crystal, deut int64, exponent float64) CostScheme {
	return CostScheme{Kind: ColonyScheme, Initial: models.Cost{Metal: metal, Crystal: crystal, Deuterium: deut}, Exponent: exponent}
}

// Unit returns a per-unit cost scheme
func Unit(metal, crystal, deut int64, category models.PointType) CostScheme {
	return CostScheme{Kind: UnitScheme, Initial: models.Cost{Metal: metal, Crystal: crystal, Deuterium: deut}, Category: category}
}

// Validate rejects configurations the closed form cannot evaluate
func (s CostScheme) Validate() error {
	switch s.Kind {
	case BuildingScheme, TechnologyScheme, ColonyScheme:
		if s.Exponent <= 0 || s.Exponent == 1 {
			return fmt.Errorf("%w: %s scheme exponent %v", ErrInvalidScheme, s.Kind, s.Exponent)
		}
	case UnitScheme:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidScheme, int(s.Kind))
	}
	if s.Initial.Metal < 0 || s.Initial.Crystal < 0 || s.Initial.Deuterium < 0 {
		return fmt.Errorf("%w: negative initial cost %+v", ErrInvalidScheme, s.Initial)
	}
	return nil
}

// CostContext carries the account information some kinds need
type CostContext struct {
	// Planets the building upgrade is applied to
	Planets int
	// BuildingValue is the value of every building on the account
	BuildingValue models.UpgradeCost
	// PlanetCount is the account's current number of planets
	PlanetCount int
}

// ComputeCost returns the cost of raising a level from pre to post
func ComputeCost(s CostScheme, ctx CostContext, pre, post int) models.UpgradeCost {
	if post <= pre || post <= 0 {
		return models.ZeroCost
	}
	switch s.Kind {
	case BuildingScheme:
		planets := ctx.Planets
		if planets < 1 {
			planets = 1
		}
		return models.CostIn(models.EconomyPoints, seriesCost(s, pre, post)).Multiply(int64(planets))
	case TechnologyScheme:
		return models.CostIn(models.ResearchPoints, seriesCost(s, pre, post))
	case ColonyScheme:
		research := models.CostIn(models.ResearchPoints, seriesCost(s, pre*2-3, post*2-3))
		if ctx.PlanetCount <= 0 {
			return research
		}
		return research.Plus(ctx.BuildingValue.JustBuildings().Divide(int64(ctx.PlanetCount)))
	case UnitScheme:
		return models.CostIn(s.Category, s.Initial.Multiply(int64(post-pre)))
	}
	return models.ZeroCost
}

// seriesCost sums initial * e^level for level in [pre, post) in closed form.
// Sums past the int64 range saturate at math.MaxInt64.
func seriesCost(s CostScheme, pre, post int) models.Cost {
	e := s.Exponent
	factor := math.Pow(e, float64(pre)) * (1 - math.Pow(e, float64(post-pre))) / (1 - e)
	return models.Cost{
		Metal:     models.Amount(math.Ceil(float64(s.Initial.Metal) * factor)),
		Crystal:   models.Amount(math.Ceil(float64(s.Initial.Crystal) * factor)),
		Deuterium: models.Amount(math.Ceil(float64(s.Initial.Deuterium) * factor)),
	}
}

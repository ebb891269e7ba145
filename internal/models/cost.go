package models

import "math"

// Cost is an amount of each of the three resources
type Cost struct {
	Metal     int64
	Crystal   int64
	Deuterium int64
}

// Plus adds two costs
func (c Cost) Plus(other Cost) Cost {
	return Cost{
		Metal:     addSat(c.Metal, other.Metal),
		Crystal:   addSat(c.Crystal, other.Crystal),
		Deuterium: addSat(c.Deuterium, other.Deuterium),
	}
}

// Multiply scales the cost by n, saturating at the int64 range
func (c Cost) Multiply(n int64) Cost {
	return Cost{Metal: mulSat(c.Metal, n), Crystal: mulSat(c.Crystal, n), Deuterium: mulSat(c.Deuterium, n)}
}

// Divide splits the cost into n shares, rounding each resource up
func (c Cost) Divide(n int64) Cost {
	if n <= 1 {
		return c
	}
	return Cost{Metal: ceilDiv(c.Metal, n), Crystal: ceilDiv(c.Crystal, n), Deuterium: ceilDiv(c.Deuterium, n)}
}

// Sum returns the total amount of resources
func (c Cost) Sum() int64 {
	return addSat(addSat(c.Metal, c.Crystal), c.Deuterium)
}

// IsZero reports whether no resources are involved
func (c Cost) IsZero() bool {
	return c == Cost{}
}

// MetalValue converts the cost into metal-equivalent units
func (c Cost) MetalValue(tr TradeRatios) float64 {
	value := float64(c.Metal)
	if tr.Crystal > 0 {
		value += float64(c.Crystal) * tr.Metal / tr.Crystal
	}
	if tr.Deuterium > 0 {
		value += float64(c.Deuterium) * tr.Metal / tr.Deuterium
	}
	return value
}

func ceilDiv(a, n int64) int64 {
	return Amount(math.Ceil(float64(a) / float64(n)))
}

// Amount converts a whole float amount to int64, saturating at the int64
// range instead of wrapping. NaN counts as nothing.
func Amount(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func addSat(a, b int64) int64 {
	s := a + b
	switch {
	case a > 0 && b > 0 && s < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && s >= 0:
		return math.MinInt64
	}
	return s
}

func mulSat(a, n int64) int64 {
	if a == 0 || n == 0 {
		return 0
	}
	p := a * n
	if p/n == a && !(a == -1 && n == math.MinInt64) && !(n == -1 && a == math.MinInt64) {
		return p
	}
	if (a > 0) == (n > 0) {
		return math.MaxInt64
	}
	return math.MinInt64
}

// UpgradeCost is a Cost split by highscore category
type UpgradeCost struct {
	Economy  Cost
	Research Cost
	Military Cost
}

// ZeroCost is the cost of doing nothing
var ZeroCost = UpgradeCost{}

// CostIn returns an UpgradeCost with the whole amount in one category
func CostIn(pt PointType, c Cost) UpgradeCost {
	switch pt {
	case ResearchPoints:
		return UpgradeCost{Research: c}
	case MilitaryPoints:
		return UpgradeCost{Military: c}
	}
	return UpgradeCost{Economy: c}
}

// In returns the part of the cost accounted in a category
func (u UpgradeCost) In(pt PointType) Cost {
	switch pt {
	case ResearchPoints:
		return u.Research
	case MilitaryPoints:
		return u.Military
	}
	return u.Economy
}

// Plus adds two upgrade costs category by category
func (u UpgradeCost) Plus(other UpgradeCost) UpgradeCost {
	return UpgradeCost{
		Economy:  u.Economy.Plus(other.Economy),
		Research: u.Research.Plus(other.Research),
		Military: u.Military.Plus(other.Military),
	}
}

// Multiply scales every category by n
func (u UpgradeCost) Multiply(n int64) UpgradeCost {
	return UpgradeCost{
		Economy:  u.Economy.Multiply(n),
		Research: u.Research.Multiply(n),
		Military: u.Military.Multiply(n),
	}
}

// Divide splits every category into n shares (used to amortize colony costs)
func (u UpgradeCost) Divide(n int64) UpgradeCost {
	return UpgradeCost{
		Economy:  u.Economy.Divide(n),
		Research: u.Research.Divide(n),
		Military: u.Military.Divide(n),
	}
}

// Total merges all categories
func (u UpgradeCost) Total() Cost {
	return u.Economy.Plus(u.Research).Plus(u.Military)
}

// JustBuildings keeps only the economy category
func (u UpgradeCost) JustBuildings() UpgradeCost {
	return UpgradeCost{Economy: u.Economy}
}

// IsZero reports whether the upgrade is free
func (u UpgradeCost) IsZero() bool {
	return u == ZeroCost
}

// MetalValue converts the total into metal-equivalent units
func (u UpgradeCost) MetalValue(tr TradeRatios) float64 {
	return u.Total().MetalValue(tr)
}

// Points returns highscore points in a category (1 point per 1000 resources)
func (u UpgradeCost) Points(pt PointType) float64 {
	return float64(u.In(pt).Sum()) / 1000
}

// TotalPoints returns the points over every category
func (u UpgradeCost) TotalPoints() float64 {
	return float64(u.Total().Sum()) / 1000
}

package models

import "math"

// ProductionSource names a contribution to a resource's production
type ProductionSource string

const (
	SourceBase            ProductionSource = "base"
	SourceMine            ProductionSource = "mine"
	SourceSolarPlant      ProductionSource = "solar_plant"
	SourceFusionReactor   ProductionSource = "fusion_reactor"
	SourceSolarSatellite  ProductionSource = "solar_satellite"
	SourceCrawler         ProductionSource = "crawler"
	SourcePlasma          ProductionSource = "plasma"
	SourceGeologist       ProductionSource = "geologist"
	SourceEngineer        ProductionSource = "engineer"
	SourceCommandingStaff ProductionSource = "commanding_staff"
	SourceCollector       ProductionSource = "collector"
	SourcePlanetBonus     ProductionSource = "planet_bonus"
)

// Term is a single named contribution; negative amounts are consumption
type Term struct {
	Source ProductionSource
	Amount float64
}

// Production is the hourly production of one resource, decomposed into terms
type Production struct {
	Terms            []Term
	TotalProduction  float64
	TotalConsumption float64
}

// Net returns production minus consumption
func (p Production) Net() float64 {
	return p.TotalProduction - p.TotalConsumption
}

// Of returns the summed amount for a source
func (p Production) Of(source ProductionSource) float64 {
	var total float64
	for _, t := range p.Terms {
		if t.Source == source {
			total += t.Amount
		}
	}
	return total
}

// Add records a term, accounting it as production or consumption
func (p *Production) Add(source ProductionSource, amount float64) {
	if amount == 0 {
		return
	}
	for i := range p.Terms {
		if p.Terms[i].Source == source {
			p.Terms[i].Amount += amount
			p.account(amount)
			return
		}
	}
	p.Terms = append(p.Terms, Term{Source: source, Amount: amount})
	p.account(amount)
}

func (p *Production) account(amount float64) {
	if amount > 0 {
		p.TotalProduction += amount
	} else {
		p.TotalConsumption -= amount
	}
}

// FullProduction bundles the four resources of a planet
type FullProduction struct {
	Energy    Production
	Metal     Production
	Crystal   Production
	Deuterium Production
}

// Of returns the production of a resource
func (f FullProduction) Of(rt ResourceType) Production {
	switch rt {
	case Metal:
		return f.Metal
	case Crystal:
		return f.Crystal
	case Deuterium:
		return f.Deuterium
	case Energy:
		return f.Energy
	}
	return Production{}
}

// AsCost returns the net hourly material production, truncated to whole units
func (f FullProduction) AsCost() Cost {
	return Cost{
		Metal:     Amount(math.Floor(f.Metal.Net())),
		Crystal:   Amount(math.Floor(f.Crystal.Net())),
		Deuterium: Amount(math.Floor(f.Deuterium.Net())),
	}
}

// MetalValue converts the net hourly material production into metal units
func (f FullProduction) MetalValue(tr TradeRatios) float64 {
	value := f.Metal.Net()
	if tr.Crystal > 0 {
		value += f.Crystal.Net() * tr.Metal / tr.Crystal
	}
	if tr.Deuterium > 0 {
		value += f.Deuterium.Net() * tr.Metal / tr.Deuterium
	}
	return value
}

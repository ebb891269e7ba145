package rules

import "github.com/napolitain/ogame-economy/internal/models"

// Shipped rule set versions, oldest first
const (
	V710 = "7.1.0"
	V711 = "7.1.1"
	V750 = "7.5.0"
)

func schemes710() Schemes {
	b := func(bt models.BuildingType, s CostScheme) (models.UpgradeType, CostScheme) {
		return models.BuildingUpgrade(bt), s
	}
	r := func(rt models.ResearchType, s CostScheme) (models.UpgradeType, CostScheme) {
		return models.ResearchUpgrade(rt), s
	}
	u := func(st models.ShipyardItemType, s CostScheme) (models.UpgradeType, CostScheme) {
		return models.ShipyardUpgrade(st), s
	}
	military := func(metal, crystal, deut int64) CostScheme {
		return Unit(metal, crystal, deut, models.MilitaryPoints)
	}

	costs := make(map[models.UpgradeType]CostScheme)
	put := func(t models.UpgradeType, s CostScheme) { costs[t] = s }

	put(b(models.MetalMine, Building(60, 15, 0, 1.5)))
	put(b(models.CrystalMine, Building(48, 24, 0, 1.6)))
	put(b(models.DeuteriumSynthesizer, Building(225, 75, 0, 1.5)))
	put(b(models.SolarPlant, Building(75, 30, 0, 1.5)))
	put(b(models.FusionReactor, Building(900, 360, 180, 1.8)))
	put(b(models.RoboticsFactory, Building(400, 120, 200, 2)))
	put(b(models.NaniteFactory, Building(1_000_000, 500_000, 100_000, 2)))
	put(b(models.Shipyard, Building(400, 200, 100, 2)))
	put(b(models.MetalStorage, Building(1000, 0, 0, 2)))
	put(b(models.CrystalStorage, Building(1000, 500, 0, 2)))
	put(b(models.DeuteriumStorage, Building(1000, 1000, 0, 2)))
	put(b(models.ResearchLab, Building(200, 400, 200, 2)))
	put(b(models.Terraformer, Building(0, 50_000, 100_000, 2)))
	put(b(models.AllianceDepot, Building(20_000, 40_000, 0, 2)))
	put(b(models.MissileSilo, Building(20_000, 20_000, 1000, 2)))
	put(b(models.SpaceDock, Building(200, 0, 50, 5)))
	put(b(models.LunarBase, Building(20_000, 40_000, 20_000, 2)))
	put(b(models.SensorPhalanx, Building(20_000, 40_000, 20_000, 2)))
	put(b(models.JumpGate, Building(2_000_000, 4_000_000, 2_000_000, 2)))

	put(r(models.EnergyTech, Technology(0, 800, 400, 2)))
	put(r(models.Laser, Technology(200, 100, 0, 2)))
	put(r(models.Ion, Technology(1000, 300, 100, 2)))
	put(r(models.Hyperspace, Technology(0, 4000, 2000, 2)))
	put(r(models.Plasma, Technology(2000, 4000, 1000, 2)))
	put(r(models.CombustionDrive, Technology(400, 0, 600, 2)))
	put(r(models.ImpulseDrive, Technology(2000, 4000, 600, 2)))
	put(r(models.HyperspaceDrive, Technology(10_000, 20_000, 6000, 2)))
	put(r(models.Espionage, Technology(200, 1000, 200, 2)))
	put(r(models.Computer, Technology(0, 400, 600, 2)))
	put(r(models.Astrophysics, Technology(4000, 8000, 4000, 1.75)))
	put(r(models.IntergalacticResearchNetwork, Technology(240_000, 400_000, 160_000, 2)))
	put(r(models.Graviton, Technology(0, 0, 0, 3)))
	put(r(models.Weapons, Technology(800, 200, 0, 2)))
	put(r(models.Shielding, Technology(200, 600, 0, 2)))
	put(r(models.Armor, Technology(1000, 0, 0, 2)))

	put(u(models.SmallCargo, military(2000, 2000, 0)))
	put(u(models.LargeCargo, military(6000, 6000, 0)))
	put(u(models.LightFighter, military(3000, 1000, 0)))
	put(u(models.HeavyFighter, military(6000, 4000, 0)))
	put(u(models.Cruiser, military(20_000, 7000, 2000)))
	put(u(models.Battleship, military(45_000, 15_000, 0)))
	put(u(models.Battlecruiser, military(30_000, 40_000, 15_000)))
	put(u(models.Bomber, military(50_000, 25_000, 15_000)))
	put(u(models.Destroyer, military(60_000, 50_000, 15_000)))
	put(u(models.Deathstar, military(5_000_000, 4_000_000, 1_000_000)))
	put(u(models.Reaper, military(85_000, 55_000, 20_000)))
	put(u(models.Pathfinder, military(8000, 15_000, 8000)))
	put(u(models.ColonyShip, military(10_000, 20_000, 10_000)))
	put(u(models.Recycler, military(10_000, 6000, 2000)))
	put(u(models.EspionageProbe, military(0, 1000, 0)))
	put(u(models.SolarSatellite, Unit(0, 2000, 500, models.EconomyPoints)))
	put(u(models.Crawler, Unit(2000, 2000, 1000, models.EconomyPoints)))

	put(u(models.RocketLauncher, military(2000, 0, 0)))
	put(u(models.LightLaser, military(1500, 500, 0)))
	put(u(models.HeavyLaser, military(6000, 2000, 0)))
	put(u(models.GaussCannon, military(20_000, 15_000, 2000)))
	put(u(models.IonCannon, military(5000, 3000, 0)))
	put(u(models.PlasmaTurret, military(50_000, 50_000, 30_000)))
	put(u(models.SmallShieldDome, military(10_000, 10_000, 0)))
	put(u(models.LargeShieldDome, military(50_000, 50_000, 0)))

	return Schemes{
		Costs:  costs,
		Colony: Colony(4000, 8000, 4000, 1.75),
		Production: []ProductionScheme{
			MineScheme{
				Resource: models.Metal, Building: models.MetalMine,
				BaseProduction: 30, Factor: 30, PlasmaBonus: 1, EnergyMult: 10,
				CrawlerBonus: 0.03, GeologistBonus: 10, StaffBonus: 2,
			},
			MineScheme{
				Resource: models.Crystal, Building: models.CrystalMine,
				BaseProduction: 15, Factor: 20, PlasmaBonus: 0.66, EnergyMult: 10,
				CrawlerBonus: 0.03, GeologistBonus: 10, StaffBonus: 2,
			},
			MineScheme{
				Resource: models.Deuterium, Building: models.DeuteriumSynthesizer,
				Factor: 10, PlasmaBonus: 0.33, TempOffset: 1.36, TempMult: 0.004, EnergyMult: 20,
				CrawlerBonus: 0.03, GeologistBonus: 10, StaffBonus: 2,
			},
			SolarPlantScheme{Factor: 20},
			FusionScheme{EnergyBase: 30, EnergyGrowth: 1.05, EnergyTechBonus: 0.01, DeutFactor: 10},
			SatelliteScheme{TempOffset: 140, TempDiv: 6},
			CrawlerScheme{EnergyPerCrawler: 50},
		},
		EnergyBonuses: EnergyBonuses{Engineer: 10, CommandingStaff: 2},
	}
}

// 7.1.1 lowered the crawler bonus per unit
func schemes711() Schemes {
	s := schemes710().Clone()
	for _, bt := range []models.BuildingType{models.MetalMine, models.CrystalMine, models.DeuteriumSynthesizer} {
		p, _ := s.ProductionScheme(string(bt))
		mine := p.(MineScheme)
		mine.CrawlerBonus = 0.02
		s.ReplaceProduction(mine)
	}
	return s
}

// 7.5.0 raised the synthesizer's temperature offset and its plasma bonus
func schemes750() Schemes {
	s := schemes711().Clone()
	p, _ := s.ProductionScheme(string(models.DeuteriumSynthesizer))
	deut := p.(MineScheme)
	deut.TempOffset = 1.44
	deut.PlasmaBonus = 0.5
	s.ReplaceProduction(deut)
	return s
}

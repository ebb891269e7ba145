package models

import (
	"fmt"
	"strings"
)

// ResourceType represents the different resource types in the game
type ResourceType string

const (
	Metal     ResourceType = "metal"
	Crystal   ResourceType = "crystal"
	Deuterium ResourceType = "deuterium"
	Energy    ResourceType = "energy"
)

// AllResourceTypes returns all resource types
func AllResourceTypes() []ResourceType {
	return []ResourceType{Metal, Crystal, Deuterium, Energy}
}

// BuildingType represents the different building types
type BuildingType string

const (
	MetalMine            BuildingType = "metal_mine"
	CrystalMine          BuildingType = "crystal_mine"
	DeuteriumSynthesizer BuildingType = "deuterium_synthesizer"
	SolarPlant           BuildingType = "solar_plant"
	FusionReactor        BuildingType = "fusion_reactor"
	RoboticsFactory      BuildingType = "robotics_factory"
	NaniteFactory        BuildingType = "nanite_factory"
	Shipyard             BuildingType = "shipyard"
	MetalStorage         BuildingType = "metal_storage"
	CrystalStorage       BuildingType = "crystal_storage"
	DeuteriumStorage     BuildingType = "deuterium_storage"
	ResearchLab          BuildingType = "research_lab"
	Terraformer          BuildingType = "terraformer"
	AllianceDepot        BuildingType = "alliance_depot"
	MissileSilo          BuildingType = "missile_silo"
	SpaceDock            BuildingType = "space_dock"
	LunarBase            BuildingType = "lunar_base"
	SensorPhalanx        BuildingType = "sensor_phalanx"
	JumpGate             BuildingType = "jump_gate"
)

// AllBuildingTypes returns all building types in deterministic order
func AllBuildingTypes() []BuildingType {
	return []BuildingType{
		MetalMine, CrystalMine, DeuteriumSynthesizer, SolarPlant, FusionReactor,
		RoboticsFactory, NaniteFactory, Shipyard,
		MetalStorage, CrystalStorage, DeuteriumStorage,
		ResearchLab, Terraformer, AllianceDepot, MissileSilo, SpaceDock,
		LunarBase, SensorPhalanx, JumpGate,
	}
}

// ResearchType represents the technologies
type ResearchType string

const (
	EnergyTech                   ResearchType = "energy"
	Laser                        ResearchType = "laser"
	Ion                          ResearchType = "ion"
	Hyperspace                   ResearchType = "hyperspace"
	Plasma                       ResearchType = "plasma"
	CombustionDrive              ResearchType = "combustion_drive"
	ImpulseDrive                 ResearchType = "impulse_drive"
	HyperspaceDrive              ResearchType = "hyperspace_drive"
	Espionage                    ResearchType = "espionage"
	Computer                     ResearchType = "computer"
	Astrophysics                 ResearchType = "astrophysics"
	IntergalacticResearchNetwork ResearchType = "intergalactic_research_network"
	Graviton                     ResearchType = "graviton"
	Weapons                      ResearchType = "weapons"
	Shielding                    ResearchType = "shielding"
	Armor                        ResearchType = "armor"
)

// AllResearchTypes returns all technologies in deterministic order
func AllResearchTypes() []ResearchType {
	return []ResearchType{
		EnergyTech, Laser, Ion, Hyperspace, Plasma,
		CombustionDrive, ImpulseDrive, HyperspaceDrive,
		Espionage, Computer, Astrophysics, IntergalacticResearchNetwork, Graviton,
		Weapons, Shielding, Armor,
	}
}

// ShipyardItemType represents ships and defenses
type ShipyardItemType string

const (
	SmallCargo     ShipyardItemType = "small_cargo"
	LargeCargo     ShipyardItemType = "large_cargo"
	LightFighter   ShipyardItemType = "light_fighter"
	HeavyFighter   ShipyardItemType = "heavy_fighter"
	Cruiser        ShipyardItemType = "cruiser"
	Battleship     ShipyardItemType = "battleship"
	Battlecruiser  ShipyardItemType = "battlecruiser"
	Bomber         ShipyardItemType = "bomber"
	Destroyer      ShipyardItemType = "destroyer"
	Deathstar      ShipyardItemType = "deathstar"
	Reaper         ShipyardItemType = "reaper"
	Pathfinder     ShipyardItemType = "pathfinder"
	ColonyShip     ShipyardItemType = "colony_ship"
	Recycler       ShipyardItemType = "recycler"
	EspionageProbe ShipyardItemType = "espionage_probe"
	SolarSatellite ShipyardItemType = "solar_satellite"
	Crawler        ShipyardItemType = "crawler"

	RocketLauncher  ShipyardItemType = "rocket_launcher"
	LightLaser      ShipyardItemType = "light_laser"
	HeavyLaser      ShipyardItemType = "heavy_laser"
	GaussCannon     ShipyardItemType = "gauss_cannon"
	IonCannon       ShipyardItemType = "ion_cannon"
	PlasmaTurret    ShipyardItemType = "plasma_turret"
	SmallShieldDome ShipyardItemType = "small_shield_dome"
	LargeShieldDome ShipyardItemType = "large_shield_dome"
)

// AllShipyardItemTypes returns all ships and defenses in deterministic order
func AllShipyardItemTypes() []ShipyardItemType {
	return []ShipyardItemType{
		SmallCargo, LargeCargo, LightFighter, HeavyFighter, Cruiser, Battleship,
		Battlecruiser, Bomber, Destroyer, Deathstar, Reaper, Pathfinder,
		ColonyShip, Recycler, EspionageProbe, SolarSatellite, Crawler,
		RocketLauncher, LightLaser, HeavyLaser, GaussCannon, IonCannon, PlasmaTurret,
		SmallShieldDome, LargeShieldDome,
	}
}

// Mobile reports whether the item can leave its planet (ships, not defenses,
// satellites or crawlers)
func (s ShipyardItemType) Mobile() bool {
	switch s {
	case SolarSatellite, Crawler,
		RocketLauncher, LightLaser, HeavyLaser, GaussCannon, IonCannon, PlasmaTurret,
		SmallShieldDome, LargeShieldDome:
		return false
	}
	return true
}

// Defense reports whether the item is a planetary defense
func (s ShipyardItemType) Defense() bool {
	switch s {
	case RocketLauncher, LightLaser, HeavyLaser, GaussCannon, IonCannon, PlasmaTurret,
		SmallShieldDome, LargeShieldDome:
		return true
	}
	return false
}

// AccountClass is the player class chosen for the account
type AccountClass string

const (
	Unselected AccountClass = "unselected"
	Collector  AccountClass = "collector"
	General    AccountClass = "general"
	Discoverer AccountClass = "discoverer"
)

// UpgradeKind partitions upgrade types
type UpgradeKind string

const (
	KindBuilding UpgradeKind = "building"
	KindResearch UpgradeKind = "research"
	KindShipyard UpgradeKind = "shipyard"
)

// UpgradeType identifies anything whose level can be raised. Exactly one of
// Building, Research or Shipyard is set, matching Kind.
type UpgradeType struct {
	Kind     UpgradeKind
	Building BuildingType
	Research ResearchType
	Shipyard ShipyardItemType
}

// BuildingUpgrade returns the upgrade type for a building
func BuildingUpgrade(b BuildingType) UpgradeType {
	return UpgradeType{Kind: KindBuilding, Building: b}
}

// ResearchUpgrade returns the upgrade type for a technology
func ResearchUpgrade(r ResearchType) UpgradeType {
	return UpgradeType{Kind: KindResearch, Research: r}
}

// ShipyardUpgrade returns the upgrade type for a ship or defense
func ShipyardUpgrade(s ShipyardItemType) UpgradeType {
	return UpgradeType{Kind: KindShipyard, Shipyard: s}
}

// AllUpgradeTypes returns every recognized upgrade type in deterministic order
func AllUpgradeTypes() []UpgradeType {
	var types []UpgradeType
	for _, b := range AllBuildingTypes() {
		types = append(types, BuildingUpgrade(b))
	}
	for _, r := range AllResearchTypes() {
		types = append(types, ResearchUpgrade(r))
	}
	for _, s := range AllShipyardItemTypes() {
		types = append(types, ShipyardUpgrade(s))
	}
	return types
}

// AccountWide reports whether the upgrade applies to the whole account rather
// than a single planet
func (u UpgradeType) AccountWide() bool {
	return u.Kind == KindResearch
}

// Name returns the specific value without its kind
func (u UpgradeType) Name() string {
	switch u.Kind {
	case KindBuilding:
		return string(u.Building)
	case KindResearch:
		return string(u.Research)
	case KindShipyard:
		return string(u.Shipyard)
	}
	return ""
}

func (u UpgradeType) String() string {
	return string(u.Kind) + ":" + u.Name()
}

// MarshalText renders the type as "kind:name"
func (u UpgradeType) MarshalText() ([]byte, error) {
	if u.Kind == "" {
		return nil, fmt.Errorf("upgrade type has no kind")
	}
	return []byte(u.String()), nil
}

// UnmarshalText parses "kind:name"
func (u *UpgradeType) UnmarshalText(text []byte) error {
	parsed, err := ParseUpgradeType(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUpgradeType parses "building:metal_mine", "research:plasma" or
// "shipyard:crawler"
func ParseUpgradeType(s string) (UpgradeType, error) {
	kind, name, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return UpgradeType{}, fmt.Errorf("invalid upgrade type %q: expected kind:name", s)
	}
	for _, t := range AllUpgradeTypes() {
		if string(t.Kind) == kind && t.Name() == name {
			return t, nil
		}
	}
	return UpgradeType{}, fmt.Errorf("unknown upgrade type %q", s)
}

// PointType is a highscore category
type PointType string

const (
	EconomyPoints  PointType = "economy"
	ResearchPoints PointType = "research"
	MilitaryPoints PointType = "military"
)

// AllPointTypes returns all point categories
func AllPointTypes() []PointType {
	return []PointType{EconomyPoints, ResearchPoints, MilitaryPoints}
}

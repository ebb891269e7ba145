package rules

import (
	"github.com/napolitain/ogame-economy/internal/models"
)

// newTestPlanet returns a planet running every facility at 100%
func newTestPlanet(id int, buildings map[models.BuildingType]int) *models.Planet {
	if buildings == nil {
		buildings = make(map[models.BuildingType]int)
	}
	return &models.Planet{
		ID:             id,
		Name:           "P",
		MinTemperature: 0,
		MaxTemperature: 40,
		Utilization:    models.FullUtilization(),
		Buildings:      buildings,
	}
}

// newTestAccount returns a 1x account without officers or class
func newTestAccount(planets ...*models.Planet) *models.Account {
	a := &models.Account{
		Name:     "test",
		Universe: models.DefaultUniverse(),
		Planets:  planets,
	}
	models.ApplyDefaults(a)
	return a
}

func latestEconomy() *Economy {
	return DefaultRegistry().Latest().Economy()
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/ogame-economy/internal/models"
	"github.com/napolitain/ogame-economy/internal/roi"
	"github.com/napolitain/ogame-economy/internal/rules"
)

func printHeader(account *models.Account, rs *rules.RuleSet) {
	if quiet {
		return
	}
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  OGame Economy            │")
	titleColor.Println("╰───────────────────────────╯")
	infoColor.Printf("📄 %s (%s, %d planets), rules %s\n\n",
		account.Name, account.Class, account.PlanetCount(), rs.Name())
}

func printProduction(account *models.Account, productions []models.FullProduction) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Planet", "Metal/h", "Crystal/h", "Deut/h", "Energy", "Factor"}),
	)

	var total models.Cost
	for i, p := range productions {
		planet := account.Planets[i]
		cost := p.AsCost()
		total = total.Plus(cost)
		row := []string{
			planetLabel(planet),
			fmt.Sprintf("%d", cost.Metal),
			fmt.Sprintf("%d", cost.Crystal),
			fmt.Sprintf("%d", cost.Deuterium),
			fmt.Sprintf("%.0f/%.0f", p.Energy.TotalProduction, p.Energy.TotalConsumption),
			fmt.Sprintf("%.0f%%", rules.EnergyFactorOf(p.Energy)*100),
		}
		_ = table.Append(row)
	}
	_ = table.Append([]string{"Total",
		fmt.Sprintf("%d", total.Metal),
		fmt.Sprintf("%d", total.Crystal),
		fmt.Sprintf("%d", total.Deuterium),
		"", "",
	})
	_ = table.Render()

	if quiet {
		return
	}
	value := 0.0
	for _, p := range productions {
		value += p.MetalValue(account.Universe.TradeRatios)
	}
	color.New(color.FgGreen, color.Bold).Printf("\n✓ %.0f metal value per hour, %.0f per day\n", value, value*24)
	for i, p := range productions {
		if factor := rules.EnergyFactorOf(p.Energy); factor < 1 && p.Energy.TotalConsumption > 0 {
			color.Yellow("⚠ %s runs at %.0f%% energy", planetLabel(account.Planets[i]), factor*100)
		}
	}
}

func printUpgrades(account *models.Account, results []roi.Result) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Upgrade", "Where", "Levels", "Cost", "ROI"}),
	)

	for i, r := range results {
		where := "account"
		if !r.Upgrade.Type.AccountWide() {
			if planet := account.Planet(r.Upgrade.Planet); planet != nil {
				where = planetLabel(planet)
			}
			if r.Upgrade.Moon {
				where += " (moon)"
			}
		}

		cost := formatCost(r.Cost.Total())
		if r.Paid {
			cost = "paid"
		}
		payback := "-"
		if r.HasROI {
			payback = formatDuration(r.ROI)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			formatName(r.Upgrade.Type.Name()),
			where,
			fmt.Sprintf("%d → %d", r.From, r.To),
			cost,
			payback,
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func printCost(account *models.Account, label string, from, to int, cost models.UpgradeCost) {
	infoColor := color.New(color.FgYellow)
	infoColor.Printf("💰 %s %d → %d\n", label, from, to)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Category", "Metal", "Crystal", "Deut", "Points"}),
	)
	for _, pt := range models.AllPointTypes() {
		c := cost.In(pt)
		if c.IsZero() {
			continue
		}
		_ = table.Append([]string{
			string(pt),
			fmt.Sprintf("%d", c.Metal),
			fmt.Sprintf("%d", c.Crystal),
			fmt.Sprintf("%d", c.Deuterium),
			fmt.Sprintf("%.0f", cost.Points(pt)),
		})
	}
	_ = table.Render()

	color.New(color.FgGreen, color.Bold).Printf("\n✓ %s (%.0f metal value)\n",
		formatCost(cost.Total()), cost.MetalValue(account.Universe.TradeRatios))
}

func printPoints(value models.UpgradeCost) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Category", "Points"}),
	)
	for _, pt := range models.AllPointTypes() {
		_ = table.Append([]string{formatName(string(pt)), fmt.Sprintf("%.0f", value.Points(pt))})
	}
	_ = table.Append([]string{"Total", fmt.Sprintf("%.0f", value.TotalPoints())})
	_ = table.Render()
}

func planetLabel(p *models.Planet) string {
	if p.Coordinates != "" {
		return fmt.Sprintf("%s [%s]", p.Name, p.Coordinates)
	}
	return p.Name
}

func formatCost(c models.Cost) string {
	return fmt.Sprintf("M:%d C:%d D:%d", c.Metal, c.Crystal, c.Deuterium)
}

// formatDuration renders payback times in days once they exceed one
func formatDuration(d time.Duration) string {
	seconds := int(d / time.Second)
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

func joinTypes(types []models.UpgradeType) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func formatName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

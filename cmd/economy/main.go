package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/ogame-economy/internal/loader"
	"github.com/napolitain/ogame-economy/internal/models"
	"github.com/napolitain/ogame-economy/internal/overlay"
	"github.com/napolitain/ogame-economy/internal/roi"
	"github.com/napolitain/ogame-economy/internal/rules"
)

var (
	accountFile string
	ruleSetName string
	quiet       bool
	verbose     bool
	planetID    int
	planned     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "economy",
		Short: "OGame account economy calculator",
		Long: `Computes upgrade costs, hourly production and payback times
for an OGame account under a versioned set of game rules.`,
		PersistentPreRun: setupLogging,
	}

	rootCmd.PersistentFlags().StringVarP(&accountFile, "account", "a", "", "Path to JSON, YAML or TOML account file")
	rootCmd.PersistentFlags().StringVarP(&ruleSetName, "rules", "r", "", "Rule set version (default: latest)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rulesetsCmd := &cobra.Command{
		Use:   "rulesets",
		Short: "List the available rule set versions",
		Run:   runRuleSets,
	}

	productionCmd := &cobra.Command{
		Use:   "production",
		Short: "Show hourly production per planet",
		Run:   runProduction,
	}
	productionCmd.Flags().BoolVarP(&planned, "planned", "p", false, "Include planned upgrades")

	upgradesCmd := &cobra.Command{
		Use:   "upgrades",
		Short: "Show planned upgrades with their cost and payback time",
		Run:   runUpgrades,
	}

	costCmd := &cobra.Command{
		Use:   "cost <kind:name|colony> <from> <to>",
		Short: "Compute the cost of raising a level",
		Long: `Computes the cost of raising an upgrade from one level to another.
Buildings apply to every planet unless --planet is given.
With "colony", from and to are planet counts: the cost is the astrophysics
research plus one planet's share of the buildings.`,
		Example: "  economy cost building:metal_mine 10 11 -a account.yaml --planet 1\n  economy cost colony 2 3 -a account.yaml",
		Args:    cobra.ExactArgs(3),
		Run:     runCost,
	}
	costCmd.Flags().IntVar(&planetID, "planet", 0, "Planet ID (0 for every planet)")

	pointsCmd := &cobra.Command{
		Use:   "points",
		Short: "Show the account value in points",
		Run:   runPoints,
	}

	rootCmd.AddCommand(rulesetsCmd, productionCmd, upgradesCmd, costCmd, pointsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}

func loadAccount() *models.Account {
	if accountFile == "" {
		fail("Error: no account file, pass one with --account")
	}
	account, err := loader.LoadAccount(accountFile)
	if err != nil {
		fail("Error loading account: %v", err)
	}
	return account
}

func selectRuleSet() *rules.RuleSet {
	registry := rules.DefaultRegistry()
	if ruleSetName == "" {
		return registry.Latest()
	}
	rs, err := registry.Get(ruleSetName)
	if err != nil {
		color.Yellow("Warning: %v, using %s", err, registry.Latest().Name())
		return registry.Select(ruleSetName)
	}
	return rs
}

func runRuleSets(cmd *cobra.Command, args []string) {
	latest := rules.DefaultRegistry().Latest()
	for _, rs := range rules.DefaultRegistry().RuleSets() {
		marker := "  "
		if rs == latest {
			marker = "✓ "
		}
		fmt.Printf("%s%s\n", marker, rs.Name())
	}
}

func runProduction(cmd *cobra.Command, args []string) {
	account := loadAccount()
	rs := selectRuleSet()
	printHeader(account, rs)

	economy := rs.Economy()
	var productions []models.FullProduction
	if planned {
		productions = overlay.New(account).AccountProduction(economy)
	} else {
		productions = economy.AccountProduction(account)
	}
	printProduction(account, productions)
}

func runUpgrades(cmd *cobra.Command, args []string) {
	account := loadAccount()
	rs := selectRuleSet()
	printHeader(account, rs)

	if len(account.PlannedUpgrades) == 0 {
		color.Yellow("No planned upgrades")
		return
	}
	results := roi.ComputeAll(rs, account)
	printUpgrades(account, results)

	total := overlay.New(account).TotalCost(rs.Economy())
	color.New(color.FgGreen, color.Bold).Printf("\n✓ Total cost: %s (%.0f metal value)\n",
		formatCost(total.Total()), total.MetalValue(account.Universe.TradeRatios))
}

// colonyTarget makes the cost command price new planets: from and to are
// planet counts
const colonyTarget = "colony"

var errUnknownPlanet = errors.New("account has no such planet")

func runCost(cmd *cobra.Command, args []string) {
	from, err := strconv.Atoi(args[1])
	if err != nil {
		fail("Error: invalid from level %q", args[1])
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		fail("Error: invalid to level %q", args[2])
	}

	account := loadAccount()
	rs := selectRuleSet()

	label, cost, err := costOf(rs.Economy(), account, args[0], planetID, from, to)
	if err != nil {
		if !errors.Is(err, errUnknownPlanet) {
			if suggestions := models.SuggestUpgradeTypes(args[0], 3); len(suggestions) > 0 {
				fail("Error: %v (did you mean %s?)", err, joinTypes(suggestions))
			}
		}
		fail("Error: %v", err)
	}
	if quiet {
		fmt.Println(formatCost(cost.Total()))
		return
	}
	printHeader(account, rs)
	printCost(account, label, from, to, cost)
}

// costOf prices the cost command's target and returns the label to print it
// under. A planet ID of 0 means every planet.
func costOf(economy *rules.Economy, account *models.Account, target string, planetID, from, to int) (string, models.UpgradeCost, error) {
	if target == colonyTarget {
		return "Colony (planets)", economy.ColonyCost(account, from, to), nil
	}
	t, err := models.ParseUpgradeType(target)
	if err != nil {
		return "", models.ZeroCost, err
	}
	var planet *models.Planet
	if planetID != 0 && !t.AccountWide() {
		if planet = account.Planet(planetID); planet == nil {
			return "", models.ZeroCost, fmt.Errorf("%w: %d", errUnknownPlanet, planetID)
		}
	}
	return formatName(t.Name()), economy.UpgradeCost(account, planet, t, from, to), nil
}

func runPoints(cmd *cobra.Command, args []string) {
	account := loadAccount()
	rs := selectRuleSet()
	printHeader(account, rs)
	printPoints(rs.Economy().AccountValue(account))
}

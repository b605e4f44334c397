package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"neutron-plotter/internal/catalog"
	"neutron-plotter/internal/config"
	"neutron-plotter/internal/db"
	"neutron-plotter/internal/engine"
	"neutron-plotter/internal/logger"
	"neutron-plotter/internal/report"
)

var version = "dev"

func main() {
	startFlag := flag.String("start", "", "start system (neutron star)")
	destFlag := flag.String("dest", "", "destination system (neutron star)")
	rangeFlag := flag.Float64("range", 0, "base jump range in ly (0 = prompt)")
	storeFlag := flag.String("store", "", "star catalog path (overrides config)")
	outFlag := flag.String("out", "", "route summary path (overrides config)")
	flag.Parse()

	logger.Banner(version)

	godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fatal("Config", err)
	}
	if *storeFlag != "" {
		cfg.StorePath = *storeFlag
	}
	if *outFlag != "" {
		cfg.OutputPath = *outFlag
	}

	logger.Info("Input", "Only neutron stars are valid start and destination systems.")
	logger.Info("Input", "Prefix a jump point alias with JP: to resolve it, e.g. JP:Sol.")

	if dir := filepath.Dir(cfg.AliasDBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	database, err := db.Open(cfg.AliasDBPath)
	if err != nil {
		fatal("DB", err)
	}
	defer database.Close()
	database.MigrateFromJSON(cfg.LegacyAliasPath)
	if err := database.Seed(); err != nil {
		logger.Warn("DB", fmt.Sprintf("Seeding jump points: %v", err))
	}
	aliases, err := database.Aliases()
	if err != nil {
		fatal("DB", err)
	}

	in := bufio.NewReader(os.Stdin)
	startName := db.ResolveAlias(promptIfEmpty(in, *startFlag, "Start system"), aliases)
	goalName := db.ResolveAlias(promptIfEmpty(in, *destFlag, "Destination system"), aliases)
	baseRange := float32(*rangeFlag)
	if baseRange <= 0 {
		baseRange = promptRange(in, cfg.MaxRange)
	}

	store, err := catalog.LoadFile(cfg.StorePath)
	if err != nil {
		fatal("Catalog", err)
	}

	startID, ok := store.IDByName(startName)
	if !ok {
		fatal("Lookup", fmt.Errorf("start system not found: %s", startName))
	}
	goalID, ok := store.IDByName(goalName)
	if !ok {
		fatal("Lookup", fmt.Errorf("destination system not found: %s", goalName))
	}

	if store.Kind(startID) != catalog.KindNeutron {
		fatal("Lookup", fmt.Errorf("start system must be a neutron star: %s", startName))
	}
	if store.Kind(goalID) != catalog.KindNeutron {
		fatal("Lookup", fmt.Errorf("destination system must be a neutron star: %s", goalName))
	}

	if startID == goalID {
		fmt.Println(store.Name(startID))
		fmt.Println(store.Name(goalID))
		fmt.Println("Total general stars: 0")
		return
	}

	planner := engine.NewPlanner(store)

	logger.Info("Route", fmt.Sprintf("Routing %s -> %s at base %.2f ly (boosted %.2f ly)...",
		startName, goalName, baseRange, baseRange*engine.Boost))

	route, err := planner.Plan(startID, goalID, baseRange, func(msg string) {
		logger.Warn("Route", msg)
	})
	if errors.Is(err, engine.ErrNoRoute) {
		logger.Error("Route", "No route found within the search ceiling")
		os.Exit(1)
	}
	if err != nil {
		fatal("Route", err)
	}

	bridgeNames := make([]string, len(route.Bridges))
	for i, id := range route.Bridges {
		bridgeNames[i] = store.Name(id)
	}
	summary := report.Summary{
		RequiredRange: route.RequiredRange,
		Start:         store.Name(startID),
		Bridges:       bridgeNames,
		Goal:          store.Name(goalID),
	}
	if err := report.Write(cfg.OutputPath, summary); err != nil {
		fatal("Report", err)
	}

	logger.Success("Route", fmt.Sprintf("Found with %d legs, max base %.3f ly, %d jumps",
		len(route.Bridges), route.RequiredRange, route.Jumps))
	logger.Success("Report", fmt.Sprintf("Summary written to %s", cfg.OutputPath))
}

// promptIfEmpty returns the flag value, or interactively asks for one.
func promptIfEmpty(in *bufio.Reader, value, label string) string {
	for strings.TrimSpace(value) == "" {
		fmt.Printf("%s: ", label)
		line, err := in.ReadString('\n')
		if err != nil {
			fatal("Input", fmt.Errorf("read %s: %w", strings.ToLower(label), err))
		}
		value = strings.TrimSpace(line)
	}
	return strings.TrimSpace(value)
}

// promptRange asks for the base jump range, falling back to the default on
// an empty or unparseable answer.
func promptRange(in *bufio.Reader, def float32) float32 {
	fmt.Printf("Max jump distance (ly) [default %.0f]: ", def)
	line, err := in.ReadString('\n')
	if err != nil {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 32)
	if err != nil || v <= 0 {
		return def
	}
	return float32(v)
}

func fatal(tag string, err error) {
	logger.Error(tag, err.Error())
	os.Exit(1)
}

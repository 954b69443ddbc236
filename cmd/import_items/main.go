package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/models"
	"github.com/meur/crafthub/internal/storage"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Name prefixes the game gives each tier of the same item
var tierPrefixes = []string{
	"Novice's ",
	"Journeyman's ",
	"Adept's ",
	"Expert's ",
	"Master's ",
	"Grandmaster's ",
	"Elder's ",
}

type dumpLabel struct {
	Name string `json:"name"`
}

type dumpItem struct {
	Identifier  string     `json:"identifier"`
	Name        string     `json:"name"`
	Category    *dumpLabel `json:"category"`
	Subcategory *dumpLabel `json:"subcategory"`
}

type dumpFile struct {
	Data []dumpItem `json:"data"`
}

type family struct {
	baseID     string
	name       string
	categoryID string
	resourceID string
	tiers      []int
}

var reportIDRegex = regexp.MustCompile(`(?m)^\s*- ([A-Z0-9_]+)`)

func stripTierPrefix(name string) string {
	for _, pre := range tierPrefixes {
		if strings.HasPrefix(name, pre) {
			return strings.TrimPrefix(name, pre)
		}
	}
	return name
}

func label(l *dumpLabel) string {
	if l == nil {
		return ""
	}
	return l.Name
}

// readTargets extracts "- BASE_ID" lines from a report file
func readTargets(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	targets := map[string]bool{}
	for _, m := range reportIDRegex.FindAllStringSubmatch(string(data), -1) {
		targets[m[1]] = true
	}
	return targets, nil
}

// groupFamilies merges the tier variants of every dump entry by base id, in
// first-seen order. A nil targets set accepts every base id.
func groupFamilies(dumps []dumpFile, targets map[string]bool) []*family {
	var order []*family
	byID := map[string]*family{}

	for _, d := range dumps {
		for _, it := range d.Data {
			if it.Identifier == "" || strings.Contains(it.Identifier, "@") {
				continue
			}
			tier, baseID, ok := catalog.ParseID(it.Identifier)
			if !ok {
				continue
			}
			if targets != nil && !targets[baseID] {
				continue
			}

			f, exists := byID[baseID]
			if !exists {
				categoryID := catalog.Classify(label(it.Category), label(it.Subcategory))
				f = &family{
					baseID:     baseID,
					categoryID: categoryID,
					resourceID: catalog.GuessResource(categoryID),
				}
				byID[baseID] = f
				order = append(order, f)
			}
			f.name = stripTierPrefix(strings.TrimSpace(it.Name))
			if !slices.Contains(f.tiers, tier) {
				f.tiers = append(f.tiers, tier)
				slices.Sort(f.tiers)
			}
		}
	}
	return order
}

// expand builds the catalog items of every family. Each tier gets a recipe of
// one unit of the tier-matched guessed resource.
func expand(families []*family) []models.Item {
	var items []models.Item
	for _, f := range families {
		name := f.name
		if name == "" {
			name = f.baseID
		}
		items = append(items, catalog.Craftable(f.baseID, name, name, f.categoryID, f.tiers, f.resourceID, 1)...)
	}
	return items
}

func main() {
	dbPath := flag.String("db", "./crafthub.db", "SQLite database path")
	reportPath := flag.String("only", "", "Optional report listing the base ids to import as '- BASE_ID' lines")
	dryRun := flag.Bool("dry-run", false, "Print summary without writing to the database")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: import_items [flags] dump.json [dump.json...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var targets map[string]bool
	if *reportPath != "" {
		var err error
		targets, err = readTargets(*reportPath)
		if err != nil {
			log.Fatalf("%s✗ Failed to read report: %v%s", colorRed, err, colorReset)
		}
		fmt.Printf("%s📋 Restricting import to %d base ids%s\n", colorCyan, len(targets), colorReset)
	}

	var dumps []dumpFile
	entries := 0
	for _, path := range flag.Args() {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("%s⚠ Skipping %s: %v%s", colorYellow, path, err, colorReset)
			continue
		}
		var d dumpFile
		if err := json.Unmarshal(raw, &d); err != nil {
			log.Fatalf("%s✗ Failed to parse %s: %v%s", colorRed, path, err, colorReset)
		}
		entries += len(d.Data)
		dumps = append(dumps, d)
	}
	if len(dumps) == 0 {
		log.Fatalf("%s✗ No readable dumps%s", colorRed, colorReset)
	}

	fmt.Printf("%s📦 Loaded %s entries from %d dump(s)%s\n", colorCyan, humanize.Comma(int64(entries)), len(dumps), colorReset)

	families := groupFamilies(dumps, targets)
	items := expand(families)

	misc := 0
	for _, f := range families {
		if f.categoryID == catalog.MiscCategory.ID {
			misc++
		}
	}
	if misc > 0 {
		log.Printf("%s⚠ %d base item(s) could not be classified and fall under misc%s", colorYellow, misc, colorReset)
	}

	if *dryRun {
		log.Printf("Dry run: would import %d items from %d base items", len(items), len(families))
		for _, f := range families {
			log.Printf("  %-32s %-20s %-10s tiers %v", f.baseID, f.categoryID, f.resourceID, f.tiers)
		}
		return
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("%s✗ Failed to connect to database: %v%s", colorRed, err, colorReset)
	}
	defer store.Close()

	if err := store.BulkCreateItems(items); err != nil {
		log.Fatalf("%s✗ Failed to import items: %v%s", colorRed, err, colorReset)
	}
	if _, err := store.CreateImportRun(strings.Join(flag.Args(), ","), len(items)); err != nil {
		log.Printf("%s⚠ Failed to record import run: %v%s", colorYellow, err, colorReset)
	}

	fmt.Printf("%s✓ Imported %d items from %d base items%s\n", colorGreen, len(items), len(families), colorReset)

	if total, err := store.CountItems(); err == nil {
		fmt.Printf("%s📦 Database holds %s items%s\n", colorCyan, humanize.Comma(int64(total)), colorReset)
	}
	if runs, err := store.GetImportRuns(); err == nil && len(runs) > 1 {
		prev := runs[1]
		fmt.Printf("%s📜 Previous import: %q (%d items) %s%s\n",
			colorCyan, prev.Source, prev.ItemCount, humanize.Time(prev.CreatedAt), colorReset)
	}
}

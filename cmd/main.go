// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"casefile/internal/config"
	"casefile/internal/document"
	"casefile/internal/engine"
	"casefile/internal/names"
	"casefile/internal/observability"
	"casefile/internal/preprocessors"
	"casefile/internal/version"

	"casefile/internal/formatters"
	_ "casefile/internal/formatters/csv"
	_ "casefile/internal/formatters/json"
	_ "casefile/internal/formatters/text"
	_ "casefile/internal/formatters/yaml"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const maxFileSize = 100 * 1024 * 1024 // 100MB

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	// Load configuration (will use defaults if file not found)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return config.LoadConfigOrDefault("")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid configuration: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return config.LoadConfigOrDefault("")
	}

	return cfg
}

// configFlags holds the flag values that participate in config resolution
type configFlags struct {
	outputFormat        string
	riskBands           string
	verbose             bool
	debug               bool
	noColor             bool
	recursive           bool
	enablePreprocessors bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format              string
	riskBands           string
	verbose             bool
	debug               bool
	noColor             bool
	recursive           bool
	enablePreprocessors bool
	excludePatterns     []string
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, in that order of precedence.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Risk bands
	final.riskBands = "all" // default fallback
	if cfg != nil && cfg.Defaults.RiskBands != "" {
		final.riskBands = cfg.Defaults.RiskBands
	}
	if activeProfile != nil && activeProfile.RiskBands != "" {
		final.riskBands = activeProfile.RiskBands
	}
	if isFlagSet("bands") && flags.riskBands != "" {
		final.riskBands = flags.riskBands
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil && activeProfile.NoColor {
		final.noColor = true
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Recursive
	if cfg != nil {
		final.recursive = cfg.Defaults.Recursive
	}
	if activeProfile != nil {
		final.recursive = activeProfile.Recursive
	}
	if isFlagSet("recursive") {
		final.recursive = flags.recursive
	}

	// Preprocessors
	final.enablePreprocessors = true
	if cfg != nil {
		final.enablePreprocessors = cfg.Defaults.EnablePreprocessors
	}
	if isFlagSet("enable-preprocessors") {
		final.enablePreprocessors = flags.enablePreprocessors
	}

	// Exclusions merge instead of overriding
	if cfg != nil {
		final.excludePatterns = append(final.excludePatterns, cfg.Defaults.ExcludePatterns...)
	}
	if activeProfile != nil {
		final.excludePatterns = append(final.excludePatterns, activeProfile.Exclude...)
	}

	return final
}

func main() {
	inputPath := flag.String("file", "", "Path to the file or directory to ingest")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	riskBands := flag.String("bands", "", "Rating bands to display: all, or combinations like '4,5'")
	verbose := flag.Bool("verbose", false, "Display passages and entity contexts for each document")
	debug := flag.Bool("debug", false, "Enable debug logging to show preprocessing and extraction flow")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	showEntities := flag.Bool("show-entities", false, "Display extracted entities for each document")
	recursive := flag.Bool("recursive", false, "Recursively ingest directories")
	enablePreprocessors := flag.Bool("enable-preprocessors", true, "Enable text extraction from PDFs and images (use --enable-preprocessors=false to disable)")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts)")

	query := flag.String("query", "", "Search query to run after ingestion")
	browse := flag.Bool("browse", false, "Browse the corpus after ingestion (all documents, sorted)")
	sortBy := flag.String("sort", "relevance", "Browse sort key: relevance, date, risk, type, size")
	sortOrder := flag.String("order", "desc", "Browse sort order: asc or desc")
	listEntities := flag.Bool("entities", false, "List every known entity after ingestion")
	showStats := flag.Bool("stats", false, "Show corpus statistics after ingestion")
	networkOf := flag.String("network", "", "Show the co-mention network of the named entity")
	relatedTo := flag.String("related", "", "Show documents related to the given document ID")
	docID := flag.String("id", "", "Look up a single document by ID")
	byEntity := flag.String("entity", "", "Filter or look up documents mentioning this entity")
	entityType := flag.String("entity-type", "", "Entity type for -entity lookups: person, organization, location, email, phone")
	byDate := flag.String("date", "", "Look up documents referencing this calendar date (YYYY-MM-DD)")

	fileType := flag.String("type", "", "Filter by file type: email, flight-log, court-filing, pdf, image, text")
	category := flag.String("category", "", "Filter by category")
	dateFrom := flag.String("date-from", "", "Filter by earliest referenced date (YYYY-MM-DD, inclusive)")
	dateTo := flag.String("date-to", "", "Filter by latest referenced date (YYYY-MM-DD, inclusive)")
	minBand := flag.Int("min-band", 0, "Filter by minimum rating band (1-5)")
	maxBand := flag.Int("max-band", 0, "Filter by maximum rating band (1-5)")
	confidentiality := flag.String("confidentiality", "", "Filter by confidentiality marker: sealed, confidential, redacted, none")
	source := flag.String("source", "", "Filter by source collection")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg := loadConfiguration(*configFile)

	if *listProfiles {
		printProfiles(cfg)
		os.Exit(0)
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		p, ok := cfg.Profiles[*profileName]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: Unknown profile %q. Use --list-profiles to see available profiles.\n", *profileName)
			os.Exit(1)
		}
		activeProfile = &p
	}

	flags := &configFlags{
		outputFormat:        *outputFormat,
		riskBands:           *riskBands,
		verbose:             *verbose,
		debug:               *debug,
		noColor:             *noColor,
		recursive:           *recursive,
		enablePreprocessors: *enablePreprocessors,
	}
	final := resolveConfiguration(cfg, activeProfile, flags)

	// Colors are for terminals. File output and pipes get plain text.
	if *outputFile != "" || !isTerminal(os.Stdout) {
		final.noColor = true
	}

	level := observability.ObservabilityOff
	if final.debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	eng := engine.New(engine.Options{
		BatchSize:        cfg.Engine.BatchSize,
		CacheTTL:         time.Duration(cfg.Engine.CacheTTLSeconds) * time.Second,
		CacheMaxEntries:  cfg.Engine.CacheMaxEntries,
		ContextWindow:    cfg.Engine.ContextWindow,
		MinPassageLength: cfg.Engine.MinPassageLength,
		Observer:         observer,
	})

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: No input specified. Use -file to point at a file or directory.")
		fmt.Fprintln(os.Stderr, "Run with --help for usage information.")
		os.Exit(1)
	}

	files, err := collectFiles(*inputPath, final.recursive, final.excludePatterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No ingestible files found.")
		os.Exit(1)
	}

	items, skipped := readFiles(files, final.enablePreprocessors, observer, *quiet)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Ingesting %d file(s)", len(items))
		if skipped > 0 {
			fmt.Fprintf(os.Stderr, " (%d skipped)", skipped)
		}
		fmt.Fprintln(os.Stderr)
	}

	docs, err := eng.IngestBatch(context.Background(), items, cfg.Engine.BatchSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Ingestion failed: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Ingested %d document(s)\n", len(docs))
	}

	options := formatters.FormatterOptions{
		RiskBands:    parseRiskBands(final.riskBands),
		Verbose:      final.verbose,
		NoColor:      final.noColor,
		ShowEntities: *showEntities || *listEntities,
	}
	filters := &engine.Filters{
		FileType:        *fileType,
		DateFrom:        *dateFrom,
		DateTo:          *dateTo,
		Entity:          *byEntity,
		Category:        *category,
		MinBand:         *minBand,
		MaxBand:         *maxBand,
		Confidentiality: *confidentiality,
		Source:          *source,
	}

	result, err := runQuery(eng, final.format, options, filters, queryArgs{
		query:      *query,
		browse:     *browse,
		sortBy:     *sortBy,
		sortOrder:  *sortOrder,
		entities:   *listEntities,
		stats:      *showStats,
		network:    *networkOf,
		related:    *relatedTo,
		docID:      *docID,
		byEntity:   *byEntity,
		entityType: *entityType,
		byDate:     *byDate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := writeOutput(*outputFile, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(result)
	}
}

// queryArgs bundles the post-ingestion query mode selection
type queryArgs struct {
	query      string
	browse     bool
	sortBy     string
	sortOrder  string
	entities   bool
	stats      bool
	network    string
	related    string
	docID      string
	byEntity   string
	entityType string
	byDate     string
}

// runQuery dispatches exactly one query mode and renders its result. When no
// mode is selected it browses the whole corpus so a bare ingestion run still
// shows what it indexed.
func runQuery(eng *engine.Engine, format string, options formatters.FormatterOptions, filters *engine.Filters, args queryArgs) (string, error) {
	switch {
	case args.stats:
		return renderStats(eng.Stats(), format, options)
	case args.entities:
		return renderEntities(eng.AllEntities(), format, options)
	case args.network != "":
		return renderNetwork(args.network, eng.EntityNetwork(args.network), format)
	case args.docID != "":
		doc, ok := eng.GetByID(args.docID)
		if !ok {
			return "", fmt.Errorf("no document with ID %s", args.docID)
		}
		return formatters.Export(format, []*document.Document{doc}, options)
	case args.related != "":
		return formatters.Export(format, eng.Related(args.related, 10), options)
	case args.byDate != "":
		return formatters.Export(format, eng.ByDate(args.byDate), options)
	case args.query != "":
		return formatters.Export(format, eng.Search(args.query, filters), options)
	case args.byEntity != "" && !args.browse:
		return formatters.Export(format, eng.ByEntity(args.byEntity, document.EntityType(args.entityType)), options)
	default:
		return formatters.Export(format, eng.Browse(filters, args.sortBy, args.sortOrder), options)
	}
}

// marshalStructured renders a value in the requested structured format.
func marshalStructured(format string, v interface{}) (string, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(v)
		return string(data), err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	return string(data), err
}

// renderEntities lists every entity, most mentioned first.
func renderEntities(entities []*document.Entity, format string, options formatters.FormatterOptions) (string, error) {
	if format == "json" || format == "yaml" {
		return marshalStructured(format, map[string]interface{}{
			"entity_count": len(entities),
			"entities":     entities,
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d entit(y/ies)\n", len(entities))
	for _, ent := range entities {
		fmt.Fprintf(&sb, "  %-14s %-40s mentions=%d significance=%s\n",
			ent.Type, ent.Name, ent.Mentions, ent.Significance)
		if options.Verbose && ent.Type == document.EntityPerson {
			for _, v := range names.Variants(ent.Name) {
				fmt.Fprintf(&sb, "    variant: %s\n", v)
			}
		}
	}
	return sb.String(), nil
}

// renderNetwork prints the co-mention links of one entity.
func renderNetwork(name string, links []engine.NetworkLink, format string) (string, error) {
	if format == "json" || format == "yaml" {
		return marshalStructured(format, map[string]interface{}{
			"entity": name,
			"links":  links,
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Network of %s (%d link(s))\n", name, len(links))
	for _, link := range links {
		fmt.Fprintf(&sb, "  %-14s %-40s strength=%d\n", link.Type, link.Name, link.Strength)
	}
	return sb.String(), nil
}

// renderStats prints corpus statistics.
func renderStats(stats engine.Statistics, format string, options formatters.FormatterOptions) (string, error) {
	if format == "json" || format == "yaml" {
		return marshalStructured(format, stats)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Documents:      %d\n", stats.DocumentCount)
	fmt.Fprintf(&sb, "Entities:       %d\n", stats.EntityCount)
	fmt.Fprintf(&sb, "Passages:       %d\n", stats.PassageCount)
	fmt.Fprintf(&sb, "Avg risk score: %.2f\n", stats.AvgRiskScore)
	if stats.EarliestDate != "" {
		fmt.Fprintf(&sb, "Date range:     %s to %s\n", stats.EarliestDate, stats.LatestDate)
	}
	types := make([]string, 0, len(stats.ByFileType))
	for t := range stats.ByFileType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(&sb, "  %-14s %d\n", t, stats.ByFileType[t])
	}
	if len(stats.TopEntities) > 0 {
		fmt.Fprintln(&sb, "Top entities:")
		for _, ent := range stats.TopEntities {
			fmt.Fprintf(&sb, "  %-14s %-40s mentions=%d\n", ent.Type, ent.Name, ent.Mentions)
		}
	}
	return sb.String(), nil
}

// collectFiles expands the input path into a list of regular files to ingest
func collectFiles(inputPath string, recursive bool, excludePatterns []string) ([]string, error) {
	cleanPath := filepath.Clean(inputPath)

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("path does not exist or is not accessible: %w", err)
	}

	if fileInfo.Mode().IsRegular() {
		if fileInfo.Size() > maxFileSize {
			return nil, fmt.Errorf("file too large (max size: 100MB): %s", cleanPath)
		}
		return []string{cleanPath}, nil
	}

	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path is neither a regular file nor a directory")
	}

	var files []string
	var skipped int
	walkErr := filepath.Walk(cleanPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", path, err)
			skipped++
			return nil // Continue walking despite the error
		}

		if info.IsDir() {
			if !recursive && path != cleanPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if shouldExclude(path, excludePatterns) {
			skipped++
			return nil
		}
		if info.Size() > maxFileSize {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: file too large (> 100MB)\n", path)
			skipped++
			return nil
		}
		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error accessing directory: %w", walkErr)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d file(s)\n", skipped)
	}
	return files, nil
}

// shouldExclude matches a path against the configured exclusion patterns.
// Patterns match the base name as a glob, or the full path as a substring.
func shouldExclude(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// readFiles turns file paths into ingestible items. Preprocessors extract
// text from PDFs and images; with preprocessors disabled every file is read
// as raw text.
func readFiles(files []string, enablePreprocessors bool, observer *observability.StandardObserver, quiet bool) ([]engine.IngestItem, int) {
	var manager *preprocessors.PreprocessorManager
	if enablePreprocessors {
		manager = preprocessors.NewDefaultManager(observer)
	}

	var items []engine.IngestItem
	var skipped int
	for _, path := range files {
		var text string
		if manager != nil {
			processed, err := manager.ProcessFile(path)
			if err != nil || processed == nil || !processed.Success {
				if !quiet {
					fmt.Fprintf(os.Stderr, "Warning: Skipping %s: text extraction failed\n", path)
				}
				skipped++
				continue
			}
			text = processed.Text
			if text == "" && processed.ProcessorType == "none" {
				// No preprocessor claimed the file; fall back to a raw read
				data, readErr := os.ReadFile(path)
				if readErr != nil {
					skipped++
					continue
				}
				text = string(data)
			}
		} else {
			data, err := os.ReadFile(path)
			if err != nil {
				if !quiet {
					fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", path, err)
				}
				skipped++
				continue
			}
			text = string(data)
		}
		items = append(items, engine.IngestItem{Path: path, Content: text})
	}
	return items, skipped
}

// parseRiskBands converts "all" or a comma separated band list into the set
// the formatters filter on. Unparseable input means no filtering.
func parseRiskBands(spec string) map[int]bool {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" || spec == "all" {
		return nil
	}
	bands := make(map[int]bool)
	for _, part := range strings.Split(spec, ",") {
		band, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || band < 1 || band > 5 {
			continue
		}
		bands[band] = true
	}
	if len(bands) == 0 {
		return nil
	}
	return bands
}

// writeOutput writes the formatted result to a file with restrictive
// permissions, creating the parent directory when needed.
func writeOutput(outputPath, result string) error {
	cleanOutputPath := filepath.Clean(outputPath)
	if strings.Contains(outputPath, "..") || strings.Contains(cleanOutputPath, "..") {
		return fmt.Errorf("path traversal not allowed in output path: %s", outputPath)
	}
	abs, err := filepath.Abs(cleanOutputPath)
	if err != nil {
		return fmt.Errorf("invalid output file path: %s", outputPath)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0700); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(abs, []byte(result), 0600); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}

// printProfiles lists the profiles available in the loaded configuration
func printProfiles(cfg *config.Config) {
	if len(cfg.Profiles) == 0 {
		fmt.Println("No profiles defined")
		return
	}
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Available profiles:")
	for _, name := range names {
		p := cfg.Profiles[name]
		if p.Description != "" {
			fmt.Printf("  %-16s %s\n", name, p.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func printHelp() {
	fmt.Printf("casefile %s - document indexing and entity extraction for investigative archives\n\n", version.Short())
	fmt.Println("Usage:")
	fmt.Println("  casefile -file <path> [query flags] [output flags]")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  casefile -file ./archive -recursive -stats")
	fmt.Println("  casefile -file ./archive -recursive -query \"flight manifest\" -format json")
	fmt.Println("  casefile -file ./archive -browse -sort risk -order desc -min-band 4")
	fmt.Println("  casefile -file ./archive -entities -verbose")
	fmt.Println("  casefile -file ./archive -network \"Jeffrey Epstein\"")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

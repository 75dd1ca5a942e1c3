// Package main provides a performance benchmarking tool for the covidvis CLI.
// It measures execution times across different dataset sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - covidvis binary installed and available in PATH
// - Test datasets downloaded to the specified base directory
// - CSV datasets: countries-small, countries-full, us-states
//
// Usage: go run benchmark/main.go [data-base-dir]
//
//	data-base-dir: Directory containing test datasets
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataBase      string
	Timeout       time.Duration
	Workers       int
	NoCacheRuns   int
	CacheRuns     int
	TestDatasets  []string
	GroupColumns  map[string]string
	Interventions map[string]string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [data-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	dataBase := os.Args[1]

	config := BenchmarkConfig{
		DataBase:     dataBase,
		Timeout:      5 * time.Minute,
		Workers:      14,
		NoCacheRuns:  3,
		CacheRuns:    4,
		TestDatasets: []string{"countries-small", "countries-full", "us-states"},
		GroupColumns: map[string]string{
			"countries-small": "Country_Region",
			"countries-full":  "Country_Region",
			"us-states":       "Province_State",
		},
		Interventions: map[string]string{
			"countries-small": "lockdown-dates.csv",
			"countries-full":  "lockdown-dates.csv",
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using covidvis cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("covidvis", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that covidvis binary and test datasets exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if covidvis is available
	if _, err := exec.LookPath("covidvis"); err != nil {
		return fmt.Errorf("covidvis binary not found in PATH")
	}

	// Check if datasets exist
	for _, dataset := range config.TestDatasets {
		dataPath := filepath.Join(config.DataBase, dataset+".csv")
		if _, err := os.Stat(dataPath); os.IsNotExist(err) {
			return fmt.Errorf("dataset %s not found at %s", dataset, dataPath)
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d workers, no-cache: %d runs, cache: %d runs\n",
		len(config.TestDatasets), config.Timeout, config.Workers, config.NoCacheRuns, config.CacheRuns)

	for _, dataset := range config.TestDatasets {
		fmt.Printf("Benchmarking %s\n", dataset)

		dataPath := filepath.Join(config.DataBase, dataset+".csv")
		groupCol := config.GroupColumns[dataset]

		// Chart build
		result := runBenchmarkSuite(config, dataset, dataPath, "build", "chart build", groupCol, "")
		results = append(results, result)

		// Group ranking
		result = runBenchmarkSuite(config, dataset, dataPath, "groups", "group ranking", groupCol, "")
		results = append(results, result)

		// Projection (needs interventions)
		interventions, hasInterventions := config.Interventions[dataset]
		if hasInterventions {
			interventionsPath := filepath.Join(config.DataBase, interventions)
			desc := fmt.Sprintf("projection (%s)", interventions)
			result = runBenchmarkSuite(config, dataset, dataPath, "projection", desc, groupCol, interventionsPath)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, dataPath, command, description, groupCol, interventionsPath string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataset)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, dataPath, command, groupCol, interventionsPath, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     dataset,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a covidvis command multiple times with specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, dataPath, command, groupCol, interventionsPath, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, dataPath,
		"--cache-backend", cacheBackend,
		"--workers", fmt.Sprintf("%d", config.Workers),
		"--group-col", groupCol}
	if interventionsPath != "" {
		args = append(args, "--interventions", interventionsPath)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("covidvis", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "groups":
		completionPhrase = "Group ranking completed in"
	case "projection":
		completionPhrase = "Projection completed in"
	default:
		completionPhrase = "Chart build completed in"
	}

	return strings.Contains(outputStr, completionPhrase) &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/covidvis_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "build", "Chart Build:")
	printCommandSummary(results, "groups", "Group Ranking:")
	printCommandSummary(results, "projection", "Projection:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-15s: No-cache: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/analysis"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/client"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/config"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/export"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\nSkillSleuth Usage Examples")
	fmt.Println("\n1. Crawl the default work.ua listing and save jobs.csv:")
	fmt.Println("   skillsleuth -scrape")
	fmt.Println("\n2. Chart skill demand from a previous crawl:")
	fmt.Println("   skillsleuth -analyze -output jobs.csv")
	fmt.Println("\n3. Crawl a different category through a proxy, then analyze:")
	fmt.Println("   skillsleuth -scrape -analyze -url https://www.work.ua/jobs-golang/ -proxy http://localhost:8080")
	fmt.Println("\n4. Use selectors and timeouts from a config file:")
	fmt.Println("   skillsleuth -scrape -config skillsleuth.yaml -debug")
}

func main() {
	scrape := flag.Bool("scrape", false, "Crawl job listings and save them to the output file")
	analyze := flag.Bool("analyze", false, "Chart the most demanded skills from the output file")
	configPath := flag.String("config", config.DefaultPath, "Path to the YAML config file")
	baseURL := flag.String("url", "", "First listing page to crawl (overrides base_url)")
	output := flag.String("output", "", "CSV file to write or read (overrides output)")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	debug := flag.Bool("debug", false, "Enable debug logging")
	silence := flag.Bool("silence", false, "Silence the banner")
	examples := flag.Bool("examples", false, "Show usage examples")
	flag.Parse()

	ui.PrintBanner(*silence)

	if *examples {
		printExamples()
		return
	}

	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo)
	if *debug {
		logger = logger.WithLevel(pterm.LogLevelDebug)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", logger.Args("error", err))
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *proxyURL != "" {
		cfg.Proxy = *proxyURL
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid config", logger.Args("error", err))
	}

	if !*scrape && !*analyze {
		flag.Usage()
		logger.Fatal("Nothing to do: pass -scrape and/or -analyze")
	}

	if *scrape {
		if err := runScrape(cfg, logger); err != nil {
			logger.Error("Scrape failed", logger.Args("error", err))
			os.Exit(1)
		}
	}

	if *analyze {
		if err := runAnalyze(cfg, logger); err != nil {
			logger.Error("Analysis failed", logger.Args("error", err))
			os.Exit(1)
		}
	}
}

// runScrape crawls the listing chain and writes whatever was collected,
// including the partial records of an aborted crawl.
func runScrape(cfg *config.Config, logger *pterm.Logger) error {
	logger.Info("Scraping job data", logger.Args("url", cfg.BaseURL))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.CrawlTimeout)
	defer cancel()

	fetcher := client.NewFetcher(cfg.Proxy, cfg.RequestTimeout)
	defer fetcher.Close()

	bar := pb.New(0).SetWriter(os.Stderr)
	bar.Start()
	progress := &models.CrawlProgress{JobBar: bar}

	crawler := scraper.NewCrawler(fetcher, cfg.BaseURL, cfg.Selectors, logger, progress)
	jobs, crawlErr := crawler.Run(ctx)
	bar.Finish()

	var ce *scraper.CrawlError
	if crawlErr != nil && !errors.As(crawlErr, &ce) {
		return crawlErr
	}

	if err := export.WriteCSV(cfg.Output, jobs); err != nil {
		return err
	}

	if crawlErr != nil {
		logger.Warn("Crawl aborted, partial results saved",
			logger.Args("jobs", humanize.Comma(int64(len(jobs))), "pages", progress.Pages, "output", cfg.Output))
		return crawlErr
	}

	fmt.Printf("Scraped %s jobs.\n", humanize.Comma(int64(len(jobs))))
	logger.Info("Job data saved", logger.Args("output", cfg.Output))
	return nil
}

// runAnalyze renders the overall and per-level skill charts
func runAnalyze(cfg *config.Config, logger *pterm.Logger) error {
	logger.Info("Analyzing job data", logger.Args("input", cfg.Output))

	records, err := export.ReadCSV(cfg.Output)
	if err != nil {
		return err
	}

	if err := ui.RenderSkillChart("Most Demanded Skills", analysis.TopSkills(records, cfg.TopSkills)); err != nil {
		return err
	}
	for _, level := range models.Levels {
		title := fmt.Sprintf("Most Demanded Skills for %s", level)
		if err := ui.RenderSkillChart(title, analysis.TopSkillsByLevel(records, level, cfg.TopSkills)); err != nil {
			return err
		}
	}
	if err := ui.RenderLevelBreakdown(analysis.LevelBreakdown(records)); err != nil {
		return err
	}

	logger.Info("Analysis complete", logger.Args("jobs", humanize.Comma(int64(len(records)))))
	return nil
}

package scraper

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/config"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// CrawlError aborts a crawl run. Jobs holds the records built before the
// failure.
type CrawlError struct {
	Page string
	Jobs []models.JobRecord
	Err  error
}

func (e *CrawlError) Error() string {
	return fmt.Sprintf("crawl aborted on %s after %d jobs: %v", e.Page, len(e.Jobs), e.Err)
}

func (e *CrawlError) Unwrap() error {
	return e.Err
}

// Crawler walks a chain of listing pages and builds one JobRecord per card
type Crawler struct {
	fetcher   Fetcher
	baseURL   string
	selectors config.Selectors
	logger    *pterm.Logger
	progress  *models.CrawlProgress
}

// NewCrawler creates a crawler starting at baseURL. logger and progress may be nil.
func NewCrawler(f Fetcher, baseURL string, sel config.Selectors, logger *pterm.Logger, progress *models.CrawlProgress) *Crawler {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &Crawler{
		fetcher:   f,
		baseURL:   baseURL,
		selectors: sel,
		logger:    logger,
		progress:  progress,
	}
}

// Run crawls until the next-page chain is exhausted. Jobs and pages are
// handled one at a time in listing order. On a fetch failure the records
// accumulated so far are returned together with a *CrawlError.
func (c *Crawler) Run(ctx context.Context) ([]models.JobRecord, error) {
	var jobs []models.JobRecord
	visited := make(map[string]struct{})

	for current := c.baseURL; current != ""; {
		if _, seen := visited[current]; seen {
			c.logger.Warn("Next page already visited, stopping", c.logger.Args("url", current))
			break
		}
		visited[current] = struct{}{}

		next, err := c.crawlPage(ctx, current, &jobs)
		if err != nil {
			return jobs, &CrawlError{Page: current, Jobs: jobs, Err: err}
		}
		current = next
	}

	c.logger.Info("Crawl complete", c.logger.Args("pages", len(visited), "jobs", len(jobs)))
	return jobs, nil
}

// crawlPage appends the records of one listing page to jobs and returns the
// next page URL
func (c *Crawler) crawlPage(ctx context.Context, pageURL string, jobs *[]models.JobRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.logger.Debug("Fetching listing page", c.logger.Args("url", pageURL))
	markup, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	summaries, next, err := ParseListing(markup, c.baseURL, c.selectors)
	if err != nil {
		return "", err
	}
	c.progress.PageParsed(len(summaries))
	c.logger.Debug("Parsed listing page", c.logger.Args("url", pageURL, "jobs", len(summaries), "next", next))

	for _, summary := range summaries {
		record, err := c.buildRecord(ctx, summary)
		if err != nil {
			return "", err
		}
		*jobs = append(*jobs, record)
		c.progress.JobDone()
	}

	return next, nil
}

func (c *Crawler) buildRecord(ctx context.Context, summary models.JobSummary) (models.JobRecord, error) {
	skills := []string{models.NotSpecified}
	if summary.DetailURL != "" {
		var err error
		skills, err = FetchSkills(ctx, c.fetcher, summary.DetailURL, c.selectors)
		if err != nil {
			return models.JobRecord{}, err
		}
	} else {
		c.logger.Debug("Job card has no detail link", c.logger.Args("title", summary.Title))
	}

	experience, level := Classify(summary.Description)

	return models.JobRecord{
		Title:       summary.Title,
		Description: summary.Description,
		Experience:  experience,
		Level:       level,
		Skills:      skills,
	}, nil
}

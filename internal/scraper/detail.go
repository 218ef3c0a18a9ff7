package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/config"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// Fetcher retrieves the raw markup of a page
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// FetchSkills fetches a job detail page and returns its skill tags
func FetchSkills(ctx context.Context, f Fetcher, detailURL string, sel config.Selectors) ([]string, error) {
	markup, err := f.Fetch(ctx, detailURL)
	if err != nil {
		return nil, err
	}
	return ParseSkills(markup, sel)
}

// ParseSkills collects the skill tag texts of a detail page. A page without
// tags yields the single "Not specified" entry.
func ParseSkills(markup string, sel config.Selectors) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var skills []string
	doc.Find(sel.Skill).Each(func(i int, s *goquery.Selection) {
		skills = append(skills, strings.TrimSpace(s.Text()))
	})

	if len(skills) == 0 {
		return []string{models.NotSpecified}, nil
	}
	return skills, nil
}

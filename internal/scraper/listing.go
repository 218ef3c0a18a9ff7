package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/config"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// ParseListing extracts the job cards of one listing page and the absolute
// URL of the next page. An empty next URL means there are no more pages,
// whether the pagination control is missing or disabled.
func ParseListing(markup, baseURL string, sel config.Selectors) ([]models.JobSummary, string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var summaries []models.JobSummary
	doc.Find(sel.Card).Each(func(i int, s *goquery.Selection) {
		summary := models.JobSummary{
			Title:       textOr(s, sel.Title, models.NoTitle),
			Description: textOr(s, sel.Description, models.NoDescription),
		}
		if href, ok := s.Find("a[href]").First().Attr("href"); ok {
			summary.DetailURL = resolve(base, href)
		}
		summaries = append(summaries, summary)
	})

	return summaries, nextPage(doc, base, sel.NextPage), nil
}

func nextPage(doc *goquery.Document, base *url.URL, selector string) string {
	next := doc.Find(selector).First()
	if next.Length() == 0 || next.HasClass("disabled") {
		return ""
	}
	href, ok := next.Attr("href")
	if !ok {
		return ""
	}
	return resolve(base, href)
}

// textOr returns the trimmed text of the first match, or fallback when
// nothing matches
func textOr(s *goquery.Selection, selector, fallback string) string {
	match := s.Find(selector).First()
	if match.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(match.Text())
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

package models

import (
	"sync"

	"github.com/cheggaaa/pb/v3"
)

// Sentinels written in place of values missing from the markup.
const (
	NoTitle       = "No title"
	NoDescription = "No description"
	NotSpecified  = "Not specified"
)

// Level is the seniority bucket inferred from years of experience
type Level int

const (
	LevelNotSpecified Level = iota
	LevelJunior
	LevelMiddle
	LevelSenior
)

// Levels lists the concrete buckets in reporting order
var Levels = []Level{LevelJunior, LevelMiddle, LevelSenior}

func (l Level) String() string {
	switch l {
	case LevelJunior:
		return "Junior"
	case LevelMiddle:
		return "Middle"
	case LevelSenior:
		return "Senior"
	default:
		return NotSpecified
	}
}

// MarshalText keeps the serialized level human readable
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel maps a serialized level back to its bucket. Unknown values
// map to LevelNotSpecified.
func ParseLevel(s string) Level {
	switch s {
	case "Junior":
		return LevelJunior
	case "Middle":
		return LevelMiddle
	case "Senior":
		return LevelSenior
	default:
		return LevelNotSpecified
	}
}

// JobSummary is one card from a listing page
type JobSummary struct {
	Title       string
	Description string
	DetailURL   string // empty when the card carries no link
}

// JobRecord represents one scraped job listing
type JobRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Experience  string   `json:"experience"`
	Level       Level    `json:"level"`
	Skills      []string `json:"skills"`
}

// CrawlProgress tracks the progress of a crawl run. A nil JobBar is allowed.
type CrawlProgress struct {
	JobBar    *pb.ProgressBar
	Pages     int
	FoundJobs int
	mu        sync.Mutex
}

// PageParsed records a listing page and grows the bar by its job count.
func (p *CrawlProgress) PageParsed(jobs int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Pages++
	if p.JobBar != nil {
		p.JobBar.SetTotal(p.JobBar.Total() + int64(jobs))
	}
}

// JobDone records one fully built job record.
func (p *CrawlProgress) JobDone() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.FoundJobs++
	if p.JobBar != nil {
		p.JobBar.Increment()
	}
}

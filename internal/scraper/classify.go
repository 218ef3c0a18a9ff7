package scraper

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// experienceMarkers select the sentences that talk about experience.
var experienceMarkers = []string{"experience", "досвід"}

// yearTokens must directly follow a number for it to count as years.
var yearTokens = map[string]struct{}{
	"years":  {},
	"років":  {},
	"рік":    {},
	"річний": {},
	"роки":   {},
	"року":   {},
}

// Classify infers the experience phrase and seniority bucket from a job
// description. The largest "<N> years" figure found in a sentence that
// mentions experience wins.
func Classify(description string) (string, models.Level) {
	var candidates []int

	for _, sentence := range strings.Split(strings.ToLower(description), ".") {
		if !mentionsExperience(sentence) {
			continue
		}
		words := strings.Fields(sentence)
		for i, word := range words {
			if i+1 >= len(words) {
				break
			}
			n, ok := parseYears(word)
			if !ok {
				continue
			}
			if _, isYears := yearTokens[words[i+1]]; isYears {
				candidates = append(candidates, n)
			}
		}
	}

	if len(candidates) == 0 {
		return models.NotSpecified, models.LevelNotSpecified
	}

	maxYears := candidates[0]
	for _, n := range candidates[1:] {
		if n > maxYears {
			maxYears = n
		}
	}

	return fmt.Sprintf("%d years of experience", maxYears), LevelForYears(maxYears)
}

// LevelForYears buckets years of experience: <2 Junior, <5 Middle, else Senior
func LevelForYears(years int) models.Level {
	switch {
	case years < 2:
		return models.LevelJunior
	case years < 5:
		return models.LevelMiddle
	default:
		return models.LevelSenior
	}
}

func mentionsExperience(sentence string) bool {
	for _, marker := range experienceMarkers {
		if strings.Contains(sentence, marker) {
			return true
		}
	}
	return false
}

// parseYears accepts unsigned decimal integers only
func parseYears(word string) (int, bool) {
	for _, r := range word {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, false
	}
	return n, true
}

package analysis

import (
	"sort"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// SkillCount is how many records mention a skill
type SkillCount struct {
	Skill string
	Count int
}

// LevelCount is how many records fall into a seniority bucket
type LevelCount struct {
	Level models.Level
	Count int
}

// TopSkills returns the n most frequent skills across records. Ties keep
// the order in which skills were first seen.
func TopSkills(records []models.JobRecord, n int) []SkillCount {
	var counts []SkillCount
	position := make(map[string]int)

	for _, r := range records {
		for _, skill := range r.Skills {
			if i, ok := position[skill]; ok {
				counts[i].Count++
				continue
			}
			position[skill] = len(counts)
			counts = append(counts, SkillCount{Skill: skill, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// TopSkillsByLevel is TopSkills restricted to one seniority bucket
func TopSkillsByLevel(records []models.JobRecord, level models.Level, n int) []SkillCount {
	return TopSkills(FilterByLevel(records, level), n)
}

// FilterByLevel keeps the records of one bucket
func FilterByLevel(records []models.JobRecord, level models.Level) []models.JobRecord {
	var out []models.JobRecord
	for _, r := range records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// LevelBreakdown counts records per bucket, concrete levels first and
// NotSpecified last.
func LevelBreakdown(records []models.JobRecord) []LevelCount {
	order := append(append([]models.Level{}, models.Levels...), models.LevelNotSpecified)

	byLevel := make(map[models.Level]int, len(order))
	for _, r := range records {
		byLevel[r.Level]++
	}

	breakdown := make([]LevelCount, 0, len(order))
	for _, level := range order {
		breakdown = append(breakdown, LevelCount{Level: level, Count: byLevel[level]})
	}
	return breakdown
}

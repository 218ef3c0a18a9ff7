package ui

import (
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/analysis"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// ColorizeLevel colours a seniority bucket for terminal output
func ColorizeLevel(level models.Level) string {
	switch level {
	case models.LevelJunior:
		return pterm.LightGreen(level.String())
	case models.LevelMiddle:
		return pterm.Yellow(level.String())
	case models.LevelSenior:
		return pterm.LightRed(level.String())
	default:
		return pterm.Gray(level.String())
	}
}

// BarsFromCounts converts skill counts to chart bars, most demanded first
func BarsFromCounts(counts []analysis.SkillCount) pterm.Bars {
	bars := make(pterm.Bars, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, pterm.Bar{Label: c.Skill, Value: c.Count})
	}
	return bars
}

// RenderSkillChart prints a titled horizontal bar chart of skill frequencies
func RenderSkillChart(title string, counts []analysis.SkillCount) error {
	pterm.DefaultSection.Println(title)
	if len(counts) == 0 {
		pterm.Warning.Println("No skills to chart")
		return nil
	}
	return pterm.DefaultBarChart.
		WithBars(BarsFromCounts(counts)).
		WithHorizontal().
		WithShowValue().
		Render()
}

// LevelTable builds the per-level breakdown table data
func LevelTable(breakdown []analysis.LevelCount) pterm.TableData {
	data := pterm.TableData{{"Level", "Jobs"}}
	for _, lc := range breakdown {
		data = append(data, []string{ColorizeLevel(lc.Level), humanize.Comma(int64(lc.Count))})
	}
	return data
}

// RenderLevelBreakdown prints how many jobs fall into each bucket
func RenderLevelBreakdown(breakdown []analysis.LevelCount) error {
	pterm.DefaultSection.Println("Jobs by Level")
	return pterm.DefaultTable.WithHasHeader().WithData(LevelTable(breakdown)).Render()
}

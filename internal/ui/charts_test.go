package ui

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/analysis"
	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

func TestBarsFromCounts(t *testing.T) {
	bars := BarsFromCounts([]analysis.SkillCount{{Skill: "Python", Count: 7}, {Skill: "Go", Count: 3}})

	require.Len(t, bars, 2)
	assert.Equal(t, "Python", bars[0].Label)
	assert.Equal(t, 7, bars[0].Value)
	assert.Equal(t, "Go", bars[1].Label)
}

func TestLevelTable(t *testing.T) {
	data := LevelTable([]analysis.LevelCount{
		{Level: models.LevelSenior, Count: 1234},
		{Level: models.LevelNotSpecified, Count: 0},
	})

	require.Len(t, data, 3)
	assert.Equal(t, []string{"Level", "Jobs"}, data[0])
	assert.Equal(t, "Senior", pterm.RemoveColorFromString(data[1][0]))
	assert.Equal(t, "1,234", data[1][1])
	assert.Equal(t, "Not specified", pterm.RemoveColorFromString(data[2][0]))
	assert.Equal(t, "0", data[2][1])
}

func TestRenderWithOutputDisabled(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	assert.NoError(t, RenderSkillChart("Most Demanded Skills", []analysis.SkillCount{{Skill: "Go", Count: 1}}))
	assert.NoError(t, RenderSkillChart("Empty", nil))
	assert.NoError(t, RenderLevelBreakdown(analysis.LevelBreakdown(nil)))
}

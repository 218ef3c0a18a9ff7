package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

func TestEncode(t *testing.T) {
	records := []models.JobRecord{
		{
			Title:       "Python Developer",
			Description: "Experience 3 years, Django",
			Experience:  "3 years of experience",
			Level:       models.LevelMiddle,
			Skills:      []string{"Python", "Django"},
		},
		{
			Title:       models.NoTitle,
			Description: models.NoDescription,
			Experience:  models.NotSpecified,
			Level:       models.LevelNotSpecified,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records))

	expected := "title,description,experience,level,skills\n" +
		"Python Developer,\"Experience 3 years, Django\",3 years of experience,Middle,\"Python, Django\"\n" +
		"No title,No description,Not specified,Not specified,Not specified\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteAndReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	records := []models.JobRecord{{
		Title:       "Go Engineer",
		Description: "Досвід 5 років",
		Experience:  "5 years of experience",
		Level:       models.LevelSenior,
		Skills:      []string{"Go", "gRPC", "PostgreSQL"},
	}}

	require.NoError(t, WriteCSV(path, records))

	loaded, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestDecode_BlankSkillsAndReorderedColumns(t *testing.T) {
	in := "skills,level,title,description,experience\n,Junior,Intern,d,1 years of experience\n"

	records, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Intern", records[0].Title)
	assert.Equal(t, models.LevelJunior, records[0].Level)
	assert.Empty(t, records[0].Skills)
}

func TestDecode_MissingColumn(t *testing.T) {
	_, err := Decode(strings.NewReader("title,description\nx,y\n"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fr4nk3nst1ner/skillsleuth/internal/models"
)

// Header is the column order of the jobs file
var Header = []string{"title", "description", "experience", "level", "skills"}

// JoinSkills serializes a skill list, falling back to the sentinel when empty
func JoinSkills(skills []string) string {
	if len(skills) == 0 {
		return models.NotSpecified
	}
	return strings.Join(skills, ", ")
}

// Encode writes records as CSV with a header row
func Encode(w io.Writer, records []models.JobRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Title, r.Description, r.Experience, r.Level.String(), JoinSkills(r.Skills)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV replaces the file at path with the given records
func WriteCSV(path string, records []models.JobRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Decode reads records written by Encode. Columns are located by header
// name; a blank skills cell leaves Skills empty.
func Decode(r io.Reader) ([]models.JobRecord, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range Header {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []models.JobRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, models.JobRecord{
			Title:       row[index["title"]],
			Description: row[index["description"]],
			Experience:  row[index["experience"]],
			Level:       models.ParseLevel(row[index["level"]]),
			Skills:      splitSkills(row[index["skills"]]),
		})
	}
	return records, nil
}

// ReadCSV loads the jobs file at path
func ReadCSV(path string) ([]models.JobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

func splitSkills(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		skills = append(skills, strings.TrimSpace(p))
	}
	return skills
}

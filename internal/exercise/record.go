package exercise

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Record is one exercise row from the source CSV. Muscle fields hold the raw
// CSV text; the literal string "None" marks an absent muscle group.
type Record struct {
	Name            string
	Description     string
	Instructions    string
	Category        string
	PrimaryMuscle   string
	SecondaryMuscle string
	TertiaryMuscle  string
	Equipment       string
	Difficulty      string
}

// columns is the required CSV header schema, in no particular order.
var columns = []string{
	"name",
	"description",
	"instructions",
	"category",
	"primary_muscle",
	"secondary_muscle",
	"tertiary_muscle",
	"equipment_needed",
	"difficulty_level",
}

// ReadRecords parses the exercise CSV. The first row must be a header
// containing every required column; extra columns are ignored. Any malformed
// row aborts the whole read.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("CSV header is missing required column %q", name)
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		records = append(records, Record{
			Name:            row[index["name"]],
			Description:     row[index["description"]],
			Instructions:    row[index["instructions"]],
			Category:        row[index["category"]],
			PrimaryMuscle:   row[index["primary_muscle"]],
			SecondaryMuscle: row[index["secondary_muscle"]],
			TertiaryMuscle:  row[index["tertiary_muscle"]],
			Equipment:       row[index["equipment_needed"]],
			Difficulty:      row[index["difficulty_level"]],
		})
	}

	return records, nil
}

package exercise

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/felonyfitnessvideos-cmd/felony-fitness-app/internal/sqltext"
)

// insertTemplate renders one exercise row. Muscle group names go through the
// get_muscle_id helper declared in the script header instead of being
// resolved to foreign keys up front.
const insertTemplate = `INSERT INTO exercises (name, description, instructions, category, primary_muscle_group_id, secondary_muscle_group_id, tertiary_muscle_group_id, equipment_needed, difficulty_level, is_compound, exercise_type)
VALUES ('%s', '%s', '%s', '%s',
        get_muscle_id('%s'),
        %s,
        %s,
        '%s', '%s',
        %s, 'strength');`

// noneSentinel marks an absent secondary/tertiary muscle group in the CSV.
const noneSentinel = "None"

// Generate reads exercise records from r and renders the complete SQL script:
// fixed DDL header, one INSERT per row separated by blank lines, fixed footer.
// Returns the script and the number of inserts.
func Generate(r io.Reader) (string, int, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return "", 0, err
	}

	inserts := make([]string, 0, len(records))
	for _, rec := range records {
		inserts = append(inserts, renderInsert(rec))
	}

	var b strings.Builder
	b.WriteString(sqlHeader)
	b.WriteString(strings.Join(inserts, "\n\n"))
	b.WriteString(sqlFooter)
	return b.String(), len(inserts), nil
}

// GenerateFile runs Generate against inputPath and writes the script to
// outputPath. The output file is only written once every row has rendered.
func GenerateFile(inputPath, outputPath string) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	defer in.Close()

	script, count, err := Generate(in)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(outputPath, []byte(script), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return count, nil
}

func renderInsert(rec Record) string {
	compound := rec.SecondaryMuscle != noneSentinel
	return fmt.Sprintf(insertTemplate,
		sqltext.Escape(rec.Name),
		sqltext.Escape(rec.Description),
		sqltext.Escape(rec.Instructions),
		rec.Category,
		rec.PrimaryMuscle,
		muscleArg(rec.SecondaryMuscle),
		muscleArg(rec.TertiaryMuscle),
		sqltext.Escape(rec.Equipment),
		rec.Difficulty,
		strconv.FormatBool(compound),
	)
}

// muscleArg renders an optional muscle group: the "None" sentinel becomes a
// bare NULL, anything else is wrapped in the lookup helper.
func muscleArg(name string) string {
	if name == noneSentinel {
		return "NULL"
	}
	return "get_muscle_id('" + name + "')"
}

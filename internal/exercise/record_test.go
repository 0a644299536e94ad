package exercise

import (
	"strings"
	"testing"
)

const testHeader = "name,description,instructions,category,primary_muscle,secondary_muscle,tertiary_muscle,equipment_needed,difficulty_level\n"

func TestReadRecords(t *testing.T) {
	csv := testHeader +
		"Bench Press,Chest press,Lie on bench,Free Weight,Chest,Triceps,Shoulders,Barbell,Intermediate\n" +
		"Plank,Core hold,Hold position,Bodyweight,Core,None,None,None,Beginner\n"

	records, err := ReadRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.Name != "Bench Press" || first.PrimaryMuscle != "Chest" || first.SecondaryMuscle != "Triceps" {
		t.Errorf("unexpected first record: %+v", first)
	}
	second := records[1]
	if second.SecondaryMuscle != "None" || second.TertiaryMuscle != "None" {
		t.Errorf("sentinel values should be kept verbatim, got %+v", second)
	}
}

func TestReadRecordsColumnOrder(t *testing.T) {
	// Columns resolved by header name, not position
	csv := "difficulty_level,name,description,instructions,category,primary_muscle,secondary_muscle,tertiary_muscle,equipment_needed\n" +
		"Advanced,Deadlift,Hip hinge,Lift the bar,Free Weight,Back,Glutes,Hamstrings,Barbell\n"

	records, err := ReadRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if records[0].Name != "Deadlift" || records[0].Difficulty != "Advanced" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestReadRecordsMissingColumn(t *testing.T) {
	csv := "name,description\nBench Press,Chest press\n"

	_, err := ReadRecords(strings.NewReader(csv))
	if err == nil {
		t.Fatal("ReadRecords() expected error for missing columns, got nil")
	}
	if !strings.Contains(err.Error(), "missing required column") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadRecordsMalformedRow(t *testing.T) {
	csv := testHeader + "Bench Press,too,few,fields\n"

	_, err := ReadRecords(strings.NewReader(csv))
	if err == nil {
		t.Fatal("ReadRecords() expected error for short row, got nil")
	}
}

func TestReadRecordsQuotedFields(t *testing.T) {
	csv := testHeader +
		"\"Farmer's Walk\",\"Carry, heavy\",Walk forward,Free Weight,Forearms,Trapezius,Core,Dumbbells,Beginner\n"

	records, err := ReadRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if records[0].Name != "Farmer's Walk" {
		t.Errorf("Name = %q, want %q", records[0].Name, "Farmer's Walk")
	}
	if records[0].Description != "Carry, heavy" {
		t.Errorf("Description = %q, want %q", records[0].Description, "Carry, heavy")
	}
}

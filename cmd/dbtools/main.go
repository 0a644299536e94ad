package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/felonyfitnessvideos-cmd/felony-fitness-app/internal/apply"
	"github.com/felonyfitnessvideos-cmd/felony-fitness-app/internal/config"
	"github.com/felonyfitnessvideos-cmd/felony-fitness-app/internal/exercise"
	"github.com/felonyfitnessvideos-cmd/felony-fitness-app/internal/food"
	"github.com/felonyfitnessvideos-cmd/felony-fitness-app/internal/logger"
)

var (
	configPath string
	inputPath  string
	outputPath string
	listOnly   bool
	force      bool
)

var rootCmd = &cobra.Command{
	Use:   "dbtools",
	Short: "Database migration tools for the fitness app",
	Long: `dbtools bundles the one-off database migration scripts for the fitness app.

Generate the exercises insert script from CSV, rewrite the common-foods insert
script to the merged serving_description schema, and apply generated SQL files
to PostgreSQL with a ledger of what already ran.`,
	Version: "1.0.0",
}

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Generate the exercises insert SQL script from CSV",
	Long: `Exercises converts the exercise definitions CSV into a complete SQL script:
table DDL, one INSERT per row with muscle groups resolved through the
get_muscle_id helper, indexes, and a summary view.

Example:
  dbtools exercises
  dbtools exercises --input exercises_updated_muscles.csv --output all_exercises_insert.sql`,
	Args: cobra.NoArgs,
	RunE: runExercises,
}

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Rewrite the common-foods insert script to the merged serving format",
	Long: `Foods rewrites a batch insert script whose rows carry separate serving_size
and serving_unit columns into the current schema's single serving_description
column. Lines that do not look like legacy food tuples pass through unchanged,
so running it on already converted output is a no-op.

Example:
  dbtools foods
  dbtools foods --input batch-insert-common-foods.sql --output batch-insert-common-foods-fixed.sql`,
	Args: cobra.NoArgs,
	RunE: runFoods,
}

var applyCmd = &cobra.Command{
	Use:   "apply [file.sql]",
	Short: "Apply a generated SQL script to PostgreSQL",
	Long: `Apply executes a SQL script against the configured PostgreSQL database inside
one transaction and records it in the schema_scripts ledger. A script whose
contents were already applied is refused unless --force is given.

Connection settings come from the config file or DBTOOLS_DB_* environment
variables.

Example:
  dbtools apply all_exercises_insert.sql
  dbtools apply --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dbtools version %s\n", rootCmd.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./dbtools.yaml if present)")

	exercisesCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input CSV path (default: exercises_updated_muscles.csv)")
	exercisesCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SQL path (default: all_exercises_insert.sql)")

	foodsCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input SQL path (default: batch-insert-common-foods.sql)")
	foodsCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SQL path (default: batch-insert-common-foods-fixed.sql)")

	applyCmd.Flags().BoolVar(&listOnly, "list", false, "List the schema_scripts ledger instead of applying")
	applyCmd.Flags().BoolVar(&force, "force", false, "Apply even if the script's checksum is already in the ledger")

	rootCmd.AddCommand(exercisesCmd, foodsCmd, applyCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExercises(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	input := cfg.Exercises.InputCSV
	if inputPath != "" {
		input = inputPath
	}
	output := cfg.Exercises.OutputSQL
	if outputPath != "" {
		output = outputPath
	}

	count, err := exercise.GenerateFile(input, output)
	if err != nil {
		return err
	}

	logger.Infof("Generated %s with %d exercises", output, count)
	return nil
}

func runFoods(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	input := cfg.Foods.InputSQL
	if inputPath != "" {
		input = inputPath
	}
	output := cfg.Foods.OutputSQL
	if outputPath != "" {
		output = outputPath
	}

	res, err := food.FixFile(input, output)
	if err != nil {
		return err
	}

	if res.Skipped > 0 {
		logger.Warnf("%d candidate line(s) did not match the legacy tuple format and were passed through", res.Skipped)
	}
	logger.Infof("Fixed SQL written to %s", output)
	logger.Infof("Processed %d lines, rewrote %d", res.Lines, res.Rewritten)
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runner, err := apply.Open(ctx, cfg.ConnString())
	if err != nil {
		return err
	}
	defer runner.Close()

	if listOnly {
		records, err := runner.List(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No scripts recorded")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %s  %s  %s\n", rec.AppliedAt.Format("2006-01-02 15:04:05"), rec.Status, rec.Checksum[:12], rec.Name)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("apply requires a SQL file argument (or --list)")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	name := filepath.Base(args[0])
	if err := runner.Apply(ctx, name, string(data), force); err != nil {
		return err
	}

	logger.Infof("Applied %s", name)
	return nil
}

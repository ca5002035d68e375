package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"FitCoach_V0.1/internal/openrouter"
	"FitCoach_V0.1/internal/plan"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	planInput   plan.UserInput
	planGoal    string
	planLevel   string
	planPlace   string
	planDiet    string
	planStress  string
	planOutPath string
	planAsJSON  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a plan and write the text export",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := planInput
		in.Goal = plan.FitnessGoal(planGoal)
		in.FitnessLevel = plan.FitnessLevel(planLevel)
		in.WorkoutLocation = plan.WorkoutLocation(planPlace)
		in.DietType = plan.DietType(planDiet)
		in.StressLevel = plan.StressLevel(planStress)

		if problems := in.Validate(); len(problems) > 0 {
			log.Warn().Strs("problems", problems).Msg("plan input has out-of-range fields, continuing")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		gen := plan.NewGenerator(cfg, openrouter.NewClient(cfg, nil))
		result := gen.Generate(ctx, &log.Logger, in)
		fmt.Fprintf(cmd.ErrOrStderr(), "outcome: %s\n", result.Outcome)

		var out []byte
		if planAsJSON {
			b, err := json.MarshalIndent(result.Plan, "", "  ")
			if err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			out = append(b, '\n')
		} else {
			out = []byte(plan.ExportText(in.Name, result.Plan) + "\n")
		}

		path := planOutPath
		if path == "auto" {
			path = plan.ExportFilename(in.Name)
		}
		if path == "" || path == "-" {
			_, err := cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planInput.Name, "name", "", "Your name")
	f.IntVar(&planInput.Age, "age", 0, "Age in years")
	f.StringVar(&planInput.Gender, "gender", "", "Gender")
	f.Float64Var(&planInput.HeightCm, "height", 0, "Height in centimeters")
	f.Float64Var(&planInput.WeightKg, "weight", 0, "Weight in kilograms")
	f.StringVar(&planGoal, "goal", string(plan.GoalGeneralFitness), "weight_loss, muscle_gain or general_fitness")
	f.StringVar(&planLevel, "level", string(plan.LevelBeginner), "beginner, intermediate or advanced")
	f.StringVar(&planPlace, "location", string(plan.LocationHome), "home, gym or outdoor")
	f.StringVar(&planDiet, "diet", string(plan.DietVeg), "veg, non-veg, vegan or keto")
	f.StringVar(&planInput.MedicalHistory, "medical", "", "Medical history (optional)")
	f.StringVar(&planStress, "stress", "", "low, medium or high (optional)")
	f.StringVar(&planOutPath, "out", "-", `Output path, "-" for stdout, "auto" for <name>-ai-fitness-plan.txt`)
	f.BoolVar(&planAsJSON, "json", false, "Print the plan JSON instead of the text export")

	rootCmd.AddCommand(planCmd)
}

package plan

import (
	"fmt"
	"strings"
)

/* =================================================================================
							USER INPUT
=================================================================================*/

type FitnessGoal string

const (
	GoalWeightLoss     FitnessGoal = "weight_loss"
	GoalMuscleGain     FitnessGoal = "muscle_gain"
	GoalGeneralFitness FitnessGoal = "general_fitness"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

type WorkoutLocation string

const (
	LocationHome    WorkoutLocation = "home"
	LocationGym     WorkoutLocation = "gym"
	LocationOutdoor WorkoutLocation = "outdoor"
)

type DietType string

const (
	DietVeg    DietType = "veg"
	DietNonVeg DietType = "non-veg"
	DietVegan  DietType = "vegan"
	DietKeto   DietType = "keto"
)

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

var (
	validGoals     = map[FitnessGoal]bool{GoalWeightLoss: true, GoalMuscleGain: true, GoalGeneralFitness: true}
	validLevels    = map[FitnessLevel]bool{LevelBeginner: true, LevelIntermediate: true, LevelAdvanced: true}
	validLocations = map[WorkoutLocation]bool{LocationHome: true, LocationGym: true, LocationOutdoor: true}
	validDiets     = map[DietType]bool{DietVeg: true, DietNonVeg: true, DietVegan: true, DietKeto: true}
	validStress    = map[StressLevel]bool{StressLow: true, StressMedium: true, StressHigh: true}
)

// UserInput is the payload accepted by the plan endpoint. It lives for one request.
type UserInput struct {
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Gender          string          `json:"gender"`
	HeightCm        float64         `json:"heightCm"`
	WeightKg        float64         `json:"weightKg"`
	Goal            FitnessGoal     `json:"goal"`
	FitnessLevel    FitnessLevel    `json:"fitnessLevel"`
	WorkoutLocation WorkoutLocation `json:"workoutLocation"`
	DietType        DietType        `json:"dietType"`
	MedicalHistory  string          `json:"medicalHistory,omitempty"`
	StressLevel     StressLevel     `json:"stressLevel,omitempty"`
}

// Validate lists the fields that fall outside their documented ranges.
// The plan endpoint logs these and still answers, so the result is advisory.
func (u UserInput) Validate() []string {
	var problems []string

	if strings.TrimSpace(u.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if u.Age <= 0 {
		problems = append(problems, fmt.Sprintf("age must be positive, got %d", u.Age))
	}
	if u.HeightCm <= 0 {
		problems = append(problems, fmt.Sprintf("heightCm must be positive, got %v", u.HeightCm))
	}
	if u.WeightKg <= 0 {
		problems = append(problems, fmt.Sprintf("weightKg must be positive, got %v", u.WeightKg))
	}
	if !validGoals[u.Goal] {
		problems = append(problems, fmt.Sprintf("unknown goal %q", u.Goal))
	}
	if !validLevels[u.FitnessLevel] {
		problems = append(problems, fmt.Sprintf("unknown fitnessLevel %q", u.FitnessLevel))
	}
	if !validLocations[u.WorkoutLocation] {
		problems = append(problems, fmt.Sprintf("unknown workoutLocation %q", u.WorkoutLocation))
	}
	if !validDiets[u.DietType] {
		problems = append(problems, fmt.Sprintf("unknown dietType %q", u.DietType))
	}
	if u.StressLevel != "" && !validStress[u.StressLevel] {
		problems = append(problems, fmt.Sprintf("unknown stressLevel %q", u.StressLevel))
	}

	return problems
}

/* =================================================================================
							GENERATED PLAN
=================================================================================*/

// GeneratedPlan is the response shape of the plan endpoint. Tips is always
// populated; the two plan sections are either model JSON or plain text.
type GeneratedPlan struct {
	WorkoutPlan Content `json:"workoutPlan,omitzero"`
	DietPlan    Content `json:"dietPlan,omitzero"`
	Tips        string  `json:"tips"`
}

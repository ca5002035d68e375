package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaselinePersonalisesNameAndDiet(t *testing.T) {
	t.Parallel()
	p := Baseline(UserInput{Name: "Meera", DietType: DietKeto})

	assert.True(t, strings.HasPrefix(p.WorkoutPlan.String(), "Sample workout plan for Meera:"))
	assert.True(t, strings.HasPrefix(p.DietPlan.String(), "Generic keto diet plan:"))
	assert.True(t, strings.HasPrefix(p.Tips, "Hi Meera!"))
	assert.Equal(t, ContentText, p.WorkoutPlan.Kind())
}

func TestBaselineDefaults(t *testing.T) {
	t.Parallel()
	p := Baseline(UserInput{Name: "   "})

	assert.Contains(t, p.WorkoutPlan.String(), "Sample workout plan for Athlete:")
	assert.Contains(t, p.DietPlan.String(), "Generic balanced diet plan:")
	assert.NotEmpty(t, p.Tips)
}

func TestBaselineOnlyVariesByNameAndDiet(t *testing.T) {
	t.Parallel()
	a := sampleInput()
	b := a
	b.Age, b.Goal, b.WorkoutLocation = 70, GoalWeightLoss, LocationOutdoor
	assert.Equal(t, Baseline(a), Baseline(b))
}

func TestBuildPromptEmbedsEveryField(t *testing.T) {
	t.Parallel()
	in := sampleInput()
	in.MedicalHistory = "mild asthma"
	prompt := BuildPrompt(in)

	for _, want := range []string{
		"Name: Asha", "Age: 29", "Gender: female", "Height: 162 cm", "Weight: 58.5 kg",
		"Goal: muscle_gain", "Fitness Level: intermediate", "Workout Location: gym",
		"Diet Type: vegan", "Medical History: mild asthma", "Stress Level: high",
		`"workoutPlan"`, "Only valid JSON.",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildPromptMissingOptionalFields(t *testing.T) {
	t.Parallel()
	in := sampleInput()
	in.StressLevel = ""
	prompt := BuildPrompt(in)

	assert.Contains(t, prompt, "Medical History: Not provided")
	assert.Contains(t, prompt, "Stress Level: Not provided")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.Empty(t, sampleInput().Validate())

	problems := UserInput{Goal: "fly", StressLevel: "extreme"}.Validate()
	assert.Len(t, problems, 9)
}

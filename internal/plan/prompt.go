package plan

import "fmt"

const notProvided = "Not provided"

/*
PlanPromptTemplate is the single user message sent to the completion service.
Placeholders are filled by BuildPrompt in field order.
*/
const PlanPromptTemplate = `
You are an expert personal trainer and nutritionist.

Generate a personalised 7-day fitness plan for this user:

Name: %s
Age: %d
Gender: %s
Height: %v cm
Weight: %v kg
Goal: %s
Fitness Level: %s
Workout Location: %s
Diet Type: %s
Medical History: %s
Stress Level: %s

Return STRICTLY in this JSON format:

{
  "workoutPlan": "detailed 7-day workout plan with days, exercises, sets, reps, and rest times",
  "dietPlan": "detailed 7-day diet plan with breakfast, lunch, dinner, and snacks",
  "tips": "short bullet points with lifestyle advice, posture tips, stress management and motivational lines"
}

Do not include any markdown, comments, or extra text. Only valid JSON.
`

// BuildPrompt embeds every UserInput field into PlanPromptTemplate.
func BuildPrompt(in UserInput) string {
	medical := in.MedicalHistory
	if medical == "" {
		medical = notProvided
	}
	stress := string(in.StressLevel)
	if stress == "" {
		stress = notProvided
	}

	return fmt.Sprintf(
		PlanPromptTemplate,
		in.Name,
		in.Age,
		in.Gender,
		in.HeightCm,
		in.WeightKg,
		in.Goal,
		in.FitnessLevel,
		in.WorkoutLocation,
		in.DietType,
		medical,
		stress,
	)
}

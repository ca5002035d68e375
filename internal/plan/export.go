package plan

import "strings"

const defaultExportName = "fitness-user"

// ExportText renders a plan as the downloadable plain-text document.
func ExportText(name string, p GeneratedPlan) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultExportName
	}

	return strings.Join([]string{
		"AI Fitness Plan for " + name,
		"",
		"=== WORKOUT PLAN ===",
		p.WorkoutPlan.String(),
		"",
		"=== DIET PLAN ===",
		p.DietPlan.String(),
		"",
		"=== TIPS & MOTIVATION ===",
		p.Tips,
	}, "\n")
}

// ExportFilename turns "Asha Rao" into "asha-rao-ai-fitness-plan.txt".
func ExportFilename(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		words = []string{defaultExportName}
	}
	return strings.Join(words, "-") + "-ai-fitness-plan.txt"
}

package plan

import (
	"fmt"
	"strings"
)

const (
	defaultDisplayName = "Athlete"
	defaultDietLabel   = "balanced"
)

const baselineWorkoutTemplate = `Sample workout plan for %s:

Day 1 - Full Body
- Bodyweight Squats - 3 x 12
- Push Ups - 3 x 10 (knee or incline if needed)
- Glute Bridges - 3 x 15
- Plank - 3 x 20-30 sec

Day 2 - Cardio + Core
- Brisk Walk or Easy Jog - 20-25 min
- Mountain Climbers - 3 x 12 each side
- Side Plank - 3 x 20 sec each side

Day 3 - Upper Body
- Incline Push Ups - 4 x 8-10
- Water Bottle Rows - 3 x 12
- Shoulder Taps - 3 x 12

Day 4 - Rest & Mobility
- Light Walk - 15-20 min
- Full Body Stretching - 10-15 min

Day 5 - Lower Body
- Chair Squats - 4 x 12
- Reverse Lunges - 3 x 10 each leg
- Calf Raises - 3 x 15

Day 6 - Cardio Intervals
- Warmup Walk - 5 min
- Fast Walk 1 min + Slow Walk 1.5 min - 6-8 rounds
- Cooldown Stretching - 5 min

Day 7 - Rest
- Easy movement and stretching`

const baselineDietTemplate = `Generic %s diet plan:

Breakfast:
- Oats with milk or yogurt, nuts and one fruit
OR
- Eggs or paneer scramble with one multigrain roti

Mid-Morning:
- Seasonal fruit with a handful of nuts

Lunch:
- 1-2 rotis or 1.5 bowls of rice
- Dal, rajma, chole or sambar
- Seasonal vegetables
- Large salad bowl

Evening:
- Roasted chana, sprouts or makhana
- Green tea or lemon water

Dinner:
- Lighter than lunch
- Dal with vegetables and one roti
OR
- Paneer, tofu or chicken with vegetables
OR
- Soup and salad with a small portion of carbs

Hydration:
- 3-4 L of water through the day`

const baselineTipsTemplate = `Hi %s!

- Start slow and stay consistent: a small effort every day beats an occasional heavy session.
- Focus on form before adding reps or weight.
- Sleep 7-8 hours for better recovery.
- Take a short walk or stretch after every 45-60 minutes of screen time.
- When stress runs high, add 5-10 minutes of deep breathing or a light walk.

You've got this!`

// Baseline returns the static fallback plan, personalised only by the
// user's name and diet type.
func Baseline(in UserInput) GeneratedPlan {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = defaultDisplayName
	}
	diet := strings.TrimSpace(string(in.DietType))
	if diet == "" {
		diet = defaultDietLabel
	}

	return GeneratedPlan{
		WorkoutPlan: TextContent(fmt.Sprintf(baselineWorkoutTemplate, name)),
		DietPlan:    TextContent(fmt.Sprintf(baselineDietTemplate, diet)),
		Tips:        fmt.Sprintf(baselineTipsTemplate, name),
	}
}

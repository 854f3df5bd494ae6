// Package catalog provides the built-in exercise library and workout
// templates. Both are read-only to the session engine; the library is
// seeded into the store at startup so history rows can reference it.
package catalog

import "github.com/claude/ironlog/internal/models"

// Exercises returns the built-in exercise library.
func Exercises() []models.Exercise {
	return builtinExercises
}

// ExerciseByID looks up a built-in exercise.
func ExerciseByID(id string) (models.Exercise, bool) {
	for _, ex := range builtinExercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// Templates returns the built-in workout templates.
func Templates() []models.Template {
	return builtinTemplates
}

// TemplateByID looks up a built-in template.
func TemplateByID(id string) (models.Template, bool) {
	for _, t := range builtinTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}

var builtinExercises = []models.Exercise{
	{
		ID:               "ex_squat",
		Name:             "Barbell Squat",
		PrimaryMuscle:    "quads",
		SecondaryMuscles: []string{"glutes", "hamstrings", "core"},
		Equipment:        "barbell",
		Difficulty:       "intermediate",
		Category:         "compound",
		Instructions: []string{
			"Set the bar on your upper back and unrack it.",
			"Squat down until your thighs are at least parallel.",
			"Drive back up through your whole foot.",
		},
	},
	{
		ID:               "ex_bench_press",
		Name:             "Bench Press",
		PrimaryMuscle:    "chest",
		SecondaryMuscles: []string{"triceps", "shoulders"},
		Equipment:        "barbell",
		Difficulty:       "intermediate",
		Category:         "compound",
		Instructions: []string{
			"Lie on the bench with your eyes under the bar.",
			"Lower the bar to your mid chest.",
			"Press back up to lockout.",
		},
	},
	{
		ID:               "ex_deadlift",
		Name:             "Deadlift",
		PrimaryMuscle:    "back",
		SecondaryMuscles: []string{"hamstrings", "glutes", "traps"},
		Equipment:        "barbell",
		Difficulty:       "advanced",
		Category:         "compound",
		Instructions: []string{
			"Stand with the bar over mid foot.",
			"Grip the bar, brace, and stand up with it.",
			"Return the bar to the floor under control.",
		},
	},
	{
		ID:               "ex_overhead_press",
		Name:             "Overhead Press",
		PrimaryMuscle:    "shoulders",
		SecondaryMuscles: []string{"triceps", "core"},
		Equipment:        "barbell",
		Difficulty:       "intermediate",
		Category:         "compound",
	},
	{
		ID:               "ex_barbell_row",
		Name:             "Barbell Row",
		PrimaryMuscle:    "back",
		SecondaryMuscles: []string{"biceps", "rear delts"},
		Equipment:        "barbell",
		Difficulty:       "intermediate",
		Category:         "compound",
	},
	{
		ID:               "ex_pullup",
		Name:             "Pull-Up",
		PrimaryMuscle:    "back",
		SecondaryMuscles: []string{"biceps"},
		Equipment:        "bodyweight",
		Difficulty:       "intermediate",
		Category:         "compound",
		Tips:             []string{"Use band assistance if needed."},
	},
	{
		ID:               "ex_romanian_deadlift",
		Name:             "Romanian Deadlift",
		PrimaryMuscle:    "hamstrings",
		SecondaryMuscles: []string{"glutes", "lower back"},
		Equipment:        "barbell",
		Difficulty:       "intermediate",
		Category:         "compound",
	},
	{
		ID:            "ex_leg_press",
		Name:          "Leg Press",
		PrimaryMuscle: "quads",
		Equipment:     "machine",
		Difficulty:    "beginner",
		Category:      "compound",
	},
	{
		ID:            "ex_lateral_raise",
		Name:          "Lateral Raise",
		PrimaryMuscle: "shoulders",
		Equipment:     "dumbbell",
		Difficulty:    "beginner",
		Category:      "isolation",
	},
	{
		ID:            "ex_barbell_curl",
		Name:          "Barbell Curl",
		PrimaryMuscle: "biceps",
		Equipment:     "barbell",
		Difficulty:    "beginner",
		Category:      "isolation",
	},
	{
		ID:            "ex_tricep_pushdown",
		Name:          "Tricep Pushdown",
		PrimaryMuscle: "triceps",
		Equipment:     "cable",
		Difficulty:    "beginner",
		Category:      "isolation",
	},
	{
		ID:            "ex_calf_raise",
		Name:          "Standing Calf Raise",
		PrimaryMuscle: "calves",
		Equipment:     "machine",
		Difficulty:    "beginner",
		Category:      "isolation",
	},
	{
		ID:            "ex_plank",
		Name:          "Plank",
		PrimaryMuscle: "core",
		Equipment:     "bodyweight",
		Difficulty:    "beginner",
		Category:      "isolation",
	},
	{
		ID:               "ex_incline_dumbbell_press",
		Name:             "Incline Dumbbell Press",
		PrimaryMuscle:    "chest",
		SecondaryMuscles: []string{"shoulders", "triceps"},
		Equipment:        "dumbbell",
		Difficulty:       "intermediate",
		Category:         "compound",
	},
	{
		ID:            "ex_lat_pulldown",
		Name:          "Lat Pulldown",
		PrimaryMuscle: "back",
		Equipment:     "cable",
		Difficulty:    "beginner",
		Category:      "compound",
	},
}

func notes(s string) *string { return &s }

var builtinTemplates = []models.Template{
	{
		ID:           "template_push",
		Name:         "Push Day",
		Description:  "Chest, shoulders, and triceps",
		Type:         "push",
		Difficulty:   "intermediate",
		MuscleGroups: []string{"chest", "shoulders", "triceps"},
		Exercises: []models.TemplateExercise{
			{ExerciseID: "ex_bench_press", Sets: 4, Reps: "6-8", RestSeconds: 180},
			{ExerciseID: "ex_incline_dumbbell_press", Sets: 3, Reps: "8-10", RestSeconds: 120},
			{ExerciseID: "ex_overhead_press", Sets: 3, Reps: "8-10", RestSeconds: 120},
			{ExerciseID: "ex_lateral_raise", Sets: 3, Reps: "12-15", RestSeconds: 60},
			{ExerciseID: "ex_tricep_pushdown", Sets: 3, Reps: "10-12", RestSeconds: 60},
		},
	},
	{
		ID:           "template_pull",
		Name:         "Pull Day",
		Description:  "Back and biceps",
		Type:         "pull",
		Difficulty:   "intermediate",
		MuscleGroups: []string{"back", "biceps"},
		Exercises: []models.TemplateExercise{
			{ExerciseID: "ex_deadlift", Sets: 4, Reps: "5", RestSeconds: 180},
			{ExerciseID: "ex_pullup", Sets: 4, Reps: "6-10", RestSeconds: 120, Notes: notes("Use assistance if needed")},
			{ExerciseID: "ex_barbell_row", Sets: 3, Reps: "8-10", RestSeconds: 120},
			{ExerciseID: "ex_lat_pulldown", Sets: 3, Reps: "10-12", RestSeconds: 90},
			{ExerciseID: "ex_barbell_curl", Sets: 3, Reps: "10-12", RestSeconds: 60},
		},
	},
	{
		ID:           "template_legs",
		Name:         "Leg Day",
		Description:  "Quads, hamstrings, glutes, and calves",
		Type:         "legs",
		Difficulty:   "intermediate",
		MuscleGroups: []string{"legs", "glutes", "hamstrings", "calves"},
		Exercises: []models.TemplateExercise{
			{ExerciseID: "ex_squat", Sets: 4, Reps: "6-8", RestSeconds: 180},
			{ExerciseID: "ex_romanian_deadlift", Sets: 3, Reps: "8-10", RestSeconds: 120},
			{ExerciseID: "ex_leg_press", Sets: 3, Reps: "10-12", RestSeconds: 120},
			{ExerciseID: "ex_calf_raise", Sets: 4, Reps: "12-15", RestSeconds: 60},
		},
	},
	{
		ID:           "template_full",
		Name:         "Full Body",
		Description:  "One compound lift per movement pattern",
		Type:         "full",
		Difficulty:   "beginner",
		MuscleGroups: []string{"chest", "back", "legs", "shoulders", "core"},
		Exercises: []models.TemplateExercise{
			{ExerciseID: "ex_squat", Sets: 3, Reps: "5", RestSeconds: 180},
			{ExerciseID: "ex_bench_press", Sets: 3, Reps: "5", RestSeconds: 180},
			{ExerciseID: "ex_barbell_row", Sets: 3, Reps: "8-10", RestSeconds: 120},
			{ExerciseID: "ex_plank", Sets: 3, Reps: "60s", RestSeconds: 60},
		},
	},
}

package models

// TemplateExercise is one planned exercise inside a workout template.
type TemplateExercise struct {
	ExerciseID  string  `json:"exerciseId"`
	Sets        int     `json:"sets"`
	Reps        string  `json:"reps"`
	RestSeconds int     `json:"restSeconds"`
	Notes       *string `json:"notes,omitempty"`
}

// Template is a read-only workout template from the catalog. The session
// engine only consumes templates; building and editing them is the
// program catalog's concern.
type Template struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Type         string             `json:"type"`
	Difficulty   string             `json:"difficulty"`
	MuscleGroups []string           `json:"muscleGroups"`
	Exercises    []TemplateExercise `json:"exercises"`
}

package models

// Test is one entry of the static performance-test catalog. The catalog is
// read-only reference data and is never persisted.
type Test struct {
	Id           string
	Icon         string
	TitleKey     string
	DescKey      string
	Instructions string
}

var catalog = []Test{
	{
		Id:           "pushups",
		Icon:         "armchair",
		TitleKey:     "test-pushups-title",
		DescKey:      "test-pushups-desc",
		Instructions: "Maintain straight posture. Chest to ground. Max reps in 60 seconds.",
	},
	{
		Id:           "40m-sprint",
		Icon:         "zap",
		TitleKey:     "test-sprint-title",
		DescKey:      "test-sprint-desc",
		Instructions: "Start from a standing position. Video must clearly show start and finish lines. Measures max speed.",
	},
	{
		Id:           "vertical-jump",
		Icon:         "chevrons-up",
		TitleKey:     "test-jump-title",
		DescKey:      "test-jump-desc",
		Instructions: "Use chalk on fingers. Mark standing reach. Mark jump height. Measures explosive power.",
	},
	{
		Id:           "plank",
		Icon:         "square",
		TitleKey:     "test-plank-title",
		DescKey:      "test-plank-desc",
		Instructions: "Maintain a straight body line from head to heels. Max hold time in seconds.",
	},
}

// Catalog returns the full test catalog in display order.
func Catalog() []Test {
	out := make([]Test, len(catalog))
	copy(out, catalog)
	return out
}

// TestById looks a catalog entry up by id.
func TestById(id string) (Test, bool) {
	for _, t := range catalog {
		if t.Id == id {
			return t, true
		}
	}
	return Test{}, false
}

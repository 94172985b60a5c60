package generation

import "fmt"

// TaskKey builds the stored identity string for one task within a path.
// Completion state is keyed by (day number, title); the literal form
// "day<N>-<title>" must stay stable between the write and read paths or
// stored progress silently stops matching.
func TaskKey(dayNumber int, title string) string {
	return fmt.Sprintf("day%d-%s", dayNumber, title)
}

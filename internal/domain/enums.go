package domain

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// ValidSkillLevels is the canonical set of accepted skill level strings.
var ValidSkillLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// Rating is a signed unit vote on a learning path: +1 helpful, -1 not helpful.
type Rating int

const (
	RatingHelpful    Rating = 1
	RatingNotHelpful Rating = -1
)

// Valid reports whether the rating is one of the two accepted values.
func (r Rating) Valid() bool {
	return r == RatingHelpful || r == RatingNotHelpful
}

package facts

import (
	"errors"
	"strings"
)

// Level is the ordered experience scale shared by person skills and offer
// requirements. The ordinal is what scoring compares; the tag is what the
// entity store and the fact file carry.
type Level int

const (
	LevelUnknown      Level = 0
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
	LevelExpert       Level = 4
)

var ErrUnknownLevel = errors.New("unknown experience level")

var levelTags = map[Level]string{
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelAdvanced:     "advanced",
	LevelExpert:       "expert",
}

var levelsByTag = map[string]Level{
	"beginner":     LevelBeginner,
	"intermediate": LevelIntermediate,
	"advanced":     LevelAdvanced,
	"expert":       LevelExpert,
}

func (l Level) Tag() string {
	if tag, ok := levelTags[l]; ok {
		return tag
	}
	return "unknown"
}

func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelExpert
}

// ParseLevel maps a stored tag to its ordinal. Unknown tags are rejected so
// malformed input never reaches the engine.
func ParseLevel(tag string) (Level, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if l, ok := levelsByTag[tag]; ok {
		return l, nil
	}
	return LevelUnknown, ErrUnknownLevel
}

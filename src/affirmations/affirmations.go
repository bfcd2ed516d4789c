// Package affirmations loads mood-keyed phrase tables and resolves them to
// the positive/negative lists for one run. The embedded table is parsed once
// and shared for the process lifetime; external files are parsed fresh per
// invocation.
package affirmations

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"mommy/src/picker"
)

//go:embed data/affirmations.json
var embeddedData []byte

// The fixed mood pair blended when mixing is enabled.
const (
	mixPrimary     = "ominous"
	mixSecondary   = "thirsty"
	mixProbability = 0.2
)

// MoodSet holds one mood's phrase lists.
type MoodSet struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// File is the parsed shape of an affirmations JSON document: a mood table
// plus top-level fallback arrays.
type File struct {
	Moods    map[string]MoodSet `json:"moods"`
	Positive []string           `json:"positive"`
	Negative []string           `json:"negative"`
}

// Set is the phrase lists resolved for one run. Embedded and external data
// both resolve to this shape, so callers never care where it came from.
type Set struct {
	Positive []string
	Negative []string
}

var embedded = sync.OnceValue(func() *File {
	f, err := ParseFile(embeddedData)
	if err != nil {
		panic("affirmations: embedded data is invalid: " + err.Error())
	}
	return f
})

// ParseFile parses an affirmations JSON document.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse affirmations: %w", err)
	}
	return &f, nil
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read affirmations file %s: %w", path, err)
	}
	return ParseFile(data)
}

// Resolve picks the phrase set for a mood: the exact key first, then the
// "chill" mood, then the top-level arrays.
func (f *File) Resolve(mood string) *Set {
	if ms, ok := f.Moods[mood]; ok {
		return &Set{Positive: ms.Positive, Negative: ms.Negative}
	}
	if ms, ok := f.Moods["chill"]; ok {
		return &Set{Positive: ms.Positive, Negative: ms.Negative}
	}
	return &Set{Positive: f.Positive, Negative: f.Negative}
}

// Mix copies the primary mood's lists and, with the given probability,
// appends one random secondary phrase to one random primary phrase in each
// list. Returns nil when either mood key is absent.
func (f *File) Mix(primary, secondary string, probability float64) *Set {
	primarySet, ok := f.Moods[primary]
	if !ok {
		return nil
	}
	secondarySet, ok := f.Moods[secondary]
	if !ok {
		return nil
	}

	set := &Set{
		Positive: slices.Clone(primarySet.Positive),
		Negative: slices.Clone(primarySet.Negative),
	}
	if picker.Chance(probability) {
		appendRandom(set.Positive, secondarySet.Positive)
		appendRandom(set.Negative, secondarySet.Negative)
	}
	return set
}

func appendRandom(dst, src []string) {
	if len(dst) == 0 || len(src) == 0 {
		return
	}
	extra, _ := picker.Pick(src)
	i := picker.Intn(len(dst))
	dst[i] += " " + extra
}

// Load resolves a mood against the embedded table.
func Load(mood string) *Set {
	return embedded().Resolve(mood)
}

// LoadCustom resolves a mood against an external JSON file. Returns nil when
// the file cannot be read or parsed.
func LoadCustom(path, mood string) *Set {
	f, err := loadFile(path)
	if err != nil {
		return nil
	}
	return f.Resolve(mood)
}

// LoadMixing resolves a mood against the embedded table, blending in the
// secondary mood when mixing is enabled and the ominous mood was selected.
func LoadMixing(mood string, mixing bool) *Set {
	if mixing && mood == mixPrimary {
		if set := embedded().Mix(mixPrimary, mixSecondary, mixProbability); set != nil {
			return set
		}
	}
	return Load(mood)
}

// LoadCustomMixing is LoadMixing against an external file. Returns nil when
// the file cannot be read or parsed.
func LoadCustomMixing(path, mood string, mixing bool) *Set {
	f, err := loadFile(path)
	if err != nil {
		return nil
	}
	if mixing && mood == mixPrimary {
		if set := f.Mix(mixPrimary, mixSecondary, mixProbability); set != nil {
			return set
		}
	}
	return f.Resolve(mood)
}

package resumes

import (
	"fmt"
	"strings"
)

// Record is a saved resume: the submitted form plus its identifier and save time.
// The JSON layout is shared by the HTTP API and the files under the data directory.
type Record struct {
	PersonalInfo map[string]any `json:"personalInfo"`
	Summary      string         `json:"summary"`
	Experience   []any          `json:"experience"`
	Education    []any          `json:"education"`
	Skills       []any          `json:"skills"`
	Projects     []any          `json:"projects"`
	ID           string         `json:"id"`
	SavedAt      string         `json:"saved_at"`
}

// Summary is the listing view of a record.
type Summary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	SavedAt string `json:"saved_at"`
}

const unknownName = "Unknown"

// DisplayName resolves personalInfo.name, or "Unknown" when it is absent or null.
func DisplayName(personalInfo map[string]any) string {
	raw, ok := personalInfo["name"]
	if !ok || raw == nil {
		return unknownName
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return strings.TrimSpace(fmt.Sprint(raw))
}

func (r Record) summary() Summary {
	return Summary{
		ID:      r.ID,
		Name:    DisplayName(r.PersonalInfo),
		SavedAt: r.SavedAt,
	}
}

// withDefaults replaces nil collections with empty ones so they serialize as {} and [].
func (r Record) withDefaults() Record {
	if r.PersonalInfo == nil {
		r.PersonalInfo = map[string]any{}
	}
	if r.Experience == nil {
		r.Experience = []any{}
	}
	if r.Education == nil {
		r.Education = []any{}
	}
	if r.Skills == nil {
		r.Skills = []any{}
	}
	if r.Projects == nil {
		r.Projects = []any{}
	}
	return r
}

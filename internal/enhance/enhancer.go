package enhance

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrEnhancement reports that no rewrite could be produced.
var ErrEnhancement = errors.New("enhancement failed")

const genericTemplate = "Enhanced version of: %s\n\nThis content has been optimized for professional impact with improved clarity, stronger action verbs, and quantifiable achievements."

// Enhancer rewrites the content of one resume section.
type Enhancer interface {
	Enhance(ctx context.Context, section, content string) (string, error)
}

// Canned returns stock rewrites for known sections and a templated echo for the rest.
type Canned struct {
	pick func(n int) int
}

// NewCanned constructs a Canned enhancer. pick must return a value in [0, n);
// nil selects uniformly at random.
func NewCanned(pick func(n int) int) *Canned {
	if pick == nil {
		pick = rand.IntN
	}
	return &Canned{pick: pick}
}

// Sections lists the section names that have stock rewrites.
func Sections() []string {
	return []string{"summary", "experience", "skills", "education", "personal_info"}
}

// Enhance ignores content for known sections.
func (e *Canned) Enhance(ctx context.Context, section, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnhancement, err)
	}

	options, ok := cannedResponses[normalizeSection(section)]
	if !ok {
		return fmt.Sprintf(genericTemplate, content), nil
	}

	pick := e.pick
	if pick == nil {
		pick = rand.IntN
	}
	i := pick(len(options))
	if i < 0 || i >= len(options) {
		return "", fmt.Errorf("%w: choice %d out of range for section %q", ErrEnhancement, i, section)
	}
	return options[i], nil
}

func normalizeSection(section string) string {
	return strings.ToLower(strings.TrimSpace(section))
}

// Package doctext cleans raw documentation strings (hover info, eldoc
// output) for display in a floating doc bubble. Cleanup is an ordered
// pipeline of independent rewrite passes; each pass is a pure text
// transform that leaves the input unchanged when its pattern is absent.
package doctext

import (
	"charm.land/lipgloss/v2"
)

// Styles carries the presentation annotations the passes attach to the
// display copy. The zero value renders plain text, which is what tests
// and non-ANSI hosts want.
type Styles struct {
	// Separator styles the full-width horizontal rule produced from
	// markdown separator markers.
	Separator lipgloss.Style

	// Heading styles text unwrapped from <hN> tag pairs.
	Heading lipgloss.Style

	// Gap styles the single blank line left behind by gap condensation.
	Gap lipgloss.Style
}

// DefaultStyles returns the standard doc bubble styling.
func DefaultStyles() Styles {
	return Styles{
		Separator: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Heading:   lipgloss.NewStyle().Bold(true),
		Gap:       lipgloss.NewStyle().Faint(true),
	}
}

// Env is the per-request render environment passed to every pass.
type Env struct {
	// Width is the render width in columns. Full-width rewrites (the
	// separator pass) use it; when 0 a default of 80 applies.
	Width int

	Styles Styles
}

const defaultWidth = 80

func (e Env) renderWidth() int {
	if e.Width > 0 {
		return e.Width
	}
	return defaultWidth
}

// Pass is one rewrite step in the pipeline. Apply must be pure and must
// tolerate input that contains none of its target pattern.
type Pass struct {
	Name  string
	Apply func(env Env, text string) string
}

// Normalizer applies an ordered list of passes. The list is fixed at
// construction but callers can rebuild it: hosts that need extra cleanup
// rules append their own passes, hosts that need fewer remove by name.
//
// A Normalizer is not safe for concurrent use, matching the one-request-
// at-a-time model of the surrounding display code.
type Normalizer struct {
	passes []Pass
}

// New returns a Normalizer running the given passes in order.
func New(passes ...Pass) *Normalizer {
	return &Normalizer{passes: passes}
}

// Default returns a Normalizer with the standard pass list.
func Default() *Normalizer {
	return New(DefaultPasses()...)
}

// Passes returns a copy of the current pass list.
func (n *Normalizer) Passes() []Pass {
	out := make([]Pass, len(n.passes))
	copy(out, n.passes)
	return out
}

// Append adds passes to the end of the pipeline.
func (n *Normalizer) Append(passes ...Pass) {
	n.passes = append(n.passes, passes...)
}

// Remove drops the first pass with the given name and reports whether
// one was found.
func (n *Normalizer) Remove(name string) bool {
	for i, p := range n.passes {
		if p.Name == name {
			n.passes = append(n.passes[:i], n.passes[i+1:]...)
			return true
		}
	}
	return false
}

// Normalize runs the pipeline over a display copy of text. The caller
// keeps the original; everything Normalize returns is presentation-only.
// Normalize never fails: unmatched patterns leave the text unchanged and
// an empty input yields an empty output.
func (n *Normalizer) Normalize(env Env, text string) string {
	for _, p := range n.passes {
		text = p.Apply(env, text)
	}
	return text
}

package doctext

import (
	"regexp"
	"strings"
)

// DefaultPasses returns the standard cleanup passes in their required
// order. Later passes see the output of earlier ones, so the order
// matters: separators are widened before gap condensation decides what
// counts as blank, and carriage returns are gone before the HTML pass
// inspects whole lines.
func DefaultPasses() []Pass {
	return []Pass{
		PrettifySeparators(),
		NormalizeSpaces(),
		StripLinkedImages(),
		StripCarriageReturns(),
		FontifyHTML(),
		CondenseGaps(),
	}
}

// separatorPattern matches a markdown horizontal rule on a line of its
// own: ---, ***, ___, or a run of box-drawing dashes.
var separatorPattern = regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|\*{3,}|_{3,}|─{3,})[ \t]*$`)

// PrettifySeparators restyles horizontal-rule markers so they span the
// full render width with strike-through emphasis instead of whatever
// width the doc author happened to type.
func PrettifySeparators() Pass {
	return Pass{
		Name: "prettify-separators",
		Apply: func(env Env, text string) string {
			rule := env.Styles.Separator.Render(strings.Repeat("─", env.renderWidth()))
			return separatorPattern.ReplaceAllString(text, rule)
		},
	}
}

// specialSpaces maps non-breaking and fixed-width space characters to a
// plain space so they render like one.
var specialSpaces = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u2007", " ", // figure space
	"\u202f", " ", // narrow no-break space
)

// NormalizeSpaces rewrites non-breaking space variants to ordinary
// spaces.
func NormalizeSpaces() Pass {
	return Pass{
		Name: "normalize-spaces",
		Apply: func(_ Env, text string) string {
			return specialSpaces.Replace(text)
		},
	}
}

// linkedImagePattern matches an image link nested inside a link:
// [![alt](img.png)](https://example.com).
var linkedImagePattern = regexp.MustCompile(`\[!\[[^\]]*\]\([^)]*\)\]\([^)]*\)`)

// StripLinkedImages removes linked-image markup entirely. Badges and
// similar constructs carry no information a text bubble can show.
func StripLinkedImages() Pass {
	return Pass{
		Name: "strip-linked-images",
		Apply: func(_ Env, text string) string {
			return linkedImagePattern.ReplaceAllString(text, "")
		},
	}
}

// StripCarriageReturns removes \r noise from CRLF doc sources.
func StripCarriageReturns() Pass {
	return Pass{
		Name: "strip-carriage-returns",
		Apply: func(_ Env, text string) string {
			return strings.ReplaceAll(text, "\r", "")
		},
	}
}

// headingPattern matches a line that is exactly one <hN>...</hN> pair.
// Go regexp has no backreferences, so the levels are captured separately
// and compared by the caller.
var headingPattern = regexp.MustCompile(`(?m)^[ \t]*<[hH]([1-6])>(.*)</[hH]([1-6])>[ \t]*$`)

// htmlEntities maps the entities that show up in hover docs to their
// literal characters.
var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
	"&amp;", "&",
)

// FontifyHTML handles the HTML fragments language servers leave in hover
// text: heading tag pairs lose their delimiters and render bold, and
// &lt; &gt; &nbsp; display as their literal characters. This all happens
// on the display copy only; the raw text the host holds is untouched.
func FontifyHTML() Pass {
	return Pass{
		Name: "fontify-html",
		Apply: func(env Env, text string) string {
			text = headingPattern.ReplaceAllStringFunc(text, func(match string) string {
				sub := headingPattern.FindStringSubmatch(match)
				if sub[1] != sub[3] {
					// Mismatched levels: not a heading pair.
					return match
				}
				return env.Styles.Heading.Render(sub[2])
			})
			return htmlEntities.Replace(text)
		},
	}
}

// DefaultGapMatchers is the union of line patterns treated as "gap"
// material by CondenseGaps: blank lines, whitespace-only lines, and bare
// code-fence markers. Doc sources in the wild rely on this exact union,
// so narrowing it changes rendering; hosts that need different behavior
// pass their own matcher set.
var DefaultGapMatchers = []*regexp.Regexp{
	regexp.MustCompile(`^[ \t]*$`),
	regexp.MustCompile("^```[0-9A-Za-z_-]*[ \t]*$"),
}

// CondenseGaps collapses runs of three or more gap lines to a single
// blank line styled at reduced emphasis. A run touching the start or end
// of the text collapses to nothing instead.
func CondenseGaps(matchers ...*regexp.Regexp) Pass {
	if len(matchers) == 0 {
		matchers = DefaultGapMatchers
	}
	isGap := func(line string) bool {
		for _, m := range matchers {
			if m.MatchString(line) {
				return true
			}
		}
		return false
	}
	return Pass{
		Name: "condense-gaps",
		Apply: func(env Env, text string) string {
			if text == "" {
				return ""
			}
			lines := strings.Split(text, "\n")
			out := make([]string, 0, len(lines))
			for i := 0; i < len(lines); {
				if !isGap(lines[i]) {
					out = append(out, lines[i])
					i++
					continue
				}
				j := i
				for j < len(lines) && isGap(lines[j]) {
					j++
				}
				switch {
				case j-i < 3:
					out = append(out, lines[i:j]...)
				case i == 0 || j == len(lines):
					// Leading or trailing gap: drop it.
				default:
					out = append(out, env.Styles.Gap.Render(""))
				}
				i = j
			}
			return strings.Join(out, "\n")
		},
	}
}

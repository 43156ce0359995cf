package pattern

import (
	"regexp"
	"strings"
)

// placeholderRegex finds single-letter placeholders such as {f} and {e}.
var placeholderRegex = regexp.MustCompile(`\{(\w)\}`)

const (
	stemExpr = `(.+)`
	extExpr  = `(\.\w+)`
)

// SegmentKind identifies what a template segment stands for.
type SegmentKind int

const (
	Literal SegmentKind = iota
	Stem
	Extension
)

// Segment is one piece of a parsed template.
type Segment struct {
	Kind SegmentKind
	Text string // only set for Literal
}

// Pattern is a compiled spec filename template.
type Pattern struct {
	template string
	segments []Segment
	matcher  *regexp.Regexp
	stemIdx  int
	extIdx   int
}

// Compile parses a template like "{f}.test{e}" into a Pattern.
// Placeholders other than {f} and {e} are dropped.
func Compile(template string) *Pattern {
	p := &Pattern{
		template: template,
		segments: parse(template),
	}
	p.buildMatcher()
	return p
}

// CompileAll compiles templates in order; the order is the lookup priority.
func CompileAll(templates []string) []*Pattern {
	patterns := make([]*Pattern, 0, len(templates))
	for _, t := range templates {
		patterns = append(patterns, Compile(t))
	}
	return patterns
}

func parse(template string) []Segment {
	var segments []Segment
	last := 0

	for _, loc := range placeholderRegex.FindAllStringSubmatchIndex(template, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Kind: Literal, Text: template[last:loc[0]]})
		}
		switch template[loc[2]:loc[3]] {
		case "f":
			segments = append(segments, Segment{Kind: Stem})
		case "e":
			segments = append(segments, Segment{Kind: Extension})
		}
		last = loc[1]
	}
	if last < len(template) {
		segments = append(segments, Segment{Kind: Literal, Text: template[last:]})
	}

	return segments
}

func (p *Pattern) buildMatcher() {
	var sb strings.Builder
	sb.WriteString("^")

	group := 0
	for _, seg := range p.segments {
		switch seg.Kind {
		case Literal:
			sb.WriteString(regexp.QuoteMeta(seg.Text))
		case Stem:
			group++
			if p.stemIdx == 0 {
				p.stemIdx = group
			}
			sb.WriteString(stemExpr)
		case Extension:
			group++
			if p.extIdx == 0 {
				p.extIdx = group
			}
			sb.WriteString(extExpr)
		}
	}

	sb.WriteString("$")
	p.matcher = regexp.MustCompile(sb.String())
}

// Template returns the source template.
func (p *Pattern) Template() string {
	return p.template
}

// Segments returns a copy of the parsed segments.
func (p *Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Matches reports whether filename is a spec filename for this pattern.
func (p *Pattern) Matches(filename string) bool {
	return p.matcher.MatchString(filename)
}

// Match extracts the stem and extension embedded in a spec filename.
// A placeholder missing from the template yields an empty value.
func (p *Pattern) Match(filename string) (stem, ext string, ok bool) {
	groups := p.matcher.FindStringSubmatch(filename)
	if groups == nil {
		return "", "", false
	}
	if p.stemIdx > 0 {
		stem = groups[p.stemIdx]
	}
	if p.extIdx > 0 {
		ext = groups[p.extIdx]
	}
	return stem, ext, true
}

// Generate produces the spec filename for a stem and extension.
func (p *Pattern) Generate(stem, ext string) string {
	var sb strings.Builder
	for _, seg := range p.segments {
		switch seg.Kind {
		case Literal:
			sb.WriteString(seg.Text)
		case Stem:
			sb.WriteString(stem)
		case Extension:
			sb.WriteString(ext)
		}
	}
	return sb.String()
}

// Classify returns the first pattern matching filename, or nil.
func Classify(patterns []*Pattern, filename string) *Pattern {
	for _, p := range patterns {
		if p.Matches(filename) {
			return p
		}
	}
	return nil
}

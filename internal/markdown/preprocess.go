package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultTabWidth is used when Preprocessor.TabWidth is zero.
const DefaultTabWidth = 4

const (
	lineBreak        = "<br>"
	nbsp             = "&nbsp;"
	ideographicSp    = "&#12288;"
	ideographicSpace = "\u3000"

	// placeholderRune is a private-use code point. Placeholders are built from
	// repeated copies so they cannot occur in the input.
	placeholderRune = "\uE000"
)

var (
	frontMatterPattern = regexp.MustCompile(`(?s)\A---\r?\n(?:.*?\r?\n)?---(?:\r?\n|\z)`)
	fencePattern       = regexp.MustCompile("(?s)```.*?(?:```|\\z)")

	headingPattern   = regexp.MustCompile(`^#{1,6}\s`)
	bulletPattern    = regexp.MustCompile(`^[*\-+]\s`)
	orderedPattern   = regexp.MustCompile(`^\d+\.\s`)
	rulePattern      = regexp.MustCompile(`^(---|\*\*\*|___)`)
	syntaxPrefixes   = []string{">", "|", "```"}
	syntaxLineChecks = []*regexp.Regexp{headingPattern, bulletPattern, orderedPattern, rulePattern}
)

// Preprocessor rewrites prose so the typed layout survives markdown
// rendering. Front matter and fenced code blocks pass through untouched.
//
// Lines that carry markdown structure (headings, list items, quotes, tables,
// rules, fences) are kept as written. Every line terminator after a prose
// line becomes a <br>. Leading whitespace and runs of two or more spaces
// become &nbsp; entities, one per character; a tab counts as TabWidth spaces.
// Inline code spans inside prose are not rewritten.
type Preprocessor struct {
	// TabWidth is the number of &nbsp; entities emitted per tab. Zero means 4.
	TabWidth int
}

// Preprocess rewrites document with the default Preprocessor.
func Preprocess(document string) string {
	return Preprocessor{}.Preprocess(document)
}

// Preprocess implements interfaces.SourcePreprocessor.
func (p Preprocessor) Preprocess(document string) string {
	if document == "" {
		return ""
	}

	frontMatter := frontMatterPattern.FindString(document)
	body := document[len(frontMatter):]
	if body == "" {
		return document
	}

	protected := protectFences(body)
	rewritten := p.rewrite(protected.text, protected.isPlaceholderLine)
	return frontMatter + protected.restore(rewritten)
}

type protectedBody struct {
	text   string
	marker string
	blocks map[string]string
}

// protectFences swaps every fenced block for a placeholder and normalises CRLF
// in the remaining text.
func protectFences(body string) protectedBody {
	marker := placeholderRune
	for strings.Contains(body, marker) {
		marker += placeholderRune
	}

	blocks := map[string]string{}
	var b strings.Builder
	last := 0
	for idx, loc := range fencePattern.FindAllStringIndex(body, -1) {
		b.WriteString(normaliseNewlines(body[last:loc[0]]))
		token := marker + strconv.Itoa(idx) + marker
		blocks[token] = body[loc[0]:loc[1]]
		b.WriteString(token)
		last = loc[1]
	}
	b.WriteString(normaliseNewlines(body[last:]))

	return protectedBody{text: b.String(), marker: marker, blocks: blocks}
}

func (p protectedBody) restore(text string) string {
	if len(p.blocks) == 0 {
		return text
	}
	pairs := make([]string, 0, len(p.blocks)*2)
	for token, block := range p.blocks {
		pairs = append(pairs, token, block)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func (p protectedBody) isPlaceholderLine(line string) bool {
	return len(p.blocks) > 0 && strings.Contains(line, p.marker)
}

func normaliseNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

type lineKind int

const (
	kindNone lineKind = iota
	kindProse
	kindSyntax
)

func (p Preprocessor) rewrite(text string, isPlaceholder func(string) bool) string {
	trailingNewline := strings.HasSuffix(text, "\n")
	if trailingNewline {
		text = text[:len(text)-1]
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prev := kindNone
	var blanks []string

	for idx, line := range lines {
		if isBlankLine(line) {
			blanks = append(blanks, line)
			continue
		}

		kind := kindProse
		if isSyntaxLine(line) || isPlaceholder(line) {
			kind = kindSyntax
		}

		prefix := ""
		if n := len(blanks); n > 0 {
			switch {
			case prev == kindNone:
				out = append(out, blanks...)
			case kind == kindProse && prev == kindProse:
				prefix = strings.Repeat(lineBreak, n)
			case kind == kindProse:
				out = append(out, "")
				prefix = strings.Repeat(lineBreak, n-1)
			default:
				out = append(out, "")
			}
			blanks = blanks[:0]
		}

		if kind == kindSyntax {
			out = append(out, line)
		} else {
			rewritten := prefix + p.rewriteProse(line)
			if idx < len(lines)-1 {
				rewritten += lineBreak
			}
			out = append(out, rewritten)
		}
		prev = kind
	}

	if n := len(blanks); n > 0 {
		if prev == kindProse {
			out = append(out, strings.Repeat(lineBreak, n))
		} else {
			out = append(out, blanks...)
		}
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isSyntaxLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, prefix := range syntaxPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	for _, pattern := range syntaxLineChecks {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func (p Preprocessor) tab() string {
	width := p.TabWidth
	if width <= 0 {
		width = DefaultTabWidth
	}
	return strings.Repeat(nbsp, width)
}

// rewriteProse converts the leading indentation and the interior whitespace of
// a single prose line.
func (p Preprocessor) rewriteProse(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 16)

	rest := line
indent:
	for rest != "" {
		switch {
		case rest[0] == ' ':
			b.WriteString(nbsp)
			rest = rest[1:]
		case rest[0] == '\t':
			b.WriteString(p.tab())
			rest = rest[1:]
		case strings.HasPrefix(rest, ideographicSpace):
			b.WriteString(ideographicSp)
			rest = rest[len(ideographicSpace):]
		default:
			break indent
		}
	}

	p.rewriteInline(&b, rest)
	return b.String()
}

func (p Preprocessor) rewriteInline(b *strings.Builder, text string) {
	for i := 0; i < len(text); {
		switch text[i] {
		case '`':
			run := countRun(text, i, '`')
			if end := closingBackticks(text, i+run, run); end >= 0 {
				b.WriteString(text[i:end])
				i = end
				continue
			}
			b.WriteString(text[i : i+run])
			i += run
		case ' ':
			run := countRun(text, i, ' ')
			if run == 1 {
				b.WriteByte(' ')
			} else {
				b.WriteString(strings.Repeat(nbsp, run))
			}
			i += run
		case '\t':
			b.WriteString(p.tab())
			i++
		default:
			b.WriteByte(text[i])
			i++
		}
	}
}

func countRun(text string, start int, ch byte) int {
	n := 0
	for start+n < len(text) && text[start+n] == ch {
		n++
	}
	return n
}

// closingBackticks returns the index just past the first backtick run of
// exactly size characters at or after from, or -1.
func closingBackticks(text string, from, size int) int {
	for i := from; i < len(text); {
		if text[i] != '`' {
			i++
			continue
		}
		run := countRun(text, i, '`')
		if run == size {
			return i + run
		}
		i += run
	}
	return -1
}

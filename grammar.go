package indentex

import (
	"fmt"
	"io"
	"strings"
)

// ProcessLine classifies one line. Hash-directives are tried first, item-directives only when listLikeActive is set,
// everything else is returned verbatim.
func ProcessLine(line string, listLikeActive bool) Hashline {
	if h, ok := parseHashline(line); ok {
		return h
	}

	if listLikeActive {
		if h, ok := parseItemline(line); ok {
			return h
		}
	}

	return PlainLine(line)
}

// parseHashline parses "# name opts: args % comment" lines
func parseHashline(line string) (Hashline, bool) {
	s := newScanner(line)

	ws := s.spaces()

	if !s.expect('#') || !s.expect(' ') {
		return nil, false
	}

	name := s.until(":%([{ \t", ":")
	if name == "" {
		return nil, false
	}

	opts := s.until(":%", ":%")

	if !s.expect(':') {
		return nil, false
	}

	args := s.until("%", "%")
	comment := strings.TrimSpace(s.rest())

	name = strings.TrimSpace(name)
	opts = escapePercent(strings.TrimSpace(opts))
	args = escapePercent(strings.TrimSpace(args))

	// no arguments means environment
	if args == "" {
		return OpenEnv{Environment{
			IndentDepth: len(ws),
			Name:        name,
			Opts:        opts,
			Comment:     comment,
			ListLike:    IsListLike(name),
		}}, true
	}

	if comment != "" {
		return PlainLine(fmt.Sprintf("%s\\%s%s{%s} %s", ws, name, opts, args, comment)), true
	}

	return PlainLine(fmt.Sprintf("%s\\%s%s{%s}", ws, name, opts, args)), true
}

// parseItemline parses "* item" lines, only the first asterisk is a marker
func parseItemline(line string) (Hashline, bool) {
	s := newScanner(line)

	ws := s.whitespaces()

	if !s.expect('*') {
		return nil, false
	}

	item := strings.TrimSpace(s.rest())
	if item == "" {
		return PlainLine(ws + "\\item"), true
	}

	return PlainLine(ws + "\\item " + item), true
}

// escapePercent restores escaping of % which starts comment in LaTeX
func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "\\%")
}

type scanner struct {
	r io.RuneScanner
}

func newScanner(line string) *scanner {
	return &scanner{r: strings.NewReader(line)}
}

// spaces reads sequence of space characters
func (s *scanner) spaces() string {
	return s.while(func(r rune) bool { return r == ' ' })
}

// whitespaces reads sequence of spaces and tabs
func (s *scanner) whitespaces() string {
	return s.while(func(r rune) bool { return r == ' ' || r == '\t' })
}

func (s *scanner) while(accept func(rune) bool) string {
	var runes []rune
	for {
		read, _, err := s.r.ReadRune()
		if err != nil {
			return string(runes)
		}

		if !accept(read) {
			_ = s.r.UnreadRune()
			return string(runes)
		}

		runes = append(runes, read)
	}
}

// expect consumes next symbol if it is "e"
func (s *scanner) expect(e rune) bool {
	read, _, err := s.r.ReadRune()
	if err != nil {
		return false
	}

	if read != e {
		_ = s.r.UnreadRune()
		return false
	}

	return true
}

// until reads runes up to the first one in stop. Backslash followed by a rune from escapable is decoded to that rune,
// any other backslash is kept as is.
func (s *scanner) until(stop, escapable string) string {
	var runes []rune
	for {
		read, _, err := s.r.ReadRune()
		if err != nil {
			return string(runes)
		}

		if read == '\\' {
			next, _, err := s.r.ReadRune()
			if err == nil && strings.ContainsRune(escapable, next) {
				runes = append(runes, next)
				continue
			}

			if err == nil {
				_ = s.r.UnreadRune()
			}
		}

		if read != '\\' && strings.ContainsRune(stop, read) {
			_ = s.r.UnreadRune()
			return string(runes)
		}

		runes = append(runes, read)
	}
}

// rest reads everything up to the end of line
func (s *scanner) rest() string {
	var b strings.Builder
	for {
		read, _, err := s.r.ReadRune()
		if err != nil {
			return b.String()
		}

		b.WriteRune(read)
	}
}

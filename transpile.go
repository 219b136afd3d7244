package indentex

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const lineSeparator = "\n"

// notice is prepended to generated files when Options.PrependDoNotEditNotice is set
const notice = "% ============================================================== %\n" +
	"%                                                                %\n" +
	"% THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY. %\n" +
	"%                                                                %\n" +
	"% ============================================================== %\n"

type Options struct {
	FlattenOutput          bool // strip leading whitespace from every output line
	PrependDoNotEditNotice bool // start output with autogenerated file notice
}

// Transpile converts lines of indentex source into LaTeX.
func Transpile(lines []string, opts Options) string {
	var b strings.Builder

	// LaTeX is usually somewhat longer than its source
	size := len(lines)
	for _, line := range lines {
		size += len(line)
	}

	b.Grow(size + size/2)

	// strings.Builder never fails to write
	_ = TranspileTo(&b, lines, opts)

	return b.String()
}

// TranspileTo converts lines of indentex source into LaTeX and writes result to w.
func TranspileTo(w io.Writer, lines []string, opts Options) error {
	t := &transpiler{w: w, flatten: opts.FlattenOutput}

	if opts.PrependDoNotEditNotice {
		if _, err := fmt.Fprint(w, notice); err != nil {
			return err
		}
	}

	indents := ScanIndents(lines)

	for i, line := range lines {
		if err := t.line(line); err != nil {
			return err
		}

		if err := t.close(indents[i+1]); err != nil {
			return err
		}
	}

	return nil
}

type transpiler struct {
	w       io.Writer
	flatten bool
	stack   []Environment
}

// listLike returns true if the innermost open environment is list-like
func (t *transpiler) listLike() bool {
	return len(t.stack) > 0 && t.stack[len(t.stack)-1].ListLike
}

func (t *transpiler) line(line string) error {
	switch h := ProcessLine(line, t.listLike()).(type) {
	case OpenEnv:
		t.stack = append(t.stack, h.Environment)
		return t.emit(h.Begin())
	case PlainLine:
		return t.emit(string(h))
	default:
		return fmt.Errorf("unexpected hashline %T", h)
	}
}

// close ends every open environment which is indented at least as deep as the next line
func (t *transpiler) close(next int) error {
	for len(t.stack) > 0 {
		top := t.stack[len(t.stack)-1]
		if top.IndentDepth < next {
			return nil
		}

		t.stack = t.stack[:len(t.stack)-1]

		if err := t.emit(top.End()); err != nil {
			return err
		}
	}

	return nil
}

func (t *transpiler) emit(fragment string) error {
	if t.flatten {
		fragment = strings.TrimLeftFunc(fragment, unicode.IsSpace)
	}

	_, err := fmt.Fprint(t.w, fragment, lineSeparator)
	return err
}

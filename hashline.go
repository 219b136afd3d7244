package indentex

import "strings"

// Hashline is the result of classifying one input line. It is either PlainLine or OpenEnv.
type Hashline interface {
	hashline()
}

// PlainLine is a line of LaTeX ready to be written out.
type PlainLine string

// OpenEnv opens a new environment, its body is indented below the opening line.
type OpenEnv struct {
	Environment
}

func (PlainLine) hashline() {}
func (OpenEnv) hashline()   {}

// Environment describes environment opened by a hash-directive without arguments.
type Environment struct {
	IndentDepth int    // number of leading whitespace characters on the opening line
	Name        string // environment name, eg. itemize
	Opts        string // options as written, eg. [x = 2 cm]
	Comment     string // trailing comment including leading %
	ListLike    bool   // body lines starting with * become \item
}

// Begin renders opening tag: \begin{name}opts % comment
func (e Environment) Begin() string {
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", e.IndentDepth))
	b.WriteString("\\begin{")
	b.WriteString(e.Name)
	b.WriteString("}")
	b.WriteString(e.Opts)

	if e.Comment != "" {
		b.WriteString(" ")
		b.WriteString(e.Comment)
	}

	return b.String()
}

// End renders closing tag: \end{name}
func (e Environment) End() string {
	return strings.Repeat(" ", e.IndentDepth) + "\\end{" + e.Name + "}"
}

// IsListLike returns true for environments which contain \item entries. Only exact names match, so itemize* is not list-like.
func IsListLike(name string) bool {
	switch strings.TrimSpace(name) {
	case "itemize", "enumerate", "description":
		return true
	default:
		return false
	}
}

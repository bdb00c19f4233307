package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// stderrConsole writes status messages to stderr, keeping stdout free for
// the rendered report.
type stderrConsole struct {
	w        io.Writer
	prefixes []string
}

func NewStdErrConsole() Console {
	return &stderrConsole{w: os.Stderr}
}

func NewWriterConsole(w io.Writer) Console {
	return &stderrConsole{w: w}
}

func (c *stderrConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	for _, prefix := range c.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	fmt.Fprint(c.w, builder.String())
}

func (c *stderrConsole) PushPrefix(format string, a ...any) {
	c.prefixes = append(c.prefixes, fmt.Sprintf(format, a...))
}

func (c *stderrConsole) PopPrefix() {
	c.prefixes = c.prefixes[:len(c.prefixes)-1]
}

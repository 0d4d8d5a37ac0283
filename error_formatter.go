package climb

import (
	"bytes"
	"fmt"
	"io"
)

// ColorFormatter writes to w like fmt.Fprintf, in a color appropriate for
// errors. color.New(color.FgRed).Fprintf satisfies it.
type ColorFormatter func(w io.Writer, format string, a ...interface{}) (n int, err error)

// ErrorFormatter renders errors for terminal display.
type ErrorFormatter struct {
	color ColorFormatter
}

// SetColorFormatter sets the function used to color error text. Without one
// the output is plain.
func (ef *ErrorFormatter) SetColorFormatter(color ColorFormatter) {
	ef.color = color
}

// Format renders err, coloring syntax errors when a color formatter was set.
func (ef *ErrorFormatter) Format(err error) string {
	switch err := err.(type) {
	case SyntaxError:
		return ef.formatSyntax(&err)
	default:
		return ef.formatInternal(err)
	}
}

func (ef *ErrorFormatter) formatSyntax(err *SyntaxError) string {
	var buf bytes.Buffer
	ef.writeColored(&buf, "syntax error (%v): %s\n", err.Kind, err.Error())
	return buf.String()
}

func (ef *ErrorFormatter) formatInternal(err error) string {
	var buf bytes.Buffer
	ef.writeColored(&buf, "error: %s\n", err.Error())
	return buf.String()
}

func (ef *ErrorFormatter) writeColored(buf *bytes.Buffer, format string, a ...interface{}) {
	if ef.color != nil {
		_, _ = ef.color(buf, format, a...)
		return
	}
	fmt.Fprintf(buf, format, a...)
}

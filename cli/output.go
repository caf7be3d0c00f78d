package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Output defines a uniform interface to write query results to some stream,
// kept separate from the structured logger used for diagnostics: result
// text goes to Output, warnings and errors go through logrus.
type Output interface {
	Print(text string) (int, error)
	Println(text string) (int, error)
	Printf(format string, args ...interface{}) (int, error)
	Printfln(format string, args ...interface{}) (int, error)
}

// PlainOutput is an Output device that writes data in a raw format.
type PlainOutput struct {
	Device io.Writer
}

// NewPlainOutput wraps w as a PlainOutput.
func NewPlainOutput(w io.Writer) *PlainOutput {
	return &PlainOutput{Device: w}
}

// Print writes text to this output stream.
func (o *PlainOutput) Print(text string) (int, error) {
	return o.Device.Write([]byte(text))
}

// Println writes text and a line break to this output stream.
func (o *PlainOutput) Println(text string) (int, error) {
	n1, err1 := o.Device.Write([]byte(text))
	if err1 != nil {
		return n1, err1
	}
	n2, err2 := o.Device.Write([]byte{'\n'})
	return n1 + n2, err2
}

// Printf writes text generated by applying args to format.
func (o *PlainOutput) Printf(format string, args ...interface{}) (int, error) {
	return o.Device.Write([]byte(fmt.Sprintf(format, args...)))
}

// Printfln writes text generated by applying args to format, plus a line break.
func (o *PlainOutput) Printfln(format string, args ...interface{}) (int, error) {
	return o.Device.Write([]byte(fmt.Sprintf(format+"\n", args...)))
}

// logrusObserver adapts a *logrus.Logger to locate.Observer, so decoding
// diagnostics (invalid UTF-8 entries, etc.) flow through the same
// structured logger as the rest of the CLI.
type logrusObserver struct {
	log *logrus.Logger
}

// Warnf implements locate.Observer.
func (o logrusObserver) Warnf(format string, args ...interface{}) {
	o.log.Warnf(format, args...)
}

package report

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code, the scanner and the parser only ever see this interface.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// Collector keeps every reported error so the caller can inspect them after
// scanning and parsing finished.
type Collector struct {
	errs []error
}

func NewCollector() *Collector {
	return &Collector{make([]error, 0)}
}

func (c *Collector) Report(err error) {
	c.errs = append(c.errs, err)
}

func (c *Collector) HadError() bool {
	return len(c.errs) > 0
}

func (c *Collector) Reset() {
	c.errs = c.errs[:0]
}

// Errors returns the reported errors in the order they were reported.
func (c *Collector) Errors() []error {
	errs := make([]error, len(c.errs))
	copy(errs, c.errs)
	return errs
}

// Err joins all reported errors, it is nil when nothing was reported.
func (c *Collector) Err() error {
	return errors.Join(c.errs...)
}

// Package profiler times repeated operations and prints a summary.
package profiler

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
)

var (
	colorRule  = color.Style{color.FgGray}
	colorName  = color.Style{color.FgCyan, color.OpBold}
	colorLabel = color.Style{color.FgBlue}
	colorValue = color.Style{color.FgGreen, color.OpBold}
)

const rule = "-----------------------------------------------------"

// Stats summarizes a counter.
type Stats struct {
	Count   int
	Latest  time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Counter accumulates durations under a name.
type Counter struct {
	name  string
	now   func() time.Time
	count int
	total time.Duration
	last  time.Duration
	min   time.Duration
	max   time.Duration
}

// New creates a counter using the wall clock.
func New(name string) *Counter {
	return newCounter(name, time.Now)
}

func newCounter(name string, now func() time.Time) *Counter {
	return &Counter{name: name, now: now}
}

func (c *Counter) Name() string {
	return c.name
}

// Profile runs fn and records how long it took.
func (c *Counter) Profile(fn func()) time.Duration {
	start := c.now()
	fn()
	d := c.now().Sub(start)
	c.Add(d)
	return d
}

// Add records one measurement.
func (c *Counter) Add(d time.Duration) {
	if c.count == 0 || d < c.min {
		c.min = d
	}
	if d > c.max {
		c.max = d
	}
	c.count++
	c.total += d
	c.last = d
}

// Reset forgets every measurement.
func (c *Counter) Reset() {
	c.count = 0
	c.total = 0
	c.last = 0
	c.min = 0
	c.max = 0
}

// Report returns the current statistics.
func (c *Counter) Report() Stats {
	s := Stats{
		Count:  c.count,
		Latest: c.last,
		Min:    c.min,
		Max:    c.max,
	}
	if c.count > 0 {
		s.Average = c.total / time.Duration(c.count)
	}
	return s
}

// PrettyPrint writes the statistics as a framed block.
func (c *Counter) PrettyPrint(w io.Writer) error {
	s := c.Report()
	lines := []struct {
		label string
		value string
	}{
		{"Number of Calls", fmt.Sprint(s.Count)},
		{"Latest  OP Time", s.Latest.String()},
		{"Average OP Time", s.Average.String()},
		{"Maximum OP Time", s.Max.String()},
		{"Minimum OP Time", s.Min.String()},
	}

	name := colorName.Sprint(c.name)
	if _, err := fmt.Fprintf(w, "%s %s\n", name, colorRule.Sprint(rule)); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", name, colorLabel.Sprint(l.label), colorValue.Sprint(l.value)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s %s\n", name, colorRule.Sprint(rule))
	return err
}

// Package numbering formats and parses structured quote reference numbers
// built from a prefix, an optional separator, a date part and a zero-padded
// sequence (e.g. "DEVIS-202608-0012").
package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

// DateMode selects how much of the issue date is embedded in the reference.
type DateMode string

const (
	DateModeYearMonth DateMode = "year+month" // YYYYMM
	DateModeYear      DateMode = "year"       // YYYY
)

// Config is the editable description of a reference number. Month is ignored
// (and normalized to 0 by Parse) when DateMode is DateModeYear.
type Config struct {
	Prefix    string
	Separator string // "-", "/" or ""
	DateMode  DateMode
	Year      int
	Month     int
	Length    int // zero-padded width of the sequence part
	Sequence  int
}

// DefaultConfig returns the configuration used as the fallback when parsing
// malformed references.
func DefaultConfig() Config {
	return Config{
		Prefix:    "DEVIS",
		Separator: "-",
		DateMode:  DateModeYearMonth,
		Length:    4,
		Sequence:  1,
	}
}

// Format renders c as prefix + separator + date part + separator + zero-padded
// sequence, e.g. "DEV/201907/0045".
func Format(c Config) string {
	return c.Prefix + c.Separator + c.datePart() + c.Separator + c.sequencePart()
}

func (c Config) datePart() string {
	if c.DateMode == DateModeYear {
		return fmt.Sprintf("%04d", c.Year)
	}
	return fmt.Sprintf("%04d%02d", c.Year, c.Month)
}

func (c Config) sequencePart() string {
	return fmt.Sprintf("%0*d", c.Length, c.Sequence)
}

// Parse recovers a Config from an existing reference string. It is a
// best-effort, display-only parse and never fails: input without a separator
// character, or with fewer than two tokens, yields DefaultConfig fields with
// the whole input as prefix. A non-numeric sequence token is coerced to 0.
//
// For any config with a non-empty separator, a prefix free of separator
// characters and a sequence of exactly Length digits,
// Parse(Format(c)) == c.
func Parse(s string) Config {
	cfg := DefaultConfig()
	sep := ""
	switch {
	case strings.Contains(s, "-"):
		sep = "-"
	case strings.Contains(s, "/"):
		sep = "/"
	}
	if sep == "" {
		cfg.Prefix = s
		cfg.Separator = ""
		return cfg
	}
	parts := strings.Split(s, sep)
	cfg.Separator = sep
	cfg.Prefix = parts[0]
	last := parts[len(parts)-1]
	cfg.Length = len(last)
	n, err := strconv.Atoi(last)
	if err != nil || n < 0 {
		n = 0
	}
	cfg.Sequence = n
	if len(parts) > 2 {
		cfg.applyDatePart(parts[1])
	}
	return cfg
}

// SequenceIn reports the sequence encoded in s, assuming s was produced by
// Format with c's prefix, separator and date window. Unlike Parse it does not
// depend on separators being present: the head of the reference is rebuilt
// from c and stripped, so empty-separator schemes still recover their
// sequences. The second result is false when s does not belong to that
// window.
func SequenceIn(s string, c Config) (int, bool) {
	head := c.Prefix + c.Separator + c.datePart() + c.Separator
	rest, ok := strings.CutPrefix(s, head)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// applyDatePart interprets a middle token: six digits mean year+month, four
// mean year only. Other widths leave the defaults untouched.
func (c *Config) applyDatePart(part string) {
	switch len(part) {
	case 6:
		c.DateMode = DateModeYearMonth
		if y, err := strconv.Atoi(part[:4]); err == nil {
			c.Year = y
		}
		if m, err := strconv.Atoi(part[4:]); err == nil {
			c.Month = m
		}
	case 4:
		c.DateMode = DateModeYear
		c.Month = 0
		if y, err := strconv.Atoi(part); err == nil {
			c.Year = y
		}
	}
}

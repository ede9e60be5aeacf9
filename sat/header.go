package sat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ACIS versions exported by BricsCAD:
//
//	R2000/AC1015: 400,   "ACIS 4.00 NT",   text length has no "@" prefix
//	R2004/AC1018: 20800, "ACIS 208.00 NT", text length has "@" prefix
//	R2007/AC1021: 20800, "ACIS 208.00 NT", text length has "@" prefix
//	R2010/AC1024: 20800, "ACIS 208.00 NT", text length has "@" prefix
var acisVersions = map[int]string{
	400:   "ACIS 4.00 NT",
	20800: "ACIS 208.00 NT",
}

// Header models the 3-line SAT file preamble.
type Header struct {
	Version      int
	NumRecords   int // advisory, often 0 or stale
	NumEntities  int
	HistoryFlag  int // 1 if history data has been saved
	ProductID    string
	ACISVersion  string
	CreationDate time.Time
	UnitsInMM    float64
}

// NewHeader returns a header with the default version 400 values.
func NewHeader() Header {
	return Header{
		Version:      400,
		ProductID:    "cadwire ACIS Builder",
		ACISVersion:  acisVersions[400],
		CreationDate: time.Now(),
		UnitsInMM:    1.0,
	}
}

// SetVersion sets the numeric version together with its version string.
// Version and ACISVersion stay coupled; unknown codes fail with
// ErrInvalidVersion and leave the header unchanged.
func (h *Header) SetVersion(version int) error {
	s, ok := acisVersions[version]
	if !ok {
		return errors.Wrapf(ErrInvalidVersion, "%d", version)
	}
	h.Version = version
	h.ACISVersion = s
	return nil
}

// atPrefixedLengths reports whether header string length prefixes carry the
// "@" marker.
func (h *Header) atPrefixedLengths() bool { return h.Version > 400 }

// hasEntityIDs reports whether entity records carry an explicit id column.
func (h *Header) hasEntityIDs() bool { return h.Version >= 700 }

// Dump encodes the header as its three SAT lines, recomputing the string
// length prefixes from the current field values.
func (h *Header) Dump() []string {
	return []string{
		fmt.Sprintf("%d %d %d %d ", h.Version, h.NumRecords, h.NumEntities, h.HistoryFlag),
		h.headerStr(),
		// The last two numbers are fixed protocol constants (resolution
		// and tolerance), not round-tripped from input.
		strconv.FormatFloat(h.UnitsInMM, 'g', -1, 64) + " 9.9999999999999995e-007 1e-010 ",
	}
}

func (h *Header) headerStr() string {
	var b strings.Builder
	date := h.CreationDate.Format(time.ANSIC)
	for _, s := range []string{h.ProductID, h.ACISVersion, date} {
		if h.atPrefixedLengths() {
			b.WriteByte('@')
		}
		b.WriteString(strconv.Itoa(utf8.RuneCountInString(s)))
		b.WriteByte(' ')
		b.WriteString(s)
		b.WriteByte(' ')
	}
	return b.String()
}

// parseHeader decodes the first three lines and returns the remaining
// lines. Only the version field is mandatory; counts, units and the
// creation date default silently when malformed, because nonstandard
// producers are common.
func parseHeader(lines []string) (Header, []string, error) {
	h := NewHeader()
	if len(lines) < 3 {
		return h, nil, errors.Newf("SAT header requires 3 lines, got %d", len(lines))
	}

	tokens := strings.Fields(lines[0])
	if len(tokens) == 0 {
		return h, nil, errors.New("empty SAT version line")
	}
	version, err := strconv.Atoi(tokens[0])
	if err != nil {
		return h, nil, errors.Wrapf(err, "SAT version field %q", tokens[0])
	}
	h.Version = version
	for i, field := range []*int{&h.NumRecords, &h.NumEntities, &h.HistoryFlag} {
		if i+1 >= len(tokens) {
			break
		}
		n, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			break
		}
		*field = n
	}

	strs := splitHeaderStr(lines[1])
	if len(strs) > 0 {
		h.ProductID = strs[0]
	}
	if len(strs) > 1 {
		h.ACISVersion = strs[1]
	}
	if len(strs) > 2 {
		// e.g. "Sat Jan  1 10:00:00 2022"
		if date, err := time.Parse(time.ANSIC, strs[2]); err == nil {
			h.CreationDate = date
		}
	}

	tokens = strings.Fields(lines[2])
	if len(tokens) > 0 {
		if units, err := strconv.ParseFloat(tokens[0], 64); err == nil {
			h.UnitsInMM = units
		}
	}
	return h, lines[3:], nil
}

// splitHeaderStr extracts the length-prefixed strings from header line 1.
// Both dialects are accepted: a bare length prefix (version <= 400) and an
// "@"-marked one (version > 400). The strings may contain embedded spaces,
// so exactly the prefixed number of characters is collected.
func splitHeaderStr(s string) []string {
	var strs []string
	var num, token []rune
	collect := 0
	for _, c := range strings.TrimRight(s, " \t\r\n") {
		switch {
		case collect > 0:
			token = append(token, c)
			collect--
			if collect == 0 {
				strs = append(strs, string(token))
				token = token[:0]
			}
		case c == '@':
			// length marker of the version > 400 dialect
		case c >= '0' && c <= '9':
			num = append(num, c)
		case c == ' ' && len(num) > 0:
			collect, _ = strconv.Atoi(string(num))
			num = num[:0]
		}
	}
	return strs
}

package reconcile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sequence generates the next human-readable document number in a
// family by scanning the existing values for its pattern, taking the
// maximum trailing integer and incrementing. Serials are two digits,
// zero-left-padded, widening naturally past 99.
//
// Generation is a pure function of the values passed in, which means
// two writers working from the same snapshot can still collide; the
// store's unique index on the document number is what actually rejects
// the duplicate (surfaced as ErrDuplicateSequence). The format itself
// is load-bearing and kept as-is.
type Sequence struct {
	prefix  string
	pattern *regexp.Regexp
}

// NewSequence builds a sequence for a prefix. The serial is extracted
// by matching prefix followed by digits anywhere in the value.
func NewSequence(prefix string) Sequence {
	return Sequence{
		prefix:  prefix,
		pattern: regexp.MustCompile(regexp.QuoteMeta(prefix) + `(\d+)`),
	}
}

// Well-known document number families.
var (
	IndentSeq       = NewSequence("S-8/25-")
	VendorIssueSeq  = NewSequence("ISS-")
	InHouseIssueSeq = NewSequence("IH-ISS-")
	RequestSeq      = NewSequence("Req-No-")
	DeliveryChitSeq = NewSequence("Vendor/")
)

// Next returns the next number in the family. Values that do not match
// the pattern contribute zero, so an empty or foreign history starts
// the family at 01.
func (s Sequence) Next(existing []string) string {
	max := 0
	for _, v := range existing {
		m := s.pattern.FindStringSubmatch(v)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return s.prefix + padSerial(max+1)
}

// Matches reports whether a value belongs to this family.
func (s Sequence) Matches(v string) bool {
	return s.pattern.MatchString(v)
}

// padSerial renders a serial two digits wide until it outgrows that.
func padSerial(n int) string {
	return fmt.Sprintf("%02d", n)
}

var batchSerialPattern = regexp.MustCompile(`P(\d+)`)

// NextBatchNo generates the next PSIR batch number in the YY/PN
// format, e.g. "25/P3". The serial is not padded. year is the full
// calendar year; only its last two digits appear in the number.
func NextBatchNo(year int, existing []string) string {
	yearSuffix := fmt.Sprintf("%02d", year%100)
	max := 0
	for _, v := range existing {
		if !strings.Contains(v, "P") {
			continue
		}
		m := batchSerialPattern.FindStringSubmatch(v)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s/P%d", yearSuffix, max+1)
}

var oaSerialPattern = regexp.MustCompile(`(?i)Stock\s+(\d+)`)

// NextOANo suggests the next "Stock NN" order-acknowledgement number
// for a requester, scanning that requester's existing indents. Returns
// empty when the requester has no Stock-series OA numbers yet and the
// caller did not ask to start one.
func NextOANo(indentBy string, indents []Indent, startSeries bool) string {
	max := 0
	found := false
	for _, ind := range indents {
		if ind.IndentBy != indentBy || !strings.Contains(ind.OANo, "Stock") {
			continue
		}
		m := oaSerialPattern.FindStringSubmatch(ind.OANo)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		found = true
		if n > max {
			max = n
		}
	}
	if !found && !startSeries {
		return ""
	}
	return "Stock " + padSerial(max+1)
}

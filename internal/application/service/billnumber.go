package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// billNoLength is the full document id length: 2-char salesperson
	// code + 8-char date + 3-char sequence.
	billNoLength = 13

	billDateLayout = "20060102"

	// maxNumericCode caps the numeric branch of code normalization.
	// ParseFloat accepts NaN, infinities and huge exponents, none of
	// which survive an int conversion intact; anything outside
	// [0, maxNumericCode) takes the textual fallback instead.
	maxNumericCode = 1e6
)

// NormalizeSalespersonCode turns a raw salesperson code into the 2-digit
// form embedded in bill numbers. Codes arrive in mixed shapes (6, "6",
// "6.0", "AB"); numeric values are truncated and zero-padded, anything
// else is trimmed, left-padded to two characters and cut to its last
// two. Casing of non-numeric codes is preserved. An empty or
// whitespace-only code falls through the padding path and comes out as
// "00", the default for an unresolvable salesperson. Non-finite,
// negative or out-of-range numerics ("NaN", "Inf", "1e30", "-5") are
// treated as text so the result stays a short, printable code.
func NormalizeSalespersonCode(raw string) string {
	s := strings.TrimSpace(raw)
	if f, err := strconv.ParseFloat(s, 64); err == nil &&
		!math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0 && f < maxNumericCode {
		return fmt.Sprintf("%02d", int(f))
	}
	for len(s) < 2 {
		s = "0" + s
	}
	return s[len(s)-2:]
}

// NextBillNumber computes the next document id for a salesperson and
// date given every bill number currently in the ledger. Only ids that
// share the 10-character code+date prefix AND are exactly 13 characters
// long count toward the sequence; the double condition keeps
// differently-shaped ids that happen to share the prefix from colliding.
// Ids with a non-numeric trailing sequence are skipped silently. With no
// match the sequence starts at 1.
func NextBillNumber(code string, date time.Time, existing []string) string {
	prefix := code + date.Format(billDateLayout)

	maxSeq := 0
	for _, no := range existing {
		if len(no) != billNoLength || !strings.HasPrefix(no, prefix) {
			continue
		}
		seq, err := strconv.Atoi(no[len(no)-3:])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}

package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Order numbers are human-readable daily sequences: ORD-YYYYMMDD-NNN.
// The sequence restarts every calendar day; uniqueness is backed by a
// storage-level constraint and the mint happens under a per-day advisory
// lock inside the creation transaction.
const numberPrefix = "ORD"

// NumberPrefix returns the match prefix for all numbers of day t,
// e.g. "ORD-20240115-".
func NumberPrefix(t time.Time) string {
	return fmt.Sprintf("%s-%s-", numberPrefix, t.Format("20060102"))
}

// NextNumber produces the number following last for the given day. An empty
// last starts the day's sequence at 001.
func NextNumber(t time.Time, last string) (string, error) {
	sequence := 1
	if last != "" {
		seq, err := parseSequence(last)
		if err != nil {
			return "", err
		}
		sequence = seq + 1
	}
	return fmt.Sprintf("%s%03d", NumberPrefix(t), sequence), nil
}

func parseSequence(number string) (int, error) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed order number %q", number)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("malformed order number %q: %w", number, err)
	}
	return seq, nil
}

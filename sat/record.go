package sat

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	recordTerminator = "#"
	endOfData        = "End-of-ACIS-data"
	historyMarker    = "Begin-of-ACIS-History-Data"

	endOfDataLine = endOfData + " "
)

// Record is one terminator-delimited logical record of the SAT grammar,
// pre-resolution.
type Record struct {
	Num    int
	Tokens []string
}

// mergeRecordLines concatenates continuation lines into complete records,
// each ending with the "#" terminator. Blank lines are skipped; the
// end-of-data marker or the history-section marker stops merging for good
// (history data is out of scope and discarded).
func mergeRecordLines(lines []string) []string {
	var merged []string
	current := ""
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, endOfData) || strings.HasPrefix(line, historyMarker) {
			break
		}
		current += line
		if strings.HasSuffix(current, recordTerminator) {
			merged = append(merged, current)
			current = ""
		} else if !strings.HasSuffix(current, " ") {
			current += " "
		}
	}
	return merged
}

// parseRecords tokenizes the merged record strings. Record numbers count up
// from 0; a leading "N=" token overrides the counter, which keeps advancing
// from the override for the following records. The trailing terminator
// token is dropped.
func parseRecords(lines []string) ([]Record, error) {
	num := 0
	var records []Record
	for _, line := range mergeRecordLines(lines) {
		tokens := strings.Fields(line)
		if first := tokens[0]; strings.HasSuffix(first, "=") {
			n, err := strconv.Atoi(strings.TrimSuffix(first, "="))
			if err != nil {
				return nil, errors.Wrapf(err, "record number override %q", first)
			}
			num = n
			tokens = tokens[1:]
		}
		records = append(records, Record{Num: num, Tokens: tokens[:len(tokens)-1]})
		num++
	}
	return records, nil
}

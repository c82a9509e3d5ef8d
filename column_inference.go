package file2json

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common datetime patterns to detect
var datetimePatterns = []struct {
	pattern *regexp.Regexp
	formats []string // Multiple formats for the same pattern
}{
	// ISO8601 formats with timezone
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`),
		[]string{time.RFC3339, time.RFC3339Nano},
	},
	// ISO8601 formats without timezone
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`),
		[]string{"2006-01-02T15:04:05", "2006-01-02T15:04:05.000"},
	},
	// ISO8601 date and time with space
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(\.\d+)?$`),
		[]string{"2006-01-02 15:04:05", "2006-01-02 15:04:05.000"},
	},
	// ISO8601 date only
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		[]string{"2006-01-02"},
	},
	// US formats
	{
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2}( (AM|PM))?$`),
		[]string{"1/2/2006 15:04:05", "1/2/2006 3:04:05 PM", "01/02/2006 15:04:05"},
	},
	{
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
		[]string{"1/2/2006", "01/02/2006"},
	},
}

// isDatetime checks if a string value represents a datetime
func isDatetime(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	for _, dp := range datetimePatterns {
		if dp.pattern.MatchString(value) {
			// Try each format for this pattern
			for _, format := range dp.formats {
				if _, err := time.Parse(format, value); err == nil {
					return true
				}
			}
		}
	}

	return false
}

// isBoolean checks if a string value is a boolean literal.
func isBoolean(value string) bool {
	switch value {
	case "true", "false", "True", "False", "TRUE", "FALSE":
		return true
	default:
		return false
	}
}

// isInteger checks if a string value parses as a base-10 integer.
func isInteger(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

// isReal checks if a string value parses as a finite float. NaN and
// infinity lexemes are rejected so they can never serialize as JSON numbers.
func isReal(value string) bool {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// inferColumnType infers the column type from a slice of raw string values
func inferColumnType(values []string) columnType {
	if len(values) == 0 {
		return columnTypeText
	}

	hasDatetime := false
	hasReal := false
	hasInteger := false
	hasBoolean := false
	hasText := false

	for _, value := range values {
		// Skip empty values for type inference
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if isBoolean(value) {
			hasBoolean = true
			continue
		}

		// Check if it's a datetime before checking numbers
		if isDatetime(value) {
			hasDatetime = true
			continue
		}

		if isInteger(value) {
			hasInteger = true
			continue
		}

		if isReal(value) {
			hasReal = true
			continue
		}

		// If it's not a boolean, number, or datetime, it's text
		hasText = true
		break // If any value is text, the whole column is text
	}

	// A column mixing booleans with any other kind degrades to text
	if hasBoolean && (hasDatetime || hasReal || hasInteger) {
		hasText = true
	}

	// Determine the most appropriate type
	// Priority: TEXT > BOOLEAN > DATETIME > REAL > INTEGER
	if hasText {
		return columnTypeText
	}
	if hasBoolean {
		return columnTypeBoolean
	}
	if hasDatetime {
		return columnTypeDatetime
	}
	if hasReal {
		return columnTypeReal
	}
	if hasInteger {
		return columnTypeInteger
	}

	// Default to TEXT if no values were found
	return columnTypeText
}

// inferColumnTypes infers one column type per header entry from raw rows.
func inferColumnTypes(hdr header, rows [][]string) []columnType {
	columnCount := len(hdr)
	if columnCount == 0 {
		return nil
	}

	types := make([]columnType, columnCount)
	for i := range columnCount {
		var values []string
		for _, row := range rows {
			if i < len(row) {
				values = append(values, row[i])
			}
		}
		types[i] = inferColumnType(values)
	}
	return types
}

// coerceCell converts a raw string value to a Cell according to the inferred
// column type. Empty values become null regardless of column type.
func coerceCell(value string, ct columnType) Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nullCell()
	}

	switch ct {
	case columnTypeInteger:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return numberCell(jsonNumberFromInt(n))
		}
	case columnTypeReal:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return numberCell(jsonNumberFromFloat(f))
		}
	case columnTypeBoolean:
		if isBoolean(trimmed) {
			return boolCell(strings.EqualFold(trimmed, "true"))
		}
	case columnTypeDatetime:
		// Datetimes stay ISO-8601 text; JSON has no date type.
		return textCell(trimmed)
	}
	return textCell(value)
}

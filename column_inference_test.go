package file2json

import (
	"testing"
)

func TestInferColumnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		expected columnType
	}{
		{
			name:     "all integers",
			values:   []string{"123", "456", "789"},
			expected: columnTypeInteger,
		},
		{
			name:     "mixed integers and floats",
			values:   []string{"123", "45.6", "789"},
			expected: columnTypeReal,
		},
		{
			name:     "all floats",
			values:   []string{"12.3", "45.6", "78.9"},
			expected: columnTypeReal,
		},
		{
			name:     "mixed numbers and text",
			values:   []string{"123", "hello", "789"},
			expected: columnTypeText,
		},
		{
			name:     "all text",
			values:   []string{"hello", "world", "test"},
			expected: columnTypeText,
		},
		{
			name:     "empty values",
			values:   []string{"", "", ""},
			expected: columnTypeText,
		},
		{
			name:     "integers with empty values",
			values:   []string{"123", "", "789"},
			expected: columnTypeInteger,
		},
		{
			name:     "negative integers",
			values:   []string{"-123", "456", "-789"},
			expected: columnTypeInteger,
		},
		{
			name:     "scientific notation",
			values:   []string{"1e10", "2.5e-3", "3.14e2"},
			expected: columnTypeReal,
		},
		{
			name:     "booleans",
			values:   []string{"true", "false", "true"},
			expected: columnTypeBoolean,
		},
		{
			name:     "capitalized booleans",
			values:   []string{"True", "False", "TRUE"},
			expected: columnTypeBoolean,
		},
		{
			name:     "booleans mixed with numbers degrade to text",
			values:   []string{"true", "1", "false"},
			expected: columnTypeText,
		},
		{
			name:     "ISO8601 dates",
			values:   []string{"2023-01-15", "2023-02-20", "2023-03-10"},
			expected: columnTypeDatetime,
		},
		{
			name:     "ISO8601 datetime",
			values:   []string{"2023-01-15T10:30:00", "2023-02-20T14:45:30"},
			expected: columnTypeDatetime,
		},
		{
			name:     "NaN is not numeric",
			values:   []string{"1.5", "NaN", "2.5"},
			expected: columnTypeText,
		},
		{
			name:     "infinity is not numeric",
			values:   []string{"Inf", "2.5"},
			expected: columnTypeText,
		},
		{
			name:     "no values",
			values:   nil,
			expected: columnTypeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inferColumnType(tt.values); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCoerceCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		colType  columnType
		expected Cell
	}{
		{
			name:     "integer",
			value:    "42",
			colType:  columnTypeInteger,
			expected: numberCell("42"),
		},
		{
			name:     "integer with whitespace",
			value:    " 42 ",
			colType:  columnTypeInteger,
			expected: numberCell("42"),
		},
		{
			name:     "real",
			value:    "45.6",
			colType:  columnTypeReal,
			expected: numberCell("45.6"),
		},
		{
			name:     "real normalizes trailing zero",
			value:    "45.60",
			colType:  columnTypeReal,
			expected: numberCell("45.6"),
		},
		{
			name:     "boolean true",
			value:    "True",
			colType:  columnTypeBoolean,
			expected: boolCell(true),
		},
		{
			name:     "boolean false",
			value:    "false",
			colType:  columnTypeBoolean,
			expected: boolCell(false),
		},
		{
			name:     "datetime stays text",
			value:    "2023-01-15",
			colType:  columnTypeDatetime,
			expected: textCell("2023-01-15"),
		},
		{
			name:     "text",
			value:    "hello",
			colType:  columnTypeText,
			expected: textCell("hello"),
		},
		{
			name:     "empty becomes null",
			value:    "",
			colType:  columnTypeInteger,
			expected: nullCell(),
		},
		{
			name:     "whitespace becomes null",
			value:    "   ",
			colType:  columnTypeText,
			expected: nullCell(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := coerceCell(tt.value, tt.colType); !got.equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

package dto_test

import (
	"hotelbook/shared/dto"
	"strings"
	"testing"
)

func TestFilter_GetWhereClause_Like(t *testing.T) {
	tests := []struct {
		name        string
		value       any
		expectedArg string
	}{
		{name: "plain text", value: "miami", expectedArg: "%miami%"},
		{name: "underscore is literal", value: "_", expectedArg: `%\_%`},
		{name: "percent is literal", value: "50%", expectedArg: `%50\%%`},
		{name: "backslash is literal", value: `a\b`, expectedArg: `%a\\b%`},
		{name: "non string value", value: 101, expectedArg: "%101%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := dto.Filter{Field: "location", Table: "hotels", Operator: dto.FilterOperatorLike, Value: tt.value}

			where, args := filter.GetWhereClause()

			if !strings.Contains(where, `LOWER(hotels.location) LIKE LOWER(:location) ESCAPE '\'`) {
				t.Errorf("unexpected where clause %q", where)
			}

			if args["location"] != tt.expectedArg {
				t.Errorf("expected arg %q, got %q", tt.expectedArg, args["location"])
			}
		})
	}
}

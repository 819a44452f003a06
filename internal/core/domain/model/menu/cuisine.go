package menu

import (
	"fmt"
	"strings"

	"foodmate/internal/pkg/errs"
)

// Cuisine tags a dish or restaurant with its style of cooking.
//
// CuisineAny is a filter-only wildcard: it is valid in catalog filters,
// where it matches every cuisine, and invalid as the attribute of a dish
// or restaurant.
type Cuisine int

const (
	// CuisineUnknown represents an invalid or undefined cuisine.
	// This value (0) helps catch uninitialized Cuisine values.
	CuisineUnknown Cuisine = iota

	CuisineIndian
	CuisineItalian
	CuisineChinese
	CuisineMexican
	CuisineJapanese
	CuisineOther

	// CuisineAny is the filter wildcard matching every cuisine.
	CuisineAny
)

func getCuisineStrings() map[Cuisine]string {
	return map[Cuisine]string{
		CuisineUnknown:  "Unknown",
		CuisineIndian:   "Indian",
		CuisineItalian:  "Italian",
		CuisineChinese:  "Chinese",
		CuisineMexican:  "Mexican",
		CuisineJapanese: "Japanese",
		CuisineOther:    "Other",
		CuisineAny:      "Any",
	}
}

// Validate checks the value is usable as a dish or restaurant attribute.
// The wildcard CuisineAny is rejected here; use ValidateFilter for filters.
func (c Cuisine) Validate() error {
	if c < CuisineIndian || c > CuisineOther {
		return errs.NewValueIsInvalidErrorWithCause("cuisine",
			fmt.Errorf("%d is not a valid cuisine", c))
	}
	return nil
}

// ValidateFilter checks the value is usable as a catalog filter,
// which additionally permits the CuisineAny wildcard.
func (c Cuisine) ValidateFilter() error {
	if c == CuisineAny {
		return nil
	}
	return c.Validate()
}

// Matches reports whether a dish attribute passes this filter value.
func (c Cuisine) Matches(attribute Cuisine) bool {
	return c == CuisineAny || c == attribute
}

// String implements fmt.Stringer. Safe on any value.
func (c Cuisine) String() string {
	if s, ok := getCuisineStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// ParseCuisine converts a textual cuisine (case-insensitive) into its enum
// value. The empty string parses to the CuisineAny wildcard so that omitted
// filter parameters behave as "no filter".
func ParseCuisine(s string) (Cuisine, error) {
	if s == "" {
		return CuisineAny, nil
	}
	for value, name := range getCuisineStrings() {
		if value != CuisineUnknown && strings.EqualFold(name, s) {
			return value, nil
		}
	}
	return CuisineUnknown, errs.NewValueIsInvalidErrorWithCause("cuisine",
		fmt.Errorf("%q is not a valid cuisine", s))
}

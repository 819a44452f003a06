package menu

import (
	"fmt"
	"strings"

	"foodmate/internal/pkg/errs"
)

// DietaryType tags a dish as vegetarian or non-vegetarian.
//
// DietaryBoth is only meaningful as a filter wildcard; a dish is always
// either Veg or NonVeg.
type DietaryType int

const (
	// DietaryUnknown represents an invalid or undefined dietary type.
	DietaryUnknown DietaryType = iota

	DietaryVeg
	DietaryNonVeg

	// DietaryBoth is the filter wildcard matching both dietary types.
	DietaryBoth
)

func getDietaryStrings() map[DietaryType]string {
	return map[DietaryType]string{
		DietaryUnknown: "Unknown",
		DietaryVeg:     "Veg",
		DietaryNonVeg:  "Non-Veg",
		DietaryBoth:    "Both",
	}
}

// Validate checks the value is usable as a dish attribute.
// The wildcard DietaryBoth is rejected here; use ValidateFilter for filters.
func (d DietaryType) Validate() error {
	if d != DietaryVeg && d != DietaryNonVeg {
		return errs.NewValueIsInvalidErrorWithCause("dietary type",
			fmt.Errorf("%d is not a valid dietary type", d))
	}
	return nil
}

// ValidateFilter checks the value is usable as a catalog filter,
// which additionally permits the DietaryBoth wildcard.
func (d DietaryType) ValidateFilter() error {
	if d == DietaryBoth {
		return nil
	}
	return d.Validate()
}

// Matches reports whether a dish attribute passes this filter value.
func (d DietaryType) Matches(attribute DietaryType) bool {
	return d == DietaryBoth || d == attribute
}

// String implements fmt.Stringer. Safe on any value.
func (d DietaryType) String() string {
	if s, ok := getDietaryStrings()[d]; ok {
		return s
	}
	return "Unknown"
}

// ParseDietaryType converts a textual dietary type (case-insensitive) into
// its enum value. The empty string parses to the DietaryBoth wildcard.
func ParseDietaryType(s string) (DietaryType, error) {
	if s == "" {
		return DietaryBoth, nil
	}
	for value, name := range getDietaryStrings() {
		if value != DietaryUnknown && strings.EqualFold(name, s) {
			return value, nil
		}
	}
	if strings.EqualFold(s, "NonVeg") {
		return DietaryNonVeg, nil
	}
	return DietaryUnknown, errs.NewValueIsInvalidErrorWithCause("dietary type",
		fmt.Errorf("%q is not a valid dietary type", s))
}

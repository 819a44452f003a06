package menu

import (
	"fmt"
	"strings"

	"foodmate/internal/pkg/errs"
)

// Course tags a dish with the meal slot it belongs to.
//
// CourseAny is a filter-only wildcard, never a dish's own course.
type Course int

const (
	// CourseUnknown represents an invalid or undefined course.
	CourseUnknown Course = iota

	CourseBreakfast
	CourseBrunch
	CourseLunch
	CourseSnacks
	CourseDinner
	CourseDessert

	// CourseAny is the filter wildcard matching every course.
	CourseAny
)

func getCourseStrings() map[Course]string {
	return map[Course]string{
		CourseUnknown:   "Unknown",
		CourseBreakfast: "Breakfast",
		CourseBrunch:    "Brunch",
		CourseLunch:     "Lunch",
		CourseSnacks:    "Snacks",
		CourseDinner:    "Dinner",
		CourseDessert:   "Dessert",
		CourseAny:       "Any",
	}
}

// Validate checks the value is usable as a dish attribute.
// The wildcard CourseAny is rejected here; use ValidateFilter for filters.
func (c Course) Validate() error {
	if c < CourseBreakfast || c > CourseDessert {
		return errs.NewValueIsInvalidErrorWithCause("course",
			fmt.Errorf("%d is not a valid course", c))
	}
	return nil
}

// ValidateFilter checks the value is usable as a catalog filter,
// which additionally permits the CourseAny wildcard.
func (c Course) ValidateFilter() error {
	if c == CourseAny {
		return nil
	}
	return c.Validate()
}

// Matches reports whether a dish attribute passes this filter value.
func (c Course) Matches(attribute Course) bool {
	return c == CourseAny || c == attribute
}

// String implements fmt.Stringer. Safe on any value.
func (c Course) String() string {
	if s, ok := getCourseStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// ParseCourse converts a textual course (case-insensitive) into its enum
// value. The empty string parses to the CourseAny wildcard.
func ParseCourse(s string) (Course, error) {
	if s == "" {
		return CourseAny, nil
	}
	for value, name := range getCourseStrings() {
		if value != CourseUnknown && strings.EqualFold(name, s) {
			return value, nil
		}
	}
	return CourseUnknown, errs.NewValueIsInvalidErrorWithCause("course",
		fmt.Errorf("%q is not a valid course", s))
}

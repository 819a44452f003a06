// Package menu implements the catalog side of the FoodMate domain: the
// Cuisine, Course and DietaryType attribute enums, the Dish entity, and the
// Menu collection with attribute-based filtering.
//
// A Menu is owned by exactly one restaurant. Filtering combines three
// exact-or-wildcard predicates (cuisine "Any", course "Any", dietary "Both")
// with AND semantics and never fails on an empty result.
package menu

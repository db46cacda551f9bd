// Package coursegen provides content-generation utilities for a static
// course website. It extracts the hand-authored schedule table from the
// site's HTML into CSV, regenerates the schedule and reading-list sections
// from CSV, and converts JSON exports into CSV.
//
// This package contains domain types, interfaces and the pure
// transformations between them, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., html/, goquery/, fs/).
package coursegen

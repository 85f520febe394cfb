// Package domain models the SECAR weather brief: the fixed jurisdiction
// catalog, NWS alert records, condition text composition, tropical outlook
// extraction, and report rendering.
//
// # Jurisdictions
//
// The brief covers the eight Southeast and Caribbean (SECAR) jurisdictions in
// a fixed order: Alabama, Florida, Georgia, Mississippi, North Carolina,
// South Carolina, Puerto Rico, and the U.S. Virgin Islands. The catalog is
// built once at startup and never mutated.
//
// # Seasons
//
// Two calendar windows drive fallback text. Hot season is May through
// October: heat-safety language replaces the generic seasonal reminder, and
// the fetch-failure fallback uses heat and thunderstorm text. Hurricane
// season is June 1 through November 30, the official Atlantic season: when
// every tropical-outlook source fails in-season, the brief points readers at
// the National Hurricane Center instead of claiming a 0% formation chance.
// These are the single consistent definitions used everywhere in the module.
package domain

import "time"

// Jurisdiction is one covered state or territory.
type Jurisdiction struct {
	Name        string
	OfficeLabel string
	Code        string // 2-letter code used by the NWS alerts API "area" filter
}

// defaultCode is returned for names outside the catalog.
const defaultCode = "US"

// catalog is the fixed report order. Puerto Rico and the U.S. Virgin Islands
// are last and receive the mild-weather cold-season fallback.
var catalog = []Jurisdiction{
	{Name: "Alabama", OfficeLabel: "Alabama-Mississippi Region", Code: "AL"},
	{Name: "Florida", OfficeLabel: "Florida Region", Code: "FL"},
	{Name: "Georgia", OfficeLabel: "Georgia Region", Code: "GA"},
	{Name: "Mississippi", OfficeLabel: "Alabama-Mississippi Region", Code: "MS"},
	{Name: "North Carolina", OfficeLabel: "North Carolina Region", Code: "NC"},
	{Name: "South Carolina", OfficeLabel: "South Carolina Region", Code: "SC"},
	{Name: "Puerto Rico", OfficeLabel: "Puerto Rico Region", Code: "PR"},
	{Name: "U.S. Virgin Islands", OfficeLabel: "Virgin Islands Region", Code: "VI"},
}

// Catalog returns the jurisdictions in report order.
func Catalog() []Jurisdiction {
	out := make([]Jurisdiction, len(catalog))
	copy(out, catalog)
	return out
}

// CodeFor returns the 2-letter alert-area code for a jurisdiction name,
// or "US" when the name is not in the catalog.
func CodeFor(name string) string {
	for _, j := range catalog {
		if j.Name == name {
			return j.Code
		}
	}
	return defaultCode
}

// IsHotSeason reports whether t falls in May through October.
func IsHotSeason(t time.Time) bool {
	m := t.Month()
	return m >= time.May && m <= time.October
}

// IsHurricaneSeason reports whether t falls in the Atlantic hurricane season,
// June through November.
func IsHurricaneSeason(t time.Time) bool {
	m := t.Month()
	return m >= time.June && m <= time.November
}

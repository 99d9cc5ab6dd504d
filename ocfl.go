// Package ocfl provides a command-line front end for Orange County, FL
// government services. Its core ingests a human-authored Markdown directory
// document into a flat and a categorized view, caches those views, and
// answers fuzzy and regular-expression queries against them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, goquery/).
package ocfl

// Package repositories provides the sqlite-backed metadata cache sitting in
// front of the external music APIs.
//
// Each repository handles one table of the cache:
//   - [ArtistRepository] : performing artists per festival edition
//   - [DayRepository] : lineup days per festival edition
//   - [EditionRepository] : last-refreshed bookkeeping per edition
//
// Rows are keyed by (festival, year); a refresh replaces an edition's rows
// wholesale rather than patching them.
package repositories

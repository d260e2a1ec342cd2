// Package models defines domain entities for the festify playlist customization service.
//
// The package contains three categories of types:
//
// 1. Catalog types: static festival metadata
//   - [Festival] : A supported festival with its editions (years)
//   - [Region] : A geographic grouping used for dropdown separators
//
// 2. Session types: ephemeral per-visitor customization state
//   - [SessionData] : The Redis-backed hash for one visitor
//   - [TrackType] : Which subset of an artist's catalog feeds the playlist
//
// 3. Lineup types: request-scoped data fetched from external music APIs
//   - [Artist] : A performing artist with its genre tags
//   - [LineupDay] : A single day of a festival edition
//   - [Track] : A resolved track for the personalized lineup
//   - [Stateful] : A (selection state, payload) pair carrying checkbox state
//
// Catalog and lineup types are rebuilt per request and discarded after the
// response; only SessionData is persisted, owned by the session store.
package models

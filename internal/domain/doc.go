// Package domain defines the core entities of the gematria drill engine:
// the Hebrew letter table, card specifications and per-card scheduling
// state, and the persisted progression record for each gematria system.
package domain

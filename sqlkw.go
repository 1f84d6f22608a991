// Package sqlkw extracts SQL keyword lists from vendor documentation and
// reconciles them into canonical per-dialect reserved and non-reserved sets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package sqlkw

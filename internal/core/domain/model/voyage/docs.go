// Package voyage contains the voyage aggregate: a scheduled carrier run
// identified by a voyage number, consisting of an ordered chain of carrier
// movements between locations.
//
// A voyage's schedule must form a contiguous chain: each movement departs
// from the location where the previous one arrived. Handling events and
// itinerary legs reference voyages to express on which carrier run a cargo
// was, or is planned to be, moved.
package voyage

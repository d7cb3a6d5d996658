// Package handling contains the handling side of the cargo tracking model:
// the immutable facts that a cargo was received, loaded, unloaded, claimed
// or passed customs at some location, and the handling history that orders
// and deduplicates those facts for one cargo.
//
// Handling events arrive from the outside world unordered and possibly
// duplicated (re-registrations restating the same completed fact). The
// History type is the only place where that noise is resolved: it exposes a
// time-ordered view with at most one event per distinct completion time,
// where the earliest registered restatement of a fact wins.
package handling

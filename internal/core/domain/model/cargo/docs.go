// Package cargo implements the Cargo aggregate and its delivery-derivation
// engine.
//
// A Cargo is booked against a RouteSpecification (origin, destination,
// arrival deadline), optionally assigned an Itinerary (an ordered, contiguous
// plan of voyage legs), and subsequently reported on via a stream of handling
// events. The Delivery value is the derived, immutable snapshot of where the
// cargo is and how well reality matches the plan; it is fully recomputed
// whenever the handling history, the itinerary or the route specification
// changes.
//
// Absence is modeled with nil pointers rather than sentinel singletons: a
// cargo with no assigned route carries a nil *Itinerary, a delivery with no
// recorded handling carries a nil last known location and current voyage.
package cargo

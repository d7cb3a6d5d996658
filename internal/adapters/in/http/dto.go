package http

import "time"

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BookCargoRequest is the body of POST /api/v1/cargos.
type BookCargoRequest struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// BookCargoResponse returns the tracking id assigned to a new booking.
type BookCargoResponse struct {
	TrackingID string `json:"trackingId"`
}

// RouteLegRequest is one leg of an itinerary being assigned to a cargo.
type RouteLegRequest struct {
	VoyageNumber   string    `json:"voyageNumber"`
	LoadLocation   string    `json:"loadLocation"`
	UnloadLocation string    `json:"unloadLocation"`
	LoadTime       time.Time `json:"loadTime"`
	UnloadTime     time.Time `json:"unloadTime"`
}

// AssignRouteRequest is the body of POST /api/v1/cargos/:id/route.
type AssignRouteRequest struct {
	Legs []RouteLegRequest `json:"legs"`
}

// ChangeDestinationRequest is the body of POST /api/v1/cargos/:id/destination.
type ChangeDestinationRequest struct {
	Destination string `json:"destination"`
}

// RegisterHandlingEventRequest is the body of POST /api/v1/handling-events.
type RegisterHandlingEventRequest struct {
	TrackingID     string    `json:"trackingId"`
	EventType      string    `json:"eventType"`
	Location       string    `json:"location"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

// RouteCandidateResponse is one candidate itinerary satisfying a cargo's
// route specification.
type RouteCandidateResponse struct {
	Legs []RouteLegResponse `json:"legs"`
}

// RouteLegResponse is one leg of a candidate or assigned itinerary.
type RouteLegResponse struct {
	VoyageNumber   string    `json:"voyageNumber"`
	LoadLocation   string    `json:"loadLocation"`
	UnloadLocation string    `json:"unloadLocation"`
	LoadTime       time.Time `json:"loadTime"`
	UnloadTime     time.Time `json:"unloadTime"`
}

// CargoOverviewResponse is one row of the booking list view.
type CargoOverviewResponse struct {
	TrackingID      string    `json:"trackingId"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
	RoutingStatus   string    `json:"routingStatus"`
	TransportStatus string    `json:"transportStatus"`
	IsMisdirected   bool      `json:"isMisdirected"`
}

// TrackCargoResponse is the full tracking view of one cargo.
type TrackCargoResponse struct {
	TrackingID              string                  `json:"trackingId"`
	Origin                  string                  `json:"origin"`
	Destination             string                  `json:"destination"`
	ArrivalDeadline         time.Time               `json:"arrivalDeadline"`
	TransportStatus         string                  `json:"transportStatus"`
	RoutingStatus           string                  `json:"routingStatus"`
	LastKnownLocation       *string                 `json:"lastKnownLocation,omitempty"`
	CurrentVoyage           *string                 `json:"currentVoyage,omitempty"`
	IsMisdirected           bool                    `json:"isMisdirected"`
	IsUnloadedAtDestination bool                    `json:"isUnloadedAtDestination"`
	ETA                     *time.Time              `json:"eta,omitempty"`
	Legs                    []RouteLegResponse      `json:"legs"`
	HandlingEvents          []HandlingEventResponse `json:"handlingEvents"`
}

// HandlingEventResponse is one registered handling event in a tracking view.
type HandlingEventResponse struct {
	EventType      string    `json:"eventType"`
	Location       string    `json:"location"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

// LocationResponse is one entry of the location reference data.
type LocationResponse struct {
	UNLocode string `json:"unLocode"`
	Name     string `json:"name"`
}

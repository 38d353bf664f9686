package endpoints

// Endpoints groups every endpoint exposed by the transport layer.
type Endpoints struct {
	RouteEndpoint RouteEndpoint
}

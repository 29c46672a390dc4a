package errors

import "net/http"

var (
	ErrAddressRequired = New(
		KindValidation,
		"address required",
		http.StatusBadRequest,
	)

	ErrTwoStopsRequired = New(
		KindValidation,
		"exactly two stops required",
		http.StatusBadRequest,
	)

	ErrInvalidBarriers = New(
		KindValidation,
		"barriers must be an array",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		KindNotFound,
		"location not found",
		http.StatusNotFound,
	)

	ErrGeocodingFailed = New(
		KindUpstream,
		"geocoding failed",
		http.StatusInternalServerError,
	)

	ErrRouteRequestFailed = New(
		KindUpstream,
		"route request failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRouteFormat = New(
		KindUpstreamFormat,
		"invalid response format from routing service",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		KindInternal,
		"internal server error",
		http.StatusInternalServerError,
	)
)

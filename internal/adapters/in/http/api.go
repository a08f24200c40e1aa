// Package http exposes the load and booking use cases over a JSON API.
//
// The routing layer in this file follows the shape oapi-codegen emits for
// openapi.yml: a ServerInterface with one method per operation, and a wrapper
// that binds path and query parameters before delegating.
package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListLoadsParams defines parameters for ListLoads.
type ListLoadsParams struct {
	ShipperId *string `form:"shipperId,omitempty" json:"shipperId,omitempty"`
	TruckType *string `form:"truckType,omitempty" json:"truckType,omitempty"`
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Page      *int    `form:"page,omitempty" json:"page,omitempty"`
	Size      *int    `form:"size,omitempty" json:"size,omitempty"`
}

// ListBookingsParams defines parameters for ListBookings.
type ListBookingsParams struct {
	LoadId        *openapi_types.UUID `form:"loadId,omitempty" json:"loadId,omitempty"`
	TransporterId *string             `form:"transporterId,omitempty" json:"transporterId,omitempty"`
	Status        *string             `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Post a new load
	// (POST /loads)
	CreateLoad(ctx echo.Context) error
	// List loads, newest first
	// (GET /loads)
	ListLoads(ctx echo.Context, params ListLoadsParams) error
	// Get a load
	// (GET /loads/{loadId})
	GetLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// Replace the details of a load
	// (PUT /loads/{loadId})
	UpdateLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// Cancel a load
	// (DELETE /loads/{loadId})
	CancelLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// Move a load to another status
	// (PUT /loads/{loadId}/status)
	ChangeLoadStatus(ctx echo.Context, loadId openapi_types.UUID) error
	// Request a booking on a load
	// (POST /bookings)
	CreateBooking(ctx echo.Context) error
	// List bookings, newest first
	// (GET /bookings)
	ListBookings(ctx echo.Context, params ListBookingsParams) error
	// Get a booking
	// (GET /bookings/{bookingId})
	GetBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Replace the terms of a booking
	// (PUT /bookings/{bookingId})
	UpdateBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Delete a booking
	// (DELETE /bookings/{bookingId})
	DeleteBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Accept a booking and reject the other pending bookings of its load
	// (PUT /bookings/{bookingId}/accept)
	AcceptBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// Reject a pending booking
	// (PUT /bookings/{bookingId}/reject)
	RejectBooking(ctx echo.Context, bookingId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateLoad(ctx echo.Context) error {
	return w.Handler.CreateLoad(ctx)
}

func (w *ServerInterfaceWrapper) ListLoads(ctx echo.Context) error {
	var params ListLoadsParams

	if err := runtime.BindQueryParameter("form", true, false, "shipperId", ctx.QueryParams(), &params.ShipperId); err != nil {
		return invalidParameter("shipperId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "truckType", ctx.QueryParams(), &params.TruckType); err != nil {
		return invalidParameter("truckType", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return invalidParameter("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return invalidParameter("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size); err != nil {
		return invalidParameter("size", err)
	}

	return w.Handler.ListLoads(ctx, params)
}

func (w *ServerInterfaceWrapper) GetLoad(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.GetLoad(ctx, loadId)
}

func (w *ServerInterfaceWrapper) UpdateLoad(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateLoad(ctx, loadId)
}

func (w *ServerInterfaceWrapper) CancelLoad(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.CancelLoad(ctx, loadId)
}

func (w *ServerInterfaceWrapper) ChangeLoadStatus(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeLoadStatus(ctx, loadId)
}

func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

func (w *ServerInterfaceWrapper) ListBookings(ctx echo.Context) error {
	var params ListBookingsParams

	if err := runtime.BindQueryParameter("form", true, false, "loadId", ctx.QueryParams(), &params.LoadId); err != nil {
		return invalidParameter("loadId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "transporterId", ctx.QueryParams(), &params.TransporterId); err != nil {
		return invalidParameter("transporterId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return invalidParameter("status", err)
	}

	return w.Handler.ListBookings(ctx, params)
}

func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) UpdateBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) DeleteBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) AcceptBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.AcceptBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) RejectBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.RejectBooking(ctx, bookingId)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, invalidParameter(name, err)
	}
	return id, nil
}

func invalidParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/loads", wrapper.CreateLoad)
	router.GET(baseURL+"/loads", wrapper.ListLoads)
	router.GET(baseURL+"/loads/:loadId", wrapper.GetLoad)
	router.PUT(baseURL+"/loads/:loadId", wrapper.UpdateLoad)
	router.DELETE(baseURL+"/loads/:loadId", wrapper.CancelLoad)
	router.PUT(baseURL+"/loads/:loadId/status", wrapper.ChangeLoadStatus)
	router.POST(baseURL+"/bookings", wrapper.CreateBooking)
	router.GET(baseURL+"/bookings", wrapper.ListBookings)
	router.GET(baseURL+"/bookings/:bookingId", wrapper.GetBooking)
	router.PUT(baseURL+"/bookings/:bookingId", wrapper.UpdateBooking)
	router.DELETE(baseURL+"/bookings/:bookingId", wrapper.DeleteBooking)
	router.PUT(baseURL+"/bookings/:bookingId/accept", wrapper.AcceptBooking)
	router.PUT(baseURL+"/bookings/:bookingId/reject", wrapper.RejectBooking)
}

package http

import (
	"context"
	"net/http"

	"loadbooking/internal/core/application/usecases/commands"
	"loadbooking/internal/core/application/usecases/queries"
	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler is the shape of every command handler in the application layer.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is the shape of every query handler in the application layer.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateLoad       CommandHandler[commands.CreateLoadCommand]
	UpdateLoad       CommandHandler[commands.UpdateLoadCommand]
	CancelLoad       CommandHandler[commands.CancelLoadCommand]
	ChangeLoadStatus CommandHandler[commands.ChangeLoadStatusCommand]
	CreateBooking    CommandHandler[commands.CreateBookingCommand]
	UpdateBooking    CommandHandler[commands.UpdateBookingCommand]
	AcceptBooking    CommandHandler[commands.AcceptBookingCommand]
	RejectBooking    CommandHandler[commands.RejectBookingCommand]
	DeleteBooking    CommandHandler[commands.DeleteBookingCommand]

	// Query handlers
	GetLoad      QueryHandler[queries.GetLoadQuery, queries.LoadResponse]
	ListLoads    QueryHandler[queries.ListLoadsQuery, queries.ListLoadsQueryResponse]
	GetBooking   QueryHandler[queries.GetBookingQuery, queries.BookingResponse]
	ListBookings QueryHandler[queries.ListBookingsQuery, []queries.BookingResponse]
}

var _ ServerInterface = &Server{}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Write operations respond with the state read back through the query side.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var req LoadRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody()
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(loadID, req.toSpec())
	if err != nil {
		return err
	}

	if err = s.handlers.CreateLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(ctx, http.StatusCreated, loadID)
}

// ListLoads handles GET /api/v1/loads.
func (s *Server) ListLoads(ctx echo.Context, params ListLoadsParams) error {
	filter := queries.LoadFilter{
		ShipperID: params.ShipperId,
		TruckType: params.TruckType,
	}
	if params.Page != nil {
		filter.Page = *params.Page
	}
	if params.Size != nil {
		filter.Size = *params.Size
	}
	if params.Status != nil {
		status, err := load.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	query, err := queries.NewListLoadsQuery(filter)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListLoads.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := LoadPage{
		Items: make([]Load, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for i, item := range page.Items {
		response.Items[i] = toLoad(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLoad handles GET /api/v1/loads/{loadId}.
func (s *Server) GetLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}
	return s.respondLoad(ctx, http.StatusOK, id)
}

// UpdateLoad handles PUT /api/v1/loads/{loadId}.
func (s *Server) UpdateLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	var req LoadRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody()
	}

	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLoadCommand(id, req.toSpec())
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(ctx, http.StatusOK, id)
}

// CancelLoad handles DELETE /api/v1/loads/{loadId}.
func (s *Server) CancelLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelLoadCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.CancelLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeLoadStatus handles PUT /api/v1/loads/{loadId}/status.
func (s *Server) ChangeLoadStatus(ctx echo.Context, loadId openapi_types.UUID) error {
	var req LoadStatusChange
	if err := ctx.Bind(&req); err != nil {
		return invalidBody()
	}

	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}

	status, err := load.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeLoadStatusCommand(id, status)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeLoadStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(ctx, http.StatusOK, id)
}

// CreateBooking handles POST /api/v1/bookings.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req BookingRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody()
	}

	loadID, err := toKernelUUID(req.LoadId)
	if err != nil {
		return err
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(bookingID, loadID, req.toSpec())
	if err != nil {
		return err
	}

	if err = s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusCreated, bookingID)
}

// ListBookings handles GET /api/v1/bookings.
func (s *Server) ListBookings(ctx echo.Context, params ListBookingsParams) error {
	filter := queries.BookingFilter{TransporterID: params.TransporterId}
	if params.LoadId != nil {
		loadID, err := toKernelUUID(*params.LoadId)
		if err != nil {
			return err
		}
		filter.LoadID = &loadID
	}
	if params.Status != nil {
		status, err := booking.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	query, err := queries.NewListBookingsQuery(filter)
	if err != nil {
		return err
	}

	bookings, err := s.handlers.ListBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Booking, len(bookings))
	for i, b := range bookings {
		response[i] = toBooking(b)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBooking handles GET /api/v1/bookings/{bookingId}.
func (s *Server) GetBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}
	return s.respondBooking(ctx, http.StatusOK, id)
}

// UpdateBooking handles PUT /api/v1/bookings/{bookingId}.
func (s *Server) UpdateBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	var req BookingTerms
	if err := ctx.Bind(&req); err != nil {
		return invalidBody()
	}

	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBookingCommand(id, req.toSpec())
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusOK, id)
}

// DeleteBooking handles DELETE /api/v1/bookings/{bookingId}.
func (s *Server) DeleteBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptBooking handles PUT /api/v1/bookings/{bookingId}/accept.
func (s *Server) AcceptBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptBookingCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.AcceptBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusOK, id)
}

// RejectBooking handles PUT /api/v1/bookings/{bookingId}/reject.
func (s *Server) RejectBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectBookingCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.RejectBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusOK, id)
}

func (s *Server) respondLoad(ctx echo.Context, code int, loadID kernel.UUID) error {
	query, err := queries.NewGetLoadQuery(loadID)
	if err != nil {
		return err
	}

	l, err := s.handlers.GetLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(code, toLoad(l))
}

func (s *Server) respondBooking(ctx echo.Context, code int, bookingID kernel.UUID) error {
	query, err := queries.NewGetBookingQuery(bookingID)
	if err != nil {
		return err
	}

	b, err := s.handlers.GetBooking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(code, toBooking(b))
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
}

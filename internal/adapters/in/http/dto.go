package http

import (
	"time"

	"loadbooking/internal/core/application/usecases/commands"
	"loadbooking/internal/core/application/usecases/queries"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Facility defines model for Facility.
type Facility struct {
	LoadingPoint   string    `json:"loadingPoint"`
	UnloadingPoint string    `json:"unloadingPoint"`
	LoadingDate    time.Time `json:"loadingDate"`
	UnloadingDate  time.Time `json:"unloadingDate"`
}

// LoadRequest defines model for LoadRequest.
type LoadRequest struct {
	ShipperId   string   `json:"shipperId"`
	Facility    Facility `json:"facility"`
	ProductType string   `json:"productType"`
	TruckType   string   `json:"truckType"`
	NoOfTrucks  int      `json:"noOfTrucks"`
	Weight      float64  `json:"weight"`
	Comment     *string  `json:"comment,omitempty"`
}

// Load defines model for Load.
type Load struct {
	Id          openapi_types.UUID `json:"id"`
	ShipperId   string             `json:"shipperId"`
	Facility    Facility           `json:"facility"`
	ProductType string             `json:"productType"`
	TruckType   string             `json:"truckType"`
	NoOfTrucks  int                `json:"noOfTrucks"`
	Weight      float64            `json:"weight"`
	Comment     *string            `json:"comment,omitempty"`
	DatePosted  time.Time          `json:"datePosted"`
	Status      string             `json:"status"`
}

// LoadPage defines model for LoadPage.
type LoadPage struct {
	Items []Load `json:"items"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Total int64  `json:"total"`
}

// LoadStatusChange defines model for LoadStatusChange.
type LoadStatusChange struct {
	Status string `json:"status"`
}

// BookingTerms defines model for BookingTerms.
type BookingTerms struct {
	TransporterId string  `json:"transporterId"`
	ProposedRate  float64 `json:"proposedRate"`
	Comment       *string `json:"comment,omitempty"`
}

// BookingRequest defines model for BookingRequest.
type BookingRequest struct {
	LoadId        openapi_types.UUID `json:"loadId"`
	TransporterId string             `json:"transporterId"`
	ProposedRate  float64            `json:"proposedRate"`
	Comment       *string            `json:"comment,omitempty"`
}

// Booking defines model for Booking.
type Booking struct {
	Id            openapi_types.UUID `json:"id"`
	LoadId        openapi_types.UUID `json:"loadId"`
	TransporterId string             `json:"transporterId"`
	ProposedRate  float64            `json:"proposedRate"`
	Comment       *string            `json:"comment,omitempty"`
	RequestedAt   time.Time          `json:"requestedAt"`
	Status        string             `json:"status"`
}

func (r LoadRequest) toSpec() commands.LoadSpec {
	return commands.LoadSpec{
		ShipperID:      r.ShipperId,
		LoadingPoint:   r.Facility.LoadingPoint,
		UnloadingPoint: r.Facility.UnloadingPoint,
		LoadingDate:    r.Facility.LoadingDate,
		UnloadingDate:  r.Facility.UnloadingDate,
		ProductType:    r.ProductType,
		TruckType:      r.TruckType,
		TruckCount:     r.NoOfTrucks,
		Weight:         r.Weight,
		Comment:        deref(r.Comment),
	}
}

func (t BookingTerms) toSpec() commands.BookingSpec {
	return commands.BookingSpec{
		TransporterID: t.TransporterId,
		ProposedRate:  t.ProposedRate,
		Comment:       deref(t.Comment),
	}
}

func (r BookingRequest) toSpec() commands.BookingSpec {
	return BookingTerms{
		TransporterId: r.TransporterId,
		ProposedRate:  r.ProposedRate,
		Comment:       r.Comment,
	}.toSpec()
}

func toLoad(l queries.LoadResponse) Load {
	return Load{
		Id:        l.ID.Bytes(),
		ShipperId: l.ShipperID,
		Facility: Facility{
			LoadingPoint:   l.LoadingPoint,
			UnloadingPoint: l.UnloadingPoint,
			LoadingDate:    l.LoadingDate.UTC(),
			UnloadingDate:  l.UnloadingDate.UTC(),
		},
		ProductType: l.ProductType,
		TruckType:   l.TruckType,
		NoOfTrucks:  l.TruckCount,
		Weight:      l.Weight,
		Comment:     optional(l.Comment),
		DatePosted:  l.PostedAt.UTC(),
		Status:      l.Status.String(),
	}
}

func toBooking(b queries.BookingResponse) Booking {
	return Booking{
		Id:            b.ID.Bytes(),
		LoadId:        b.LoadID.Bytes(),
		TransporterId: b.TransporterID,
		ProposedRate:  b.ProposedRate,
		Comment:       optional(b.Comment),
		RequestedAt:   b.RequestedAt.UTC(),
		Status:        b.Status.String(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

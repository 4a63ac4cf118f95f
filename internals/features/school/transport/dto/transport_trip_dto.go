// file: internals/features/school/transport/dto/transport_trip_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/transport/model"
)

type SaveTransportTripRequest struct {
	TransportTripSchoolID uuid.UUID `json:"-"`

	TransportTripRouteName     string  `json:"transport_trip_route_name"             validate:"required,min=1,max=160"`
	TransportTripVehicleNumber string  `json:"transport_trip_vehicle_number"         validate:"required,min=1,max=20"`
	TransportTripDriverName    string  `json:"transport_trip_driver_name"            validate:"required,min=1,max=120"`
	TransportTripDriverPhone   *string `json:"transport_trip_driver_phone,omitempty" validate:"omitempty,max=30"`
	TransportTripCapacity      int     `json:"transport_trip_capacity"               validate:"required,gt=0"`
	TransportTripDepartureTime string  `json:"transport_trip_departure_time"         validate:"required,len=5"`
	TransportTripReturnTime    string  `json:"transport_trip_return_time"            validate:"required,len=5"`
	TransportTripIsActive      *bool   `json:"transport_trip_is_active,omitempty"`
}

func (r *SaveTransportTripRequest) Normalize() {
	r.TransportTripRouteName = strings.TrimSpace(r.TransportTripRouteName)
	r.TransportTripVehicleNumber = strings.ToUpper(strings.TrimSpace(r.TransportTripVehicleNumber))
	r.TransportTripDriverName = strings.TrimSpace(r.TransportTripDriverName)
	if r.TransportTripDriverPhone != nil {
		s := strings.TrimSpace(*r.TransportTripDriverPhone)
		if s == "" {
			r.TransportTripDriverPhone = nil
		} else {
			r.TransportTripDriverPhone = &s
		}
	}
	r.TransportTripDepartureTime = strings.TrimSpace(r.TransportTripDepartureTime)
	r.TransportTripReturnTime = strings.TrimSpace(r.TransportTripReturnTime)
}

// ValidateTimes: jam harus HH:MM valid; error per-field.
func (r *SaveTransportTripRequest) ValidateTimes() map[string]string {
	errs := map[string]string{}
	if _, err := time.Parse("15:04", r.TransportTripDepartureTime); err != nil {
		errs["transport_trip_departure_time"] = "must be HH:MM"
	}
	if _, err := time.Parse("15:04", r.TransportTripReturnTime); err != nil {
		errs["transport_trip_return_time"] = "must be HH:MM"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r *SaveTransportTripRequest) ToModel() *model.TransportTripModel {
	active := true
	if r.TransportTripIsActive != nil {
		active = *r.TransportTripIsActive
	}
	return &model.TransportTripModel{
		TransportTripSchoolID:      r.TransportTripSchoolID,
		TransportTripRouteName:     r.TransportTripRouteName,
		TransportTripVehicleNumber: r.TransportTripVehicleNumber,
		TransportTripDriverName:    r.TransportTripDriverName,
		TransportTripDriverPhone:   r.TransportTripDriverPhone,
		TransportTripCapacity:      r.TransportTripCapacity,
		TransportTripDepartureTime: r.TransportTripDepartureTime,
		TransportTripReturnTime:    r.TransportTripReturnTime,
		TransportTripIsActive:      active,
	}
}

func (r *SaveTransportTripRequest) Apply(m *model.TransportTripModel) {
	m.TransportTripRouteName = r.TransportTripRouteName
	m.TransportTripVehicleNumber = r.TransportTripVehicleNumber
	m.TransportTripDriverName = r.TransportTripDriverName
	m.TransportTripDriverPhone = r.TransportTripDriverPhone
	m.TransportTripCapacity = r.TransportTripCapacity
	m.TransportTripDepartureTime = r.TransportTripDepartureTime
	m.TransportTripReturnTime = r.TransportTripReturnTime
	if r.TransportTripIsActive != nil {
		m.TransportTripIsActive = *r.TransportTripIsActive
	}
}

type TransportTripResponse struct {
	TransportTripID            uuid.UUID `json:"transport_trip_id"`
	TransportTripSchoolID      uuid.UUID `json:"transport_trip_school_id"`
	TransportTripRouteName     string    `json:"transport_trip_route_name"`
	TransportTripVehicleNumber string    `json:"transport_trip_vehicle_number"`
	TransportTripDriverName    string    `json:"transport_trip_driver_name"`
	TransportTripDriverPhone   *string   `json:"transport_trip_driver_phone,omitempty"`
	TransportTripCapacity      int       `json:"transport_trip_capacity"`
	TransportTripDepartureTime string    `json:"transport_trip_departure_time"`
	TransportTripReturnTime    string    `json:"transport_trip_return_time"`
	TransportTripIsActive      bool      `json:"transport_trip_is_active"`
	TransportTripCreatedAt     time.Time `json:"transport_trip_created_at"`
	TransportTripUpdatedAt     time.Time `json:"transport_trip_updated_at"`
}

func NewTransportTripResponse(m *model.TransportTripModel) TransportTripResponse {
	return TransportTripResponse{
		TransportTripID:            m.TransportTripID,
		TransportTripSchoolID:      m.TransportTripSchoolID,
		TransportTripRouteName:     m.TransportTripRouteName,
		TransportTripVehicleNumber: m.TransportTripVehicleNumber,
		TransportTripDriverName:    m.TransportTripDriverName,
		TransportTripDriverPhone:   m.TransportTripDriverPhone,
		TransportTripCapacity:      m.TransportTripCapacity,
		TransportTripDepartureTime: m.TransportTripDepartureTime,
		TransportTripReturnTime:    m.TransportTripReturnTime,
		TransportTripIsActive:      m.TransportTripIsActive,
		TransportTripCreatedAt:     m.TransportTripCreatedAt,
		TransportTripUpdatedAt:     m.TransportTripUpdatedAt,
	}
}

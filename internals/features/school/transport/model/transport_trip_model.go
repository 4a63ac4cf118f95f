// file: internals/features/school/transport/model/transport_trip_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransportTripModel struct {
	TransportTripID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:transport_trip_id" json:"transport_trip_id"`
	TransportTripSchoolID uuid.UUID `gorm:"type:uuid;not null;column:transport_trip_school_id;index:idx_trips_school" json:"transport_trip_school_id"`

	TransportTripRouteName     string  `gorm:"size:160;not null;column:transport_trip_route_name" json:"transport_trip_route_name"`
	TransportTripVehicleNumber string  `gorm:"size:20;not null;column:transport_trip_vehicle_number" json:"transport_trip_vehicle_number"`
	TransportTripDriverName    string  `gorm:"size:120;not null;column:transport_trip_driver_name" json:"transport_trip_driver_name"`
	TransportTripDriverPhone   *string `gorm:"size:30;column:transport_trip_driver_phone" json:"transport_trip_driver_phone,omitempty"`

	TransportTripCapacity int `gorm:"not null;column:transport_trip_capacity" json:"transport_trip_capacity"`

	// Jam keberangkatan / kepulangan, format HH:MM.
	TransportTripDepartureTime string `gorm:"size:5;not null;column:transport_trip_departure_time" json:"transport_trip_departure_time"`
	TransportTripReturnTime    string `gorm:"size:5;not null;column:transport_trip_return_time" json:"transport_trip_return_time"`

	TransportTripIsActive bool `gorm:"not null;default:true;column:transport_trip_is_active" json:"transport_trip_is_active"`

	TransportTripCreatedAt time.Time      `gorm:"column:transport_trip_created_at;autoCreateTime;index:idx_trips_created_at,sort:desc" json:"transport_trip_created_at"`
	TransportTripUpdatedAt time.Time      `gorm:"column:transport_trip_updated_at;autoUpdateTime" json:"transport_trip_updated_at"`
	TransportTripDeletedAt gorm.DeletedAt `gorm:"column:transport_trip_deleted_at;index" json:"transport_trip_deleted_at,omitempty"`
}

func (TransportTripModel) TableName() string { return "transport_trips" }

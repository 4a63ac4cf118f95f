// file: internals/features/school/transport/route/admin_transport_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transportController "sekolahku_backend/internals/features/school/transport/controller"
)

func TransportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := transportController.NewTransportTripController(db)

	trips := r.Group("/transport-trips")
	trips.Get("/", ctrl.ListTrips)
	trips.Post("/", ctrl.CreateTrip)
	trips.Put("/:id", ctrl.UpdateTrip)
	trips.Delete("/:id", ctrl.DeleteTrip)
}

// file: internals/features/finance/fees/route/admin_fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "sekolahku_backend/internals/features/finance/fees/controller"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeeStructureController(db)

	fees := r.Group("/fee-structures")
	fees.Get("/", ctrl.ListFeeStructures)
	fees.Post("/", ctrl.CreateFeeStructure)
	fees.Put("/:id", ctrl.UpdateFeeStructure)
	fees.Delete("/:id", ctrl.DeleteFeeStructure)
}

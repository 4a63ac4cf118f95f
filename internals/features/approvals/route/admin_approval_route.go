// file: internals/features/approvals/route/admin_approval_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	approvalController "sekolahku_backend/internals/features/approvals/controller"
)

func ApprovalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := approvalController.NewApprovalSettingController(db)

	settings := r.Group("/approval-settings")
	settings.Get("/", ctrl.ListSettings)
	settings.Put("/", ctrl.UpsertSetting)
	settings.Patch("/:action/toggle", ctrl.ToggleSetting)
}

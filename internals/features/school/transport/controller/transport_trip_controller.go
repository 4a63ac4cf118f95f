// file: internals/features/school/transport/controller/transport_trip_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/transport/dto"
	model "sekolahku_backend/internals/features/school/transport/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type TransportTripController struct {
	DB *gorm.DB
}

func NewTransportTripController(db *gorm.DB) *TransportTripController {
	return &TransportTripController{DB: db}
}

// GET /api/a/transport-trips
func (ctrl *TransportTripController) ListTrips(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	perPage := listkit.ClampPerPage(c.QueryInt("per_page"))
	cur, err := listkit.DecodeCursor(c.Query("cursor"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.TransportTripModel{}).
		Where("transport_trip_school_id = ?", schoolID)
	if c.QueryBool("active_only") {
		q = q.Where("transport_trip_is_active = TRUE")
	}
	q = listkit.ApplySearch(q, c.Query("search"),
		"transport_trip_route_name", "transport_trip_vehicle_number", "transport_trip_driver_name")
	q = listkit.ApplyCursor(q, "transport_trip_created_at", "transport_trip_id", cur)

	var rows []model.TransportTripModel
	if err := q.
		Order("transport_trip_created_at DESC, transport_trip_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[TRANSPORT] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trip")
	}

	items := make([]dto.TransportTripResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewTransportTripResponse(&rows[i]))
	}
	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.TransportTripCreatedAt, last.TransportTripID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

// POST /api/a/transport-trips
func (ctrl *TransportTripController) CreateTrip(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveTransportTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.TransportTripSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if errs := req.ValidateTimes(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[TRANSPORT] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat trip")
	}
	return helper.JsonCreated(c, "Trip berhasil dibuat", dto.NewTransportTripResponse(m))
}

// PUT /api/a/transport-trips/:id
func (ctrl *TransportTripController) UpdateTrip(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID trip tidak valid")
	}

	var req dto.SaveTransportTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if errs := req.ValidateTimes(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var m model.TransportTripModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("transport_trip_id = ? AND transport_trip_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trip tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trip")
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[TRANSPORT] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui trip")
	}
	return helper.JsonUpdated(c, "Trip berhasil diperbarui", dto.NewTransportTripResponse(&m))
}

// DELETE /api/a/transport-trips/:id
func (ctrl *TransportTripController) DeleteTrip(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID trip tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("transport_trip_id = ? AND transport_trip_school_id = ?", id, schoolID).
		Delete(&model.TransportTripModel{})
	if res.Error != nil {
		log.Printf("[TRANSPORT] delete gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus trip")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Trip tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Trip berhasil dihapus", fiber.Map{"transport_trip_id": id})
}

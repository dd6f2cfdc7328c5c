package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quadroescolar_backend/internals/constants"
	aDTO "quadroescolar_backend/internals/features/attendance/dto"
	aModel "quadroescolar_backend/internals/features/attendance/model"
	"quadroescolar_backend/internals/features/attendance/service"
	eModel "quadroescolar_backend/internals/features/employees/model"
	helper "quadroescolar_backend/internals/helpers"
)

type AttendanceController struct {
	Machine *service.StateMachine
}

func NewAttendanceController(machine *service.StateMachine) *AttendanceController {
	return &AttendanceController{Machine: machine}
}

/* ===================== HANDLERS ===================== */

// POST /occurrences (JSON ou multipart com campo de arquivo "certificate")
func (h *AttendanceController) Register(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}

	var req aDTO.RegisterOccurrenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "employee_id inválido")
	}

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "period_start inválido")
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "period_end inválido")
	}

	kind := aModel.OccurrenceKind(req.Kind)

	// chamador comum não registra atestado acima do limite de dias
	if kind == aModel.KindAtestado && !helper.IsAdmin(c) && periodStart != nil && periodEnd != nil {
		if d := service.LeaveDurationDays(*periodStart, *periodEnd); d > constants.MaxAtestadoDaysNonAdmin {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("Atestado de %d dias excede o limite de %d para este perfil", d, constants.MaxAtestadoDaysNonAdmin))
		}
	}

	var resultingStatus *eModel.EmploymentStatus
	if req.ResultingStatus != nil {
		st := eModel.EmploymentStatus(*req.ResultingStatus)
		resultingStatus = &st
	}

	in := service.RegisterInput{
		EmployeeID:      employeeID,
		Kind:            kind,
		Note:            req.Note,
		ResultingStatus: resultingStatus,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		OwnerID:         ownerID,
	}

	// atestado anexado (opcional, só em multipart)
	if fh, ferr := c.FormFile("certificate"); ferr == nil && fh != nil {
		f, oerr := fh.Open()
		if oerr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Falha ao ler o atestado")
		}
		data, rerr := io.ReadAll(f)
		f.Close()
		if rerr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Falha ao ler o atestado")
		}
		in.Certificate = data
		in.CertificateName = strings.TrimSpace(fh.Filename)
	}

	occ, err := h.Machine.RegisterOccurrence(c.UserContext(), in)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, "Ocorrência registrada", aDTO.NewOccurrenceResponse(occ))
}

// GET /occurrences?date=2006-01-02&school_id=...
func (h *AttendanceController) ListByDate(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}

	date := time.Now()
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		parsed, perr := time.ParseInLocation("2006-01-02", v, time.Local)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date inválida")
		}
		date = parsed
	}

	var schoolID *uuid.UUID
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		parsed, perr := uuid.Parse(v)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "school_id inválido")
		}
		schoolID = &parsed
	}

	rows := h.Machine.ListByDate(c.UserContext(), ownerID, date, schoolID)
	items := make([]*aDTO.OccurrenceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, aDTO.NewOccurrenceResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}

/* ===================== HELPERS ===================== */

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(*s), time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

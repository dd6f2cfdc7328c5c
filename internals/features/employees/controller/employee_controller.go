package controller

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	eDTO "quadroescolar_backend/internals/features/employees/dto"
	eModel "quadroescolar_backend/internals/features/employees/model"
	"quadroescolar_backend/internals/features/employees/service"
	helper "quadroescolar_backend/internals/helpers"
	"quadroescolar_backend/internals/helpers/media"
	"quadroescolar_backend/internals/reconcile"
)

type EmployeeController struct {
	Store    *reconcile.Store[eModel.EmployeeModel]
	Tracker  *service.PlacementTracker
	Uploader *media.Uploader
}

func NewEmployeeController(
	store *reconcile.Store[eModel.EmployeeModel],
	tracker *service.PlacementTracker,
	up *media.Uploader,
) *EmployeeController {
	return &EmployeeController{Store: store, Tracker: tracker, Uploader: up}
}

/* ===================== HANDLERS ===================== */

// GET /employees
func (h *EmployeeController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	rows := h.Store.GetAll(c.UserContext(), ownerID)

	// filtro opcional por unidade
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		schoolID, perr := uuid.Parse(v)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "school_id inválido")
		}
		filtered := rows[:0]
		for i := range rows {
			if rows[i].EmployeeSchoolID != nil && *rows[i].EmployeeSchoolID == schoolID {
				filtered = append(filtered, rows[i])
			}
		}
		rows = filtered
	}

	items := make([]*eDTO.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, eDTO.NewEmployeeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}

// POST /employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}

	var req eDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel(ownerID)
	// create não passa pelo decorator: sem registro anterior não há mudança
	// de lotação a historiar
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o servidor")
	}
	return helper.JsonCreated(c, "Servidor cadastrado", eDTO.NewEmployeeResponse(m))
}

// PUT /employees/:id (passa pelo rastreador de lotação)
func (h *EmployeeController) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req eDTO.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar o servidor")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Servidor não encontrado")
	}

	req.ApplyToModel(m)

	reason := ""
	if req.PlacementReason != nil {
		reason = *req.PlacementReason
	}
	if err := h.Tracker.SaveWithHistory(c.UserContext(), m, ownerID, reason); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o servidor")
	}
	return helper.JsonUpdated(c, "Servidor atualizado", eDTO.NewEmployeeResponse(m))
}

// DELETE /employees/:id
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.Store.Delete(c.UserContext(), id.String()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover o servidor")
	}
	return helper.JsonDeleted(c, "Servidor removido", fiber.Map{"employee_id": id})
}

// POST /employees/:id/photo (multipart, campo "photo")
func (h *EmployeeController) UploadPhoto(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	data, filename, err := readFormFile(c, "photo")
	if err != nil {
		return err
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar o servidor")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Servidor não encontrado")
	}

	// upload primeiro; a referência (URL, inline ou nula) entra no registro
	// antes da persistência
	m.EmployeePhotoURL = h.Uploader.Upload(c.UserContext(), "fotos", filename, data)
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o servidor")
	}
	return helper.JsonUpdated(c, "Foto atualizada", eDTO.NewEmployeeResponse(m))
}

// POST /employees/:id/attachments (multipart, campos "file" e "kind")
func (h *EmployeeController) UploadAttachment(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	data, filename, err := readFormFile(c, "file")
	if err != nil {
		return err
	}
	kind := strings.TrimSpace(c.FormValue("kind"))
	if kind == "" {
		kind = "documento"
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar o servidor")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Servidor não encontrado")
	}

	ref := h.Uploader.Upload(c.UserContext(), "documentos", filename, data)
	if ref == nil {
		// arquivo grande + upload falho: segue sem referência, nada a anexar
		return helper.JsonOK(c, "Upload indisponível, anexo descartado", eDTO.NewEmployeeResponse(m))
	}

	var attachments []eModel.Attachment
	if len(m.EmployeeAttachments) > 0 {
		_ = sonic.Unmarshal(m.EmployeeAttachments, &attachments)
	}
	attachments = append(attachments, eModel.Attachment{
		ID:   uuid.NewString(),
		Name: filename,
		URL:  *ref,
		Kind: kind,
	})
	if b, merr := sonic.Marshal(attachments); merr == nil {
		m.EmployeeAttachments = datatypes.JSON(b)
	}

	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o servidor")
	}
	return helper.JsonUpdated(c, "Anexo adicionado", eDTO.NewEmployeeResponse(m))
}

/* ===================== HELPERS ===================== */

func readFormFile(c *fiber.Ctx, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Arquivo ausente")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Falha ao ler o arquivo")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Falha ao ler o arquivo")
	}
	return data, strings.TrimSpace(fh.Filename), nil
}

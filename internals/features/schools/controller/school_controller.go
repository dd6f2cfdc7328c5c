package controller

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	sDTO "quadroescolar_backend/internals/features/schools/dto"
	sModel "quadroescolar_backend/internals/features/schools/model"
	"quadroescolar_backend/internals/features/schools/service"
	helper "quadroescolar_backend/internals/helpers"
	"quadroescolar_backend/internals/helpers/media"
	"quadroescolar_backend/internals/reconcile"
)

type SchoolController struct {
	Store    *reconcile.Store[sModel.SchoolModel]
	Uploader *media.Uploader
}

func NewSchoolController(store *reconcile.Store[sModel.SchoolModel], up *media.Uploader) *SchoolController {
	return &SchoolController{Store: store, Uploader: up}
}

/* ===================== HANDLERS ===================== */

// GET /schools
func (h *SchoolController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	rows := h.Store.GetAll(c.UserContext(), ownerID)
	items := make([]*sDTO.SchoolResponse, 0, len(rows))
	for i := range rows {
		items = append(items, sDTO.NewSchoolResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}

// POST /schools
func (h *SchoolController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}

	var req sDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel(ownerID)
	service.EnsureAccessCodes(m)
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar a unidade escolar")
	}
	return helper.JsonCreated(c, "Unidade escolar criada", sDTO.NewSchoolResponse(m))
}

// PUT /schools/:id
func (h *SchoolController) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req sDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar a unidade")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Unidade escolar não encontrada")
	}

	req.ApplyToModel(m)
	service.EnsureAccessCodes(m)
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar a unidade escolar")
	}
	return helper.JsonUpdated(c, "Unidade escolar atualizada", sDTO.NewSchoolResponse(m))
}

// DELETE /schools/:id
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.Store.Delete(c.UserContext(), id.String()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover a unidade escolar")
	}
	return helper.JsonDeleted(c, "Unidade escolar removida", fiber.Map{"school_id": id})
}

// POST /schools/:id/codes/regenerate
func (h *SchoolController) RegenerateCodes(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar a unidade")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Unidade escolar não encontrada")
	}

	service.RegenerateAccessCodes(m)
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao regravar as credenciais")
	}
	return helper.JsonUpdated(c, "Credenciais regeneradas", sDTO.NewSchoolResponse(m))
}

// POST /schools/:id/logo (multipart, campo "logo")
func (h *SchoolController) UploadLogo(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Arquivo de logo ausente")
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falha ao ler o arquivo")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falha ao ler o arquivo")
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar a unidade")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Unidade escolar não encontrada")
	}

	// referência primeiro, persistência depois; sem referência o save segue
	ref := h.Uploader.Upload(c.UserContext(), "logos", strings.TrimSpace(fh.Filename), data)
	m.SchoolLogoURL = ref
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar a unidade escolar")
	}
	return helper.JsonUpdated(c, "Logo atualizada", sDTO.NewSchoolResponse(m))
}

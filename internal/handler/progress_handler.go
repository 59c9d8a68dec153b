package handler

import (
	"bytes"
	"fmt"

	"sirup-monitor/internal/format"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	state *usecase.StateUsecase
}

func NewProgressHandler(state *usecase.StateUsecase) *ProgressHandler {
	return &ProgressHandler{state: state}
}

type progressView struct {
	model.ProgressRecord
	Name string `json:"name"`
}

// GetAll: ADMIN_OPD hanya melihat record OPD-nya sendiri.
func (h *ProgressHandler) GetAll(c *fiber.Ctx) error {
	s := h.state.Snapshot()
	onlyOwn := localRole(c) == model.RoleAdminOPD

	data := make([]progressView, 0, len(s.Progress))
	for _, p := range s.Progress {
		if onlyOwn && p.OpdID != localOpdID(c) {
			continue
		}
		data = append(data, progressView{ProgressRecord: p, Name: model.OPDName(s.OPDs, p.OpdID)})
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	opdID := c.Params("opdId")
	if localRole(c) == model.RoleAdminOPD && opdID != localOpdID(c) {
		return fail(c, fmt.Errorf("hanya boleh mengubah progres OPD sendiri: %w", usecase.ErrForbidden), "")
	}

	var req usecase.ProgressPatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	rec, res, err := h.state.UpdateProgress(c.UserContext(), opdID, req)
	if err != nil {
		return fail(c, err, "Gagal menyimpan progres")
	}
	return saved(c, "Progres berhasil disimpan", rec, res)
}

// Import menerima file CSV (form field "file").
func (h *ProgressHandler) Import(c *fiber.Ctx) error {
	if localRole(c) == model.RoleAdminOPD {
		return fail(c, fmt.Errorf("impor massal hanya untuk admin PBJ: %w", usecase.ErrForbidden), "")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File CSV wajib diupload"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format file tidak didukung atau rusak."})
	}
	defer f.Close()

	count, res, err := h.state.ImportCSV(c.UserContext(), f)
	if err != nil {
		return fail(c, err, "Gagal mengimpor data progres")
	}
	return saved(c, fmt.Sprintf("Berhasil mengimpor data progres untuk %d OPD.", count), fiber.Map{"count": count}, res)
}

// Export mengunduh template CSV berisi data progres saat ini.
func (h *ProgressHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.state.ExportCSV(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat file CSV"})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(format.TemplateFileName)
	return c.Send(buf.Bytes())
}

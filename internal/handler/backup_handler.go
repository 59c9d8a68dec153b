package handler

import (
	"bytes"
	"time"

	"sirup-monitor/internal/format"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type BackupHandler struct {
	state *usecase.StateUsecase
}

func NewBackupHandler(state *usecase.StateUsecase) *BackupHandler {
	return &BackupHandler{state: state}
}

// Backup mengunduh seluruh database (OPD, progres, berita, user, pengaturan) sebagai JSON.
func (h *BackupHandler) Backup(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.state.Backup(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat file backup."})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Attachment(format.BackupFileName(time.Now()))
	return c.Send(buf.Bytes())
}

// Restore menerima file backup (form field "file") atau body JSON langsung.
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	body := c.Body()
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File backup tidak dapat dibaca"})
		}
		defer f.Close()

		res, err := h.state.Restore(c.UserContext(), f)
		if err != nil {
			return fail(c, err, "Gagal memulihkan data")
		}
		return saved(c, "Database berhasil dipulihkan", nil, res)
	}

	res, err := h.state.Restore(c.UserContext(), bytes.NewReader(body))
	if err != nil {
		return fail(c, err, "Gagal memulihkan data")
	}
	return saved(c, "Database berhasil dipulihkan", nil, res)
}

func (h *BackupHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.state.Snapshot().Settings})
}

func (h *BackupHandler) UpdateSettings(c *fiber.Ctx) error {
	var req model.SystemSettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	res, err := h.state.UpdateSettings(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Gagal menyimpan pengaturan")
	}
	return saved(c, "Pengaturan berhasil disimpan", req, res)
}

package handler

import (
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type NewsHandler struct {
	state *usecase.StateUsecase
}

func NewNewsHandler(state *usecase.StateUsecase) *NewsHandler {
	return &NewsHandler{state: state}
}

func (h *NewsHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.state.Snapshot().News})
}

func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req model.NewsItem
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	req.ID = ""

	news, res, err := h.state.UpsertNews(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Gagal membuat berita")
	}
	return saved(c, "Berita berhasil dibuat", news, res)
}

func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	exists := false
	for _, n := range h.state.Snapshot().News {
		if n.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Berita tidak ditemukan"})
	}

	var req model.NewsItem
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	req.ID = id

	news, res, err := h.state.UpsertNews(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Gagal update berita")
	}
	return saved(c, "Berita berhasil diperbarui", news, res)
}

func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	res, err := h.state.DeleteNews(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Gagal menghapus berita")
	}
	return saved(c, "Berita berhasil dihapus", nil, res)
}

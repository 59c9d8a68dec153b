package handler

import (
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type OPDHandler struct {
	state *usecase.StateUsecase
}

func NewOPDHandler(state *usecase.StateUsecase) *OPDHandler {
	return &OPDHandler{state: state}
}

func (h *OPDHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.state.Snapshot().OPDs})
}

func (h *OPDHandler) GetByID(c *fiber.Ctx) error {
	opd, ok := h.state.Snapshot().FindOPD(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "OPD tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": opd})
}

type OPDRequest struct {
	Name      string       `json:"name"`
	PaguMurni model.Number `json:"paguMurni"`
}

func (h *OPDHandler) Create(c *fiber.Ctx) error {
	var req OPDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	opd, res, err := h.state.UpsertOPD(c.UserContext(), model.OPD{Name: req.Name, PaguMurni: float64(req.PaguMurni)})
	if err != nil {
		return fail(c, err, "Gagal menambah OPD")
	}
	return saved(c, "OPD berhasil ditambahkan", opd, res)
}

func (h *OPDHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.state.Snapshot().FindOPD(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "OPD tidak ditemukan"})
	}

	var req OPDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	opd, res, err := h.state.UpsertOPD(c.UserContext(), model.OPD{ID: id, Name: req.Name, PaguMurni: float64(req.PaguMurni)})
	if err != nil {
		return fail(c, err, "Gagal update OPD")
	}
	return saved(c, "OPD berhasil diperbarui", opd, res)
}

func (h *OPDHandler) Delete(c *fiber.Ctx) error {
	res, err := h.state.DeleteOPD(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Gagal menghapus OPD")
	}
	return saved(c, "OPD berhasil dihapus", nil, res)
}

package handler

import (
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	state *usecase.StateUsecase
	auth  *usecase.AuthUsecase
}

func NewUserHandler(state *usecase.StateUsecase, auth *usecase.AuthUsecase) *UserHandler {
	return &UserHandler{state: state, auth: auth}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	token, user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return fail(c, err, "Gagal login")
	}

	return c.JSON(fiber.Map{
		"message": "Login Berhasil!",
		"token":   token,
		"data":    user,
	})
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.state.Snapshot().Users})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req model.User
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	req.ID = ""

	user, res, err := h.state.UpsertUser(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Gagal membuat user")
	}
	return saved(c, "User berhasil dibuat", user, res)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	exists := false
	for _, u := range h.state.Snapshot().Users {
		if u.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	var req model.User
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	req.ID = id

	user, res, err := h.state.UpsertUser(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Gagal update user")
	}
	return saved(c, "User berhasil diperbarui", user, res)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if current, _ := c.Locals("user_id").(string); current == id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak dapat menghapus akun yang sedang dipakai"})
	}

	res, err := h.state.DeleteUser(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "Gagal menghapus user")
	}
	return saved(c, "User berhasil dihapus", nil, res)
}

package handler

import (
	"errors"

	"sirup-monitor/internal/bulk"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/repository"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// fail memetakan error usecase ke status HTTP. Pesan ditampilkan apa adanya ke user.
func fail(c *fiber.Ctx, err error, fallback string) error {
	status := fiber.StatusInternalServerError
	msg := fallback

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, bulk.ErrNoValidData),
		errors.Is(err, bulk.ErrUnreadableFile),
		errors.Is(err, bulk.ErrInvalidBackup):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrDuplicate):
		status, msg = fiber.StatusConflict, err.Error()
	case errors.Is(err, usecase.ErrForbidden):
		status, msg = fiber.StatusForbidden, err.Error()
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status, msg = fiber.StatusUnauthorized, err.Error()
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func saved(c *fiber.Ctx, message string, data interface{}, res repository.SaveResult) error {
	return c.JSON(fiber.Map{
		"message":       message,
		"data":          data,
		"remote_synced": res.RemoteSynced,
	})
}

func localRole(c *fiber.Ctx) model.Role {
	role, _ := c.Locals("role").(string)
	return model.Role(role)
}

func localOpdID(c *fiber.Ctx) string {
	id, _ := c.Locals("opd_id").(string)
	return id
}

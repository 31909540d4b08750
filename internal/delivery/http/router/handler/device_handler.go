package handler

import (
	"log/slog"
	"net/http"

	"punchsync/internal/delivery/http/response"
	"punchsync/internal/domain/repository"
	"punchsync/internal/errors"
	"punchsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// ListDevices handles listing every active device in the registry.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	devices, err := h.deviceUC.ListActiveDevices(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list devices", slog.Any("error", err))

		return response.InternalServerError(c, "DEVICE_LIST_FAILED", "Unable to list devices")
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved")
}

// GetDevice handles retrieving one device by id.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
		}
		h.logger.Error("Failed to get device", slog.Any("error", err))

		return response.InternalServerError(c, "DEVICE_GET_FAILED", "Unable to get device")
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved")
}

// TestConnection handles a live connectivity probe against a terminal.
func (h *DeviceHandler) TestConnection(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	probe, err := h.deviceUC.TestConnection(c.Request().Context(), deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
		}
		h.logger.Warn("Device probe failed", slog.Any("error", err))

		return response.BadGateway(c, "DEVICE_UNREACHABLE", "Device did not answer the probe")
	}

	return response.Success(c, http.StatusOK, probe, "Device probe succeeded")
}

// Package handler contains the HTTP handlers for the sync API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"punchsync/internal/delivery/http/response"
	"punchsync/internal/domain/repository"
	"punchsync/internal/errors"
	"punchsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultLogLimit = 50

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// SyncHandler holds dependencies for sync-related handlers
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// SyncAll triggers a sync across every active device. The aggregate result
// is returned whether or not individual devices failed.
func (h *SyncHandler) SyncAll(c echo.Context) error {
	opts := usecase.SyncOptions{
		ClearAfterSync: parseBoolQuery(c, "clear"),
	}

	fleet, err := h.syncUC.SyncAll(c.Request().Context(), opts)
	if err != nil {
		h.logger.Error("Fleet sync failed before reaching any device", slog.Any("error", err))

		return response.InternalServerError(c, "FLEET_SYNC_FAILED", "Unable to run fleet sync")
	}

	return response.Success(c, http.StatusOK, fleet, "Fleet sync finished")
}

// SyncOne triggers a sync for a single device by id.
func (h *SyncHandler) SyncOne(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	opts := usecase.SyncOptions{
		ClearAfterSync: parseBoolQuery(c, "clear"),
	}

	result, err := h.syncUC.SyncOne(c.Request().Context(), deviceID, opts)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
		}
		h.logger.Error("Device sync failed before reaching the device", slog.Any("error", err))

		return response.InternalServerError(c, "SYNC_FAILED", "Unable to run device sync")
	}

	return response.Success(c, http.StatusOK, result, "Device sync finished")
}

// RecentLogs lists the newest sync audit rows, optionally filtered by device.
func (h *SyncHandler) RecentLogs(c echo.Context) error {
	var deviceID *uuid.UUID
	if raw := c.QueryParam("device_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
		}
		deviceID = &id
	}

	limit := defaultLogLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit")
		}
		limit = parsed
	}

	logs, err := h.syncUC.RecentLogs(c.Request().Context(), deviceID, limit)
	if err != nil {
		h.logger.Error("Failed to list sync logs", slog.Any("error", err))

		return response.InternalServerError(c, "SYNC_LOGS_FAILED", "Unable to list sync logs")
	}

	return response.Success(c, http.StatusOK, logs, "Sync logs retrieved")
}

func parseBoolQuery(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))

	return err == nil && value
}

package handler

import (
	"net/http"
	"testing"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("registers web device", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/devices",
			jsonBody(`{"fcm_token":"tok","device_id":"browser-1","platform":"web","app_version":"1.0.3"}`), &userID)

		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.DeviceRegistration{
				FCMToken: "tok", DeviceID: "browser-1", Platform: "web", AppVersion: "1.0.3",
			}).
			Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, Platform: entity.PlatformWeb, IsActive: true}, nil)

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/devices",
			jsonBody(`{"fcm_token":"tok","device_id":"d","platform":"symbian"}`), &userID)

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/devices",
			jsonBody(`{"fcm_token":"tok","device_id":"d","platform":"ios"}`), nil)

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("not owned", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodDelete, "/api/v1/me/devices/"+deviceID.String(), nil, &userID)
		c.SetParamNames("id")
		c.SetParamValues(deviceID.String())

		deviceUC.EXPECT().
			DeactivateDevice(mock.Anything, userID, deviceID).
			Return(errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found"))

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DEVICE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodDelete, "/api/v1/me/devices/nope", nil, &userID)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

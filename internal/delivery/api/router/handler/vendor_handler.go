package handler

import (
	"net/http"
	"strings"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC  usecase.VendorUsecase
	ProductUC usecase.ProductUsecase
}

// VendorHandler serves storefronts and their product catalogues.
type VendorHandler struct {
	vendorUC  usecase.VendorUsecase
	productUC usecase.ProductUsecase
}

func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC:  params.VendorUC,
		productUC: params.ProductUC,
	}
}

// SuspendVendorRequest carries the moderation reason shown to the owner.
type SuspendVendorRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// InventoryRequest adjusts stock by a signed delta.
type InventoryRequest struct {
	Delta int `json:"delta" validate:"required,ne=0"`
}

func (h *VendorHandler) RegisterVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.VendorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	vendor, err := h.vendorUC.RegisterVendor(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vendor)
}

func (h *VendorHandler) GetMyVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vendor, err := h.vendorUC.GetMyVendor(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

func (h *VendorHandler) UpdateMyVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.VendorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	vendor, err := h.vendorUC.UpdateVendor(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	vendor, err := h.vendorUC.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// ListVendors defaults to approved vendors; admins may pass ?status=.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	status := entity.VendorStatusApproved
	if raw := strings.ToUpper(c.QueryParam("status")); raw != "" {
		if actor, ok := middleware.GetActor(c); ok && actor.IsAdmin() {
			status = entity.VendorStatus(raw)
		}
	}

	vendors, err := h.vendorUC.ListVendors(c.Request().Context(), status, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, vendors, limit, offset)
}

func (h *VendorHandler) ApproveVendor(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	vendor, err := h.vendorUC.ApproveVendor(c.Request().Context(), actor, vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

func (h *VendorHandler) SuspendVendor(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	var req SuspendVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suspension input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	vendor, err := h.vendorUC.SuspendVendor(c.Request().Context(), actor, vendorID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

func (h *VendorHandler) FollowVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.vendorUC.FollowVendor(c.Request().Context(), userID, vendorID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Vendor followed"))
}

func (h *VendorHandler) UnfollowVendor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.vendorUC.UnfollowVendor(c.Request().Context(), userID, vendorID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Products

func (h *VendorHandler) ListProducts(c echo.Context) error {
	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), vendorID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, products, limit, offset)
}

func (h *VendorHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *VendorHandler) CreateProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

func (h *VendorHandler) UpdateProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), userID, productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *VendorHandler) DeleteProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *VendorHandler) PublishProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.PublishProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *VendorHandler) UpdateInventory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req InventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	quantity, err := h.productUC.UpdateInventoryQuantity(c.Request().Context(), userID, productID, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product_id":         productID,
		"inventory_quantity": quantity,
	})
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fishstall-api/internal/api/handler/v1/request"
	"fishstall-api/internal/api/handler/v1/response"
	"fishstall-api/internal/domain"
	"fishstall-api/internal/service"
)

type CatalogService interface {
	ListItems(ctx context.Context, cat domain.Category) ([]domain.Item, error)
	ListUpdatedToday(ctx context.Context, cat domain.Category) ([]domain.Item, error)
	CreateItem(ctx context.Context, cat domain.Category, item domain.Item) (domain.Item, error)
	UpdatePrice(ctx context.Context, cat domain.Category, id uint, price float64) (domain.Item, error)
	DeleteItem(ctx context.Context, cat domain.Category, id uint) error
	GetPriceHistory(ctx context.Context, cat domain.Category, itemID uint) ([]domain.PriceHistoryRecord, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

func categoryFromPath(ctx *gin.Context) (domain.Category, *response.Err) {
	slug := ctx.Param("category")

	cat, ok := domain.CategoryBySlug(slug)
	if !ok {
		return domain.Category{}, response.ErrNotFound("category", "slug", slug)
	}

	return cat, nil
}

func itemIDFromPath(ctx *gin.Context) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid item ID: %w", err))
	}

	return uint(id), nil
}

// HandleListItems godoc
// @Summary      List all items in a category
// @Tags         catalog
// @Produce      json
// @Param        category  path      string  true  "Category slug"
// @Success      200  {array}   domain.Item
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{category} [get]
func (h *CatalogHandler) HandleListItems(ctx *gin.Context) {
	cat, respErr := categoryFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	items, err := h.svc.ListItems(ctx.Request.Context(), cat)
	if err != nil {
		err = fmt.Errorf("HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleListUpdatedToday godoc
// @Summary      List items whose price changed today
// @Tags         catalog
// @Produce      json
// @Param        category  path      string  true  "Category slug"
// @Success      200  {array}   domain.Item
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{category}/updated_today [get]
func (h *CatalogHandler) HandleListUpdatedToday(ctx *gin.Context) {
	cat, respErr := categoryFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	items, err := h.svc.ListUpdatedToday(ctx.Request.Context(), cat)
	if err != nil {
		err = fmt.Errorf("HandleListUpdatedToday -> h.svc.ListUpdatedToday -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleCreateItem godoc
// @Summary      Add an item to a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        category  path      string                     true  "Category slug"
// @Param        input     body      request.CreateItemRequest  true  "Item details"
// @Success      201  {object}  domain.Item
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{category} [post]
func (h *CatalogHandler) HandleCreateItem(ctx *gin.Context) {
	cat, respErr := categoryFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("Name and price are required")))
		return
	}

	item := domain.Item{
		Name:  input.Name,
		Price: input.Price,
	}

	createdItem, err := h.svc.CreateItem(ctx.Request.Context(), cat, item)
	if err != nil {
		if errors.Is(err, service.ErrItemNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrItemNameExists))
			return
		}

		err = fmt.Errorf("HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, createdItem)
}

// HandleUpdatePrice godoc
// @Summary      Update an item's price
// @Description  Sets a new price and appends a price-history record.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        category  path      string                      true  "Category slug"
// @Param        id        path      int                         true  "Item ID"
// @Param        input     body      request.UpdatePriceRequest  true  "New price"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{category}/{id}/price [post]
func (h *CatalogHandler) HandleUpdatePrice(ctx *gin.Context) {
	cat, respErr := categoryFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := itemIDFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.UpdatePriceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.UpdatePrice(ctx.Request.Context(), cat, id, input.Price); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdatePrice -> h.svc.UpdatePrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Success())
}

// HandleDeleteItem godoc
// @Summary      Delete an item
// @Description  Idempotent; deleting an absent item still succeeds. Price
// @Description  history rows for the item are kept.
// @Tags         catalog
// @Produce      json
// @Param        category  path      string  true  "Category slug"
// @Param        id        path      int     true  "Item ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{category}/{id} [delete]
func (h *CatalogHandler) HandleDeleteItem(ctx *gin.Context) {
	cat, respErr := categoryFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := itemIDFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteItem(ctx.Request.Context(), cat, id); err != nil {
		err = fmt.Errorf("HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Success())
}

// HandleGetPriceHistory godoc
// @Summary      List the price history of an item
// @Tags         catalog
// @Produce      json
// @Param        category  path      string  true  "Category slug"
// @Param        id        path      int     true  "Item ID"
// @Success      200  {array}   domain.PriceHistoryRecord
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{category}/{id}/history [get]
func (h *CatalogHandler) HandleGetPriceHistory(ctx *gin.Context) {
	cat, respErr := categoryFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := itemIDFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	records, err := h.svc.GetPriceHistory(ctx.Request.Context(), cat, id)
	if err != nil {
		err = fmt.Errorf("HandleGetPriceHistory -> h.svc.GetPriceHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

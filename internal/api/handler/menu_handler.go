package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cedarhouse/restaurant-api/internal/api/metrics"
	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

const reasonMenuFields = "Name and price are required"

type MenuHandler struct {
	menuService ports.MenuService
}

func NewMenuHandler(menuService ports.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type menuItemRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type menuItemResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Item    *domain.MenuItemView `json:"item,omitempty"`
}

// List returns every menu item across all categories.
//
// @Summary      List menu
// @Tags         menu
// @Produce      json
// @Success      200  {array}   domain.MenuItemView
// @Failure      500  {object}  map[string]string
// @Router       /api/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menuService.List(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]domain.MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, item.View())
	}
	return c.JSON(http.StatusOK, views)
}

// Create adds an item to the category named by :table.
//
// @Summary      Add menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        table  path      string           true  "main, appetizers, sauces or beverages"
// @Param        body   body      menuItemRequest  true  "Item"
// @Success      201    {object}  menuItemResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/menu/{table} [post]
func (h *MenuHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	table := c.Param("table")
	if _, err := domain.ParseCategory(table); err != nil {
		return err
	}

	var req menuItemRequest
	if err := bindAndValidate(c, &req, reasonMenuFields); err != nil {
		return err
	}

	item, err := h.menuService.Create(c.Request().Context(), ports.MenuItemInput{
		Table:   table,
		Name:    req.Name,
		Price:   req.Price,
		ActorID: actor,
	})
	if err != nil {
		return err
	}

	metrics.MenuMutationsTotal.WithLabelValues(table, "create").Inc()
	view := item.View()
	return c.JSON(http.StatusCreated, menuItemResponse{Success: true, Message: "Item added", Item: &view})
}

// Update replaces name and price of one item.
//
// @Summary      Update menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        table  path      string           true  "main, appetizers, sauces or beverages"
// @Param        id     path      int              true  "Item id"
// @Param        body   body      menuItemRequest  true  "Item"
// @Success      200    {object}  menuItemResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/menu/{table}/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	table := c.Param("table")
	if _, err := domain.ParseCategory(table); err != nil {
		return err
	}

	var req menuItemRequest
	if err := bindAndValidate(c, &req, reasonMenuFields); err != nil {
		return err
	}

	id, ok := pathID(c)
	if !ok {
		return domain.ErrMenuItemNotFound
	}

	item, err := h.menuService.Update(c.Request().Context(), ports.MenuItemInput{
		Table:   table,
		ID:      id,
		Name:    req.Name,
		Price:   req.Price,
		ActorID: actor,
	})
	if err != nil {
		return err
	}

	metrics.MenuMutationsTotal.WithLabelValues(table, "update").Inc()
	view := item.View()
	return c.JSON(http.StatusOK, menuItemResponse{Success: true, Message: "Item updated", Item: &view})
}

// Delete removes one item.
//
// @Summary      Delete menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        table  path      string  true  "main, appetizers, sauces or beverages"
// @Param        id     path      int     true  "Item id"
// @Success      200    {object}  menuItemResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/menu/{table}/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	table := c.Param("table")
	if _, err := domain.ParseCategory(table); err != nil {
		return err
	}

	id, ok := pathID(c)
	if !ok {
		return domain.ErrMenuItemNotFound
	}

	if err := h.menuService.Delete(c.Request().Context(), table, id, actor); err != nil {
		return err
	}

	metrics.MenuMutationsTotal.WithLabelValues(table, "delete").Inc()
	return c.JSON(http.StatusOK, menuItemResponse{Success: true, Message: "Item deleted"})
}

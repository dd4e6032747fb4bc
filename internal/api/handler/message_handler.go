package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cedarhouse/restaurant-api/internal/api/metrics"
	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type createMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type updateMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List returns the guestbook, newest first.
//
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Success      200  {array}   domain.Message
// @Failure      500  {object}  map[string]string
// @Router       /api/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	msgs, err := h.messageService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return c.JSON(http.StatusOK, msgs)
}

// Create stores a guestbook message. No authentication is required.
//
// @Summary      Leave a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      createMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  map[string]string
// @Router       /api/messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req createMessageRequest
	if err := bindAndValidate(c, &req, "All fields are required"); err != nil {
		return err
	}

	msg, err := h.messageService.Create(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return err
	}

	metrics.MessagesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// @Summary      Edit a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Message id"
// @Param        body  body      updateMessageRequest  true  "New text"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/messages/{id} [put]
func (h *MessageHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req updateMessageRequest
	if err := bindAndValidate(c, &req, "Message content is required"); err != nil {
		return err
	}

	id, ok := pathID(c)
	if !ok {
		return domain.ErrMessageNotFound
	}

	if err := h.messageService.Update(c.Request().Context(), id, req.Message, actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Message updated"})
}

// @Summary      Delete a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Message id"
// @Success      200 {object}  successResponse
// @Failure      404 {object}  map[string]string
// @Router       /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, ok := pathID(c)
	if !ok {
		return domain.ErrMessageNotFound
	}

	if err := h.messageService.Delete(c.Request().Context(), id, actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Message deleted"})
}

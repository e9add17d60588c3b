package client_cart

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/cart"
)

const (
	msgUnauthorized       = "Faca login para continuar."
	msgInvalidRequestBody = "Dados invalidos."
	msgInvalidService     = "Servico invalido."
	msgAdded              = "Servico adicionado ao carrinho."
	msgUpdated            = "Carrinho atualizado."
	msgCleared            = "Carrinho limpo."
)

// Handler операции с корзиной текущего клиента
type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/client/cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /client/cart - Failed to get cart: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// CountResponse количество единиц в корзине
type CountResponse struct {
	Count int `json:"count"`
}

// Count GET /api/v1/client/cart/count
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	count, err := h.service.Count(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /client/cart/count - Failed to count cart: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CountResponse{Count: count})
}

// Add POST /api/v1/client/cart/items
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /client/cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	summary, err := h.service.Add(r.Context(), userID, req.ServiceID)
	if err != nil {
		if errors.Is(err, cart.ErrServiceNotFound) {
			h.logger.Warn("POST /client/cart/items - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgInvalidService)
			return
		}
		h.logger.Error("POST /client/cart/items - Failed to add item: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /client/cart/items - Item added: user_id=%s, service_id=%s", userID, req.ServiceID)
	handlers.RespondSuccess(w, http.StatusOK, msgAdded, summary)
}

// Remove DELETE /api/v1/client/cart/items/{serviceId}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	serviceID := mux.Vars(r)["serviceId"]

	summary, err := h.service.Remove(r.Context(), userID, serviceID)
	if err != nil {
		h.logger.Error("DELETE /client/cart/items/{id} - Failed to remove item: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, msgUpdated, summary)
}

// Clear POST /api/v1/client/cart/clear
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.logger.Error("POST /client/cart/clear - Failed to clear cart: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, msgCleared, nil)
}

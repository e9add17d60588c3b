package client_cart

// AddItemRequest добавление услуги в корзину
type AddItemRequest struct {
	ServiceID string `json:"serviceId"`
}

package set_reservation_status

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // pending | confirmed | cancelled | completed
}

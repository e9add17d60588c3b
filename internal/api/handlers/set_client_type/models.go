package set_client_type

// SetClientTypeRequest HTTP request model
type SetClientTypeRequest struct {
	ClientType string `json:"clientType"` // prepaid | postpaid
}

package domain

import "strings"

// ClientTypeOf is postpaid only when explicitly marked so
func ClientTypeOf(u *User) ClientType {
	if u != nil && u.ClientType == ClientTypePostpaid {
		return ClientTypePostpaid
	}
	return ClientTypePrepaid
}

// FilterClients keeps clients whose name, email or phone contains query (case-insensitive).
// An empty query returns all clients.
func FilterClients(users []User, query string) []User {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]User, 0, len(users))
	for _, u := range users {
		if !u.IsClient() {
			continue
		}
		if q == "" || matchesClient(u, q) {
			result = append(result, u)
		}
	}
	return result
}

func matchesClient(u User, q string) bool {
	for _, field := range []string{u.Name, u.Email, u.Phone} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// ClientCounts totals used in the client listing export
type ClientCounts struct {
	Total    int `json:"total"`
	Prepaid  int `json:"prepaid"`
	Postpaid int `json:"postpaid"`
}

// CountClients splits clients by payment type
func CountClients(clients []User) ClientCounts {
	counts := ClientCounts{Total: len(clients)}
	for i := range clients {
		if ClientTypeOf(&clients[i]) == ClientTypePostpaid {
			counts.Postpaid++
		} else {
			counts.Prepaid++
		}
	}
	return counts
}

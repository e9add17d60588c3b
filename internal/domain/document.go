package domain

import "strings"

// Document is the whole application state persisted as one unit
type Document struct {
	Users        []User        `json:"users"`
	Services     []Service     `json:"services"`
	Staff        []Staff       `json:"staff"`
	Reservations []Reservation `json:"reservations"`
	Payments     []Payment     `json:"payments"`
	Debts        []Debt        `json:"debts"`
}

// NewDocument returns a document with empty collections
func NewDocument() *Document {
	doc := &Document{}
	doc.EnsureCollections()
	return doc
}

// EnsureCollections replaces nil collections with empty ones so they serialize as []
func (d *Document) EnsureCollections() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Services == nil {
		d.Services = []Service{}
	}
	if d.Staff == nil {
		d.Staff = []Staff{}
	}
	if d.Reservations == nil {
		d.Reservations = []Reservation{}
	}
	if d.Payments == nil {
		d.Payments = []Payment{}
	}
	if d.Debts == nil {
		d.Debts = []Debt{}
	}
}

// Поиск возвращает указатель на элемент слайса, изменения видны в документе

func (d *Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindClient returns the user only if it has the client role
func (d *Document) FindClient(id string) *User {
	user := d.FindUser(id)
	if user == nil || !user.IsClient() {
		return nil
	}
	return user
}

// FindUserByEmail matches email case-insensitively
func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if strings.EqualFold(d.Users[i].Email, email) {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindService(id string) *Service {
	for i := range d.Services {
		if d.Services[i].ID == id {
			return &d.Services[i]
		}
	}
	return nil
}

func (d *Document) FindStaff(id string) *Staff {
	for i := range d.Staff {
		if d.Staff[i].ID == id {
			return &d.Staff[i]
		}
	}
	return nil
}

func (d *Document) FindReservation(id string) *Reservation {
	for i := range d.Reservations {
		if d.Reservations[i].ID == id {
			return &d.Reservations[i]
		}
	}
	return nil
}

func (d *Document) FindDebt(id string) *Debt {
	for i := range d.Debts {
		if d.Debts[i].ID == id {
			return &d.Debts[i]
		}
	}
	return nil
}

// RemoveService deletes a service by id and reports whether it existed
func (d *Document) RemoveService(id string) bool {
	for i := range d.Services {
		if d.Services[i].ID == id {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return true
		}
	}
	return false
}

// Clients returns users with the client role
func (d *Document) Clients() []User {
	clients := make([]User, 0, len(d.Users))
	for _, u := range d.Users {
		if u.IsClient() {
			clients = append(clients, u)
		}
	}
	return clients
}

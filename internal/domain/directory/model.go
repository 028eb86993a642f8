package directory

import "strings"

// User es un usuario del sistema (dueño). Solo lectura.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Address       string `json:"address,omitempty"`
}

// DisplayName: "Nombre Apellido", o username si no hay nombre.
func (u User) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	return u.Username
}

// Pet es una mascota registrada. Solo lectura.
type Pet struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species,omitempty"`
	Breed       string `json:"breed,omitempty"`
	Color       string `json:"color,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	OwnerID     int64  `json:"owner_id,omitempty"`
	OwnerName   string `json:"owner_name,omitempty"`
}

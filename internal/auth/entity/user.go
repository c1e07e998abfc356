package entity

import "time"

// User is the public account projection returned to clients.
type User struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Mobile           string    `json:"mobile"`
	IsAuthenticated  bool      `json:"is_authenticated"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Credential is the durable account record: the User projection plus the
// stored password. The password never leaves the outbound layer.
type Credential struct {
	User
	Password string `json:"password"`
}

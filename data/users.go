package data

import (
	"time"

	"bookrental/model"
	"bookrental/util/hash"
)

type seedUser struct {
	user     model.User
	password string
}

func sampleUsers() []seedUser {
	return []seedUser{
		{
			user: model.User{
				ID: "1", Email: "john.doe@example.com",
				FirstName: "John", LastName: "Doe",
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:  true,
			},
			password: "password123",
		},
		{
			user: model.User{
				ID: "2", Email: "jane.smith@example.com",
				FirstName: "Jane", LastName: "Smith",
				CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				IsActive:  true,
			},
			password: "password123",
		},
		{
			user: model.User{
				ID: "3", Email: "admin@library.com",
				FirstName: "Library", LastName: "Admin",
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:  true,
			},
			password: "admin123",
		},
	}
}

// SampleUsers hashes the demo passwords at startup, mirroring how real
// registrations store credentials.
func SampleUsers() ([]model.User, error) {
	seeds := sampleUsers()
	out := make([]model.User, 0, len(seeds))
	for _, s := range seeds {
		hashed, err := hash.HashPassword(s.password)
		if err != nil {
			return nil, err
		}
		u := s.user
		u.PasswordHash = hashed
		out = append(out, u)
	}
	return out, nil
}

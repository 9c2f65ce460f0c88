package user

import "github.com/volatiletech/null/v8"

// Defaults seeds the users collection on first run.
func Defaults() []User {
	return []User{
		{
			ID:         "admin",
			Name:       "Administrador",
			Email:      "admin@iecl.com",
			Role:       RoleAdmin,
			Status:     StatusActive,
			JoinedDate: null.StringFrom("2023-01-01"),
		},
		{
			ID:         "u1",
			Name:       "João Silva",
			Email:      "aluno@teste.com",
			Password:   null.StringFrom("123"),
			BirthDate:  null.StringFrom("1995-05-10"),
			Role:       RoleStudent,
			Status:     StatusActive,
			JoinedDate: null.StringFrom("2023-10-15"),
		},
		{
			ID:         "u2",
			Name:       "Maria Oliveira",
			Email:      "maria@teste.com",
			Password:   null.StringFrom("123"),
			BirthDate:  null.StringFrom("1998-11-20"),
			Role:       RoleStudent,
			Status:     StatusPending,
			JoinedDate: null.StringFrom("2023-11-01"),
		},
	}
}

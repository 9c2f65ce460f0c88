package contact

// Defaults seeds the messages collection on first run.
func Defaults() []Message {
	return []Message{
		{
			ID:      "1",
			Name:    "Ana Souza",
			Email:   "ana@teste.com",
			Message: "Gostaria de saber se tem turma para crianças de 3 anos.",
			Date:    "2023-10-25",
		},
		{
			ID:      "2",
			Name:    "Pedro Gomes",
			Email:   "pedro@teste.com",
			Message: "Como faço para ser professor da EBD?",
			Date:    "2023-10-20",
			Read:    true,
			Replied: true,
		},
	}
}

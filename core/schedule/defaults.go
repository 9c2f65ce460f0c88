package schedule

// Defaults seeds the schedules collection on first run.
func Defaults() []Item {
	return []Item{
		{ID: "1", Day: "Domingo", Title: "EBD", Time: "09:30 - 11:30", Color: ColorRed},
		{ID: "2", Day: "Domingo", Title: "Culto de Adoração", Time: "18:00 - 20:00", Color: ColorRed},
		{ID: "3", Day: "Terça", Title: "Estudo Bíblico", Time: "19:30 - 21:00", Color: ColorYellow},
		{ID: "4", Day: "Quinta", Title: "Oração e Testemunho", Time: "19:30 - 21:00", Color: ColorYellow},
		{ID: "5", Day: "Sábado", Title: "Reunião de Oração", Time: "08:00 - 09:00", Color: ColorGreen},
	}
}

package classroom

// Defaults seeds the classrooms collection on first run.
func Defaults() []Classroom {
	return []Classroom{
		{
			ID:             "1",
			Name:           "Infantil",
			TargetAudience: "Até 10 anos",
			Image:          "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?auto=format&fit=crop&q=80&w=500",
			Description:    "Um ambiente lúdico e acolhedor onde as crianças aprendem as primeiras e mais importantes lições da Bíblia. Focamos no amor de Deus, na criação e na vida de Jesus através de histórias, músicas e atividades manuais.",
			Teachers:       []string{"Tia Bia", "Tia Carol", "Aux. Júlia"},
		},
		{
			ID:             "2",
			Name:           "Juniores",
			TargetAudience: "11 a 14 anos",
			Image:          "https://images.unsplash.com/photo-1511632765486-a01980e01a18?auto=format&fit=crop&q=80&w=500",
			Description:    "Nesta fase de transição, fortalecemos as bases do conhecimento bíblico e o caráter cristão. Abordamos heróis da fé, panorama bíblico e como aplicar a Palavra na escola e na família.",
			Teachers:       []string{"Prof. Carlos", "Prof. Roberto"},
		},
		{
			ID:             "3",
			Name:           "Jovens",
			TargetAudience: "15 a 25 anos",
			Image:          "https://images.unsplash.com/photo-1523240795612-9a054b0db644?auto=format&fit=crop&q=80&w=500",
			Description:    "Discutimos os desafios da juventude, identidade, namoro, carreira e propósito de vida, sempre à luz inerrante das Escrituras. Um espaço para perguntas difíceis e respostas bíblicas.",
			Teachers:       []string{"Pr. Marcos", "Sem. Felipe"},
		},
		{
			ID:             "4",
			Name:           "Adultos",
			TargetAudience: "Acima de 26 anos",
			Image:          "https://images.unsplash.com/photo-1529333166437-7750a6dd5a70?auto=format&fit=crop&q=80&w=500",
			Description:    "Estudo aprofundado de livros da Bíblia, teologia sistemática e doutrinas essenciais. O objetivo é o amadurecimento espiritual e a aplicação prática para a vida cristã, família e sociedade.",
			Teachers:       []string{"Pb. João", "Dc. Antônio", "Prof. Maria Helena"},
		},
	}
}

package news

import "github.com/volatiletech/null/v8"

// Defaults seeds the news collection on first run.
func Defaults() []Item {
	return []Item{
		{
			ID:       "2026-salvacao",
			Title:    "Escola Bíblica Dominical 2026",
			Excerpt:  "Convite especial: Um ano dedicado ao estudo da Doutrina da Salvação. Venha aprender sobre a maior obra de Deus!",
			Content:  "Com alegria anunciamos o tema do nosso ano letivo de 2026: A Doutrina da Salvação. Durante este ano, mergulharemos nas Escrituras para compreender a magnitude da obra redentora de Cristo. Abordaremos temas fundamentais como a graça, a justificação, a regeneração e a santificação. Convidamos você e sua família para estarem conosco todos os domingos, às 09:30h. Será um tempo precioso de crescimento espiritual e comunhão. Traga sua Bíblia e um coração sedento por Deus!",
			Date:     "Janeiro 2026",
			Category: CategoryEvent,
			Location: null.StringFrom("Igreja Evangélica Congregacional da Liberdade"),
			Image:    null.StringFrom("https://images.unsplash.com/photo-1504052434569-70ad5836ab65?auto=format&fit=crop&q=80&w=1000"),
		},
	}
}

package news

import (
	"github.com/volatiletech/null/v8"

	"github.com/iecliberdade/ebdconectada/core"
)

// Categories
const (
	CategoryNews  = "Notícia"
	CategoryEvent = "Evento"
)

type Item struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Excerpt     string      `json:"excerpt"`
	Content     string      `json:"content"`
	Date        string      `json:"date"` // pt-BR display date, set on save
	Category    string      `json:"category"`
	Location    null.String `json:"location,omitempty"`
	Image       null.String `json:"image,omitempty"`
	ActiveUntil null.Time   `json:"activeUntil,omitempty"`
	Featured    bool        `json:"featured,omitempty"`
}

// Draft contains the editable fields of a news item.
type Draft struct {
	Title      string      `json:"title" validate:"required"`
	Excerpt    string      `json:"excerpt" validate:"required"`
	Content    string      `json:"content" validate:"required"`
	Category   string      `json:"category" validate:"required,oneof=Notícia Evento"`
	Image      null.String `json:"image"`
	Featured   bool        `json:"featured"`
	ActiveDays int         `json:"activeDays" validate:"required,min=1"`
}

func (d *Draft) Validate() error {
	d.Title = core.CleanString(d.Title)
	d.Excerpt = core.CleanString(d.Excerpt)
	d.Content = core.CleanString(d.Content)
	return core.TranslateError(core.Validate.Struct(d))
}

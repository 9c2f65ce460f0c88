package schedule

import "github.com/iecliberdade/ebdconectada/core"

// Colors
const (
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorGreen  = "green"
	ColorBlue   = "blue"
)

type Item struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Time  string `json:"time"` // free-text range, e.g. "09:30 - 11:30"
	Title string `json:"title"`
	Color string `json:"color"`
}

// Draft contains the editable fields of a schedule entry. Overlapping
// (day, time) pairs are permitted.
type Draft struct {
	Day   string `json:"day" validate:"required,oneof=Domingo Segunda Terça Quarta Quinta Sexta Sábado"`
	Time  string `json:"time" validate:"required"`
	Title string `json:"title" validate:"required"`
	Color string `json:"color" validate:"required,oneof=red yellow green blue"`
}

func (d *Draft) Validate() error {
	d.Time = core.CleanString(d.Time)
	d.Title = core.CleanString(d.Title)
	return core.TranslateError(core.Validate.Struct(d))
}

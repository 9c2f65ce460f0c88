package classroom

import "github.com/iecliberdade/ebdconectada/core"

type Classroom struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TargetAudience string   `json:"targetAudience"`
	StudentsCount  int      `json:"studentsCount"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Teachers       []string `json:"teachers"` // display names, in roster order
}

// Draft contains the fields editable through the classroom form.
// StudentsCount and Teachers are managed elsewhere and survive edits.
type Draft struct {
	Name           string `json:"name" validate:"required"`
	TargetAudience string `json:"targetAudience" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Image          string `json:"image" validate:"required,url"`
}

func (d *Draft) Validate() error {
	d.Name = core.CleanString(d.Name)
	d.TargetAudience = core.CleanString(d.TargetAudience)
	d.Description = core.CleanString(d.Description)
	d.Image = core.CleanString(d.Image)
	return core.TranslateError(core.Validate.Struct(d))
}

package contact

import "github.com/iecliberdade/ebdconectada/core"

type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
	Replied bool   `json:"replied"`
}

// NewMessage contains the information submitted through the public
// contact form.
type NewMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (nm *NewMessage) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Message = core.CleanString(nm.Message)
	return core.TranslateError(core.Validate.Struct(nm))
}

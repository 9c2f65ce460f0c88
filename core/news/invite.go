package news

import (
	"fmt"

	"github.com/iecliberdade/ebdconectada/core"
)

// InviteText renders the shareable invitation message for an item.
func InviteText(item Item) string {
	return fmt.Sprintf(
		"*Convite Especial - %s*\n\n*%s*\n\n%s\n\nVenha participar conosco!\n%s\n%s",
		core.Conf.GetString("churchName"),
		item.Title,
		item.Excerpt,
		core.Conf.GetString("churchAddress"),
		core.Conf.GetString("meetingTime"),
	)
}

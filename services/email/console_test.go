package emailsvc_test

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iecliberdade/ebdconectada/core"
	emailsvc "github.com/iecliberdade/ebdconectada/services/email"
)

func TestMockCapturesMessages(t *testing.T) {
	emailsvc.ResetSentMessages()
	svc := emailsvc.NewConsoleServiceMock()

	svc.SendMessages(
		&core.EmailMessage{
			To:      []mail.Address{{Name: "Admin", Address: "admin@iecl.com"}},
			Subject: "assunto",
			Body:    "corpo",
		},
		&core.EmailMessage{
			To:      []mail.Address{{Address: "outro@iecl.com"}},
			Subject: "outro assunto",
			Body:    "outro corpo",
		},
	)

	require.Len(t, emailsvc.SentMessages, 2)
	assert.Equal(t, "assunto", emailsvc.SentMessages[0].Subject)
	assert.Equal(t, "outro assunto", emailsvc.SentMessages[1].Subject)

	emailsvc.ResetSentMessages()
	assert.Empty(t, emailsvc.SentMessages)
}

func TestMockSkipsIncompleteMessages(t *testing.T) {
	emailsvc.ResetSentMessages()
	svc := emailsvc.NewConsoleServiceMock()

	svc.SendMessages(
		&core.EmailMessage{Subject: "sem destinatário", Body: "x"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@b.com"}}},
	)

	assert.Empty(t, emailsvc.SentMessages)
}

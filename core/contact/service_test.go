package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emailsvc "github.com/iecliberdade/ebdconectada/services/email"
)

// memRepo is a minimal in-memory Repository for exercising the service.
type memRepo struct {
	msgs []Message
}

func (repo *memRepo) QueryAll() ([]Message, error) {
	msgs := make([]Message, len(repo.msgs))
	copy(msgs, repo.msgs)
	return msgs, nil
}

func (repo *memRepo) Create(msg Message) (Message, error) {
	repo.msgs = append(repo.msgs, msg)
	return msg, nil
}

func (repo *memRepo) Delete(id string) error {
	kept := make([]Message, 0, len(repo.msgs))
	for _, m := range repo.msgs {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	repo.msgs = kept
	return nil
}

func TestCreate(t *testing.T) {
	at := time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return at }
	defer func() { nowFunc = time.Now }()
	emailsvc.ResetSentMessages()

	repo := &memRepo{msgs: Defaults()}
	svc := NewService(repo, emailsvc.NewConsoleServiceMock())

	msg, err := svc.Create(NewMessage{
		Name:    "  Lucas Ferreira ",
		Email:   "Lucas@Teste.com",
		Message: "Qual o horário da EBD?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Lucas Ferreira", msg.Name)
	assert.Equal(t, "lucas@teste.com", msg.Email)
	assert.Equal(t, "2026-04-20", msg.Date)
	assert.False(t, msg.Read)
	assert.False(t, msg.Replied)

	msgs, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, msg.ID, msgs[2].ID) // appended after the seeded messages

	require.Len(t, emailsvc.SentMessages, 1)
	sent := emailsvc.SentMessages[0]
	assert.Equal(t, "Nova mensagem do site", sent.Subject)
	require.Len(t, sent.To, 1)
	assert.Equal(t, "admin@iecl.com", sent.To[0].Address)
	assert.Contains(t, sent.Body, "Lucas Ferreira <lucas@teste.com>")
	assert.Contains(t, sent.Body, "Qual o horário da EBD?")
}

func TestCreateValidation(t *testing.T) {
	emailsvc.ResetSentMessages()
	repo := &memRepo{}
	svc := NewService(repo, emailsvc.NewConsoleServiceMock())

	_, err := svc.Create(NewMessage{Name: "Sem Email", Message: "olá"})
	assert.Error(t, err)

	msgs, qerr := svc.QueryAll()
	require.NoError(t, qerr)
	assert.Empty(t, msgs)                  // nothing recorded
	assert.Empty(t, emailsvc.SentMessages) // nothing notified
}

func TestCreateWithoutMailService(t *testing.T) {
	svc := NewService(&memRepo{}, nil)

	_, err := svc.Create(NewMessage{
		Name:    "Lucas",
		Email:   "lucas@teste.com",
		Message: "olá",
	})
	assert.NoError(t, err)
}

func TestUnreadCount(t *testing.T) {
	repo := &memRepo{msgs: Defaults()}
	svc := NewService(repo, nil)

	n, err := svc.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n) // one of the two seeded messages is unread

	_, err = svc.Create(NewMessage{Name: "Lucas", Email: "lucas@teste.com", Message: "olá"})
	require.NoError(t, err)

	n, err = svc.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDelete(t *testing.T) {
	repo := &memRepo{msgs: Defaults()}
	svc := NewService(repo, nil)

	require.NoError(t, svc.Delete("1"))

	msgs, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "2", msgs[0].ID)
}

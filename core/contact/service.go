package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/iecliberdade/ebdconectada/core"
)

const dateLayout = "2006-01-02"

var (
	// errors
	ErrNotFound = errors.New("message not found")

	// for tests
	nowFunc = time.Now
)

type (
	Repository interface {
		QueryAll() ([]Message, error)
		// Create appends to the end of the collection.
		Create(msg Message) (Message, error)
		Delete(id string) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

// Create records a message submitted through the public contact form and
// notifies the configured mailbox. Messages start unread and unreplied.
func (svc *Service) Create(nm NewMessage) (Message, error) {
	if err := nm.Validate(); err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:      core.NewID(),
		Name:    nm.Name,
		Email:   nm.Email,
		Message: nm.Message,
		Date:    nowFunc().Format(dateLayout),
	}
	msg, err := svc.repo.Create(msg)
	if err != nil {
		return Message{}, err
	}
	svc.notify(msg)
	return msg, nil
}

func (svc *Service) QueryAll() ([]Message, error) {
	return svc.repo.QueryAll()
}

// UnreadCount feeds the admin dashboard counter.
func (svc *Service) UnreadCount() (int, error) {
	msgs, err := svc.repo.QueryAll()
	if err != nil {
		return 0, err
	}
	var n int
	for _, m := range msgs {
		if !m.Read {
			n++
		}
	}
	return n, nil
}

// Delete removes the message with the matching id. The caller is
// responsible for confirming the deletion beforehand.
func (svc *Service) Delete(id string) error {
	return svc.repo.Delete(id)
}

func (svc *Service) notify(msg Message) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: core.Conf.GetString("contactNotifyEmail")}},
		Subject: "Nova mensagem do site",
		Body: fmt.Sprintf(
			"%s <%s> escreveu em %s:\n\n%s\n",
			msg.Name, msg.Email, msg.Date, msg.Message,
		),
	})
}

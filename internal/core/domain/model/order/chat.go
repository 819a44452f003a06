package order

import (
	"fmt"
	"time"

	"foodmate/internal/pkg/errs"
)

// SystemBotSender is the sender name used for automatic status messages.
const SystemBotSender = "FoodMate Bot"

// Message is one entry in an order's chat log.
type Message struct {
	sender string
	text   string
	sentAt time.Time
}

// NewMessage creates a validated chat message stamped with the current time.
func NewMessage(sender, text string) (Message, error) {
	if sender == "" {
		return Message{}, errs.NewValueIsRequiredError("message sender")
	}
	if text == "" {
		return Message{}, errs.NewValueIsRequiredError("message text")
	}
	return Message{sender: sender, text: text, sentAt: time.Now().UTC()}, nil
}

// RestoreMessage rehydrates a message from persistence, keeping its original
// timestamp.
func RestoreMessage(sender, text string, sentAt time.Time) (Message, error) {
	m, err := NewMessage(sender, text)
	if err != nil {
		return Message{}, err
	}
	m.sentAt = sentAt
	return m, nil
}

// Sender returns who posted the message.
func (m Message) Sender() string {
	return m.sender
}

// Text returns the message body.
func (m Message) Text() string {
	return m.text
}

// SentAt returns when the message was posted.
func (m Message) SentAt() time.Time {
	return m.sentAt
}

// IsFromBot reports whether the message is an automatic status update.
func (m Message) IsFromBot() bool {
	return m.sender == SystemBotSender
}

// getStatusAnnouncements maps statuses to the bot message posted when an
// order enters them. Statuses without an entry produce no message.
func getStatusAnnouncements() map[Status]string {
	return map[Status]string{
		Preparing:      "Your order is being prepared.",
		OutForDelivery: "Your order is out for delivery!",
		Delivered:      "Your order has been delivered. Enjoy your meal!",
	}
}

// announceStatus returns the bot message for entering the given status, or
// false when the status has no announcement.
func announceStatus(status Status) (Message, bool) {
	text, ok := getStatusAnnouncements()[status]
	if !ok {
		return Message{}, false
	}
	return Message{
		sender: SystemBotSender,
		text:   fmt.Sprintf("[Order update] %s", text),
		sentAt: time.Now().UTC(),
	}, true
}

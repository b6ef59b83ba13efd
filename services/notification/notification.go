package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NopService drops messages. Used when no websocket hub is attached.
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

// Event is the payload pushed to front-desk screens.
type Event struct {
	Type          string      `json:"type"`
	ReservationID uint        `json:"reservationId,omitempty"`
	RoomID        uint        `json:"roomId,omitempty"`
	TaskID        uint        `json:"taskId,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	At            time.Time   `json:"at"`
}

type MessageBuilder struct {
	event Event
}

func NewMessageBuilder(eventType string) *MessageBuilder {
	return &MessageBuilder{event: Event{Type: eventType}}
}

func (b *MessageBuilder) Reservation(id uint) *MessageBuilder {
	b.event.ReservationID = id
	return b
}

func (b *MessageBuilder) Room(id uint) *MessageBuilder {
	b.event.RoomID = id
	return b
}

func (b *MessageBuilder) Task(id uint) *MessageBuilder {
	b.event.TaskID = id
	return b
}

func (b *MessageBuilder) Data(data interface{}) *MessageBuilder {
	b.event.Data = data
	return b
}

func (b *MessageBuilder) Build() (string, error) {
	if b.event.At.IsZero() {
		b.event.At = time.Now().UTC()
	}
	raw, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

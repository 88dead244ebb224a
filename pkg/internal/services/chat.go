package services

import (
	"sync"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
)

type ChatEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type ChatSubscriber struct {
	ch chan ChatEvent
}

func (s *ChatSubscriber) Chan() <-chan ChatEvent {
	return s.ch
}

var chatHub = struct {
	sync.Mutex
	companies map[uint]map[*ChatSubscriber]struct{}
}{companies: make(map[uint]map[*ChatSubscriber]struct{})}

func SubscribeChat(companyId uint) *ChatSubscriber {
	chatHub.Lock()
	defer chatHub.Unlock()

	subscriber := &ChatSubscriber{ch: make(chan ChatEvent, 8)}
	if chatHub.companies[companyId] == nil {
		chatHub.companies[companyId] = make(map[*ChatSubscriber]struct{})
	}
	chatHub.companies[companyId][subscriber] = struct{}{}

	return subscriber
}

func UnsubscribeChat(companyId uint, subscriber *ChatSubscriber) {
	chatHub.Lock()
	defer chatHub.Unlock()

	if subscribers, ok := chatHub.companies[companyId]; ok {
		if _, ok := subscribers[subscriber]; ok {
			delete(subscribers, subscriber)
			close(subscriber.ch)
		}
		if len(subscribers) == 0 {
			delete(chatHub.companies, companyId)
		}
	}
}

// Slow consumers are skipped instead of blocking the sender.
func broadcastChatEvent(companyId uint, event ChatEvent) {
	chatHub.Lock()
	defer chatHub.Unlock()

	for subscriber := range chatHub.companies[companyId] {
		select {
		case subscriber.ch <- event:
		default:
		}
	}
}

func NewChatMessage(message models.ChatMessage) (models.ChatMessage, error) {
	message.Language = DetectLanguage(message.Content)

	if err := database.C.Omit("Account").Create(&message).Error; err != nil {
		return message, err
	}

	broadcastChatEvent(message.CompanyID, ChatEvent{Type: "message", Data: message})

	return message, nil
}

func ListChatMessages(companyId uint, take int, offset int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := database.C.Where("company_id = ?", companyId).
		Preload("Account").
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&messages).Error

	return messages, err
}

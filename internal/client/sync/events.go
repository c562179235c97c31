package sync

import (
	"sync"
	"time"

	"github.com/alawein/labsync/internal/models"
)

// EventType определяет вид события координатора
type EventType string

const (
	EventSyncStart    EventType = "sync_start"    // начало прохода по очереди
	EventSyncComplete EventType = "sync_complete" // проход завершен, счётчики заполнены
	EventSyncError    EventType = "sync_error"    // проход не удалось выполнить
	EventConflict     EventType = "conflict"      // обнаружен конфликт версий
)

// Event представляет событие жизненного цикла синхронизации
type Event struct {
	At       time.Time                  `json:"at"`                 // время события
	Type     EventType                  `json:"type"`               // вид события
	Error    string                     `json:"error,omitempty"`    // текст ошибки для sync_error
	Conflict *models.ConflictResolution `json:"conflict,omitempty"` // детали для conflict
	Synced   int                        `json:"synced"`             // успешно отправлено (sync_complete)
	Failed   int                        `json:"failed"`             // не удалось отправить (sync_complete)
}

// Handler обрабатывает событие синхронизации.
// Вызывается синхронно из горутины координатора: обработчик не должен
// блокироваться надолго.
type Handler func(Event)

// eventBus хранит подписчиков по видам событий
type eventBus struct {
	subscribers map[EventType]map[int]Handler
	nextID      int
	mu          sync.Mutex
}

func newEventBus() *eventBus {
	return &eventBus{
		subscribers: make(map[EventType]map[int]Handler),
	}
}

// subscribe регистрирует обработчик и возвращает функцию отписки
func (b *eventBus) subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[eventType] == nil {
		b.subscribers[eventType] = make(map[int]Handler)
	}

	id := b.nextID
	b.nextID++
	b.subscribers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers[eventType], id)
	}
}

// publish доставляет событие всем подписчикам его вида
func (b *eventBus) publish(event Event) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subscribers[event.Type]))
	for _, h := range b.subscribers[event.Type] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	// Вызываем вне блокировки: обработчик может подписываться или отписываться
	for _, h := range handlers {
		h(event)
	}
}

// internal/event/event.go
package event

import (
	"go.uber.org/zap"
)

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Типизированная полезная нагрузка, см. types.go
}

// Handler — обработчик события.
type Handler func(e Event)

// Token идентифицирует одну подписку и нужен для отписки.
type Token uint64

type subscription struct {
	token   Token
	handler Handler
	once    bool
}

// Dispatcher — диспетчер событий. Рассылка синхронная, в порядке подписки;
// паника одного обработчика не мешает остальным и логируется на границе шины.
type Dispatcher struct {
	log       *zap.SugaredLogger
	nextToken Token
	listeners map[EventType][]subscription
}

// NewDispatcher создаёт новый диспетчер.
func NewDispatcher(log *zap.SugaredLogger) *Dispatcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Dispatcher{
		log:       log,
		nextToken: 1,
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. Возвращает токен для отписки.
func (d *Dispatcher) Subscribe(eventType EventType, h Handler) Token {
	return d.subscribe(eventType, h, false)
}

// SubscribeOnce — одноразовая подписка: обработчик снимается после
// первого вызова.
func (d *Dispatcher) SubscribeOnce(eventType EventType, h Handler) Token {
	return d.subscribe(eventType, h, true)
}

func (d *Dispatcher) subscribe(eventType EventType, h Handler, once bool) Token {
	token := d.nextToken
	d.nextToken++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{
		token:   token,
		handler: h,
		once:    once,
	})
	return token
}

// Unsubscribe — отписка по токену. Неизвестный токен игнорируется.
func (d *Dispatcher) Unsubscribe(eventType EventType, token Token) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.token == token {
			d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки.
func (d *Dispatcher) Dispatch(e Event) {
	subs := d.listeners[e.Type]
	if len(subs) == 0 {
		return
	}

	// Копия на случай подписки/отписки изнутри обработчика.
	current := make([]subscription, len(subs))
	copy(current, subs)

	// Одноразовые подписки снимаем до вызова: если обработчик сам отправит
	// то же событие, он не сработает второй раз.
	for _, s := range current {
		if s.once {
			d.Unsubscribe(e.Type, s.token)
		}
	}
	for _, s := range current {
		d.safeCall(s, e)
	}
}

func (d *Dispatcher) safeCall(s subscription, e Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorw("event handler panicked",
				"event", string(e.Type),
				"panic", r,
			)
		}
	}()
	s.handler(e)
}

// SubscriberCount возвращает число активных подписок на тип события.
func (d *Dispatcher) SubscriberCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

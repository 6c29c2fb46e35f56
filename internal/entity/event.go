package entity

type EventKind string

const (
	EventText     EventKind = "text"
	EventCallback EventKind = "callback"
	EventCommand  EventKind = "command"
)

// Event es la variante etiquetada de entrada de la plataforma de chat:
// Text{chat_id, user_id, body} | Callback{chat_id, user_id, token} |
// Command{chat_id, user_id, name, args}.
type Event struct {
	Kind   EventKind
	ChatID int64
	UserID string

	Body  string // Kind == EventText
	Token string // Kind == EventCallback
	Name  string // Kind == EventCommand
	Args  string // Kind == EventCommand (deep-link, ej: "ad_verano24")
}

func NewTextEvent(chatID int64, userID, body string) Event {
	return Event{Kind: EventText, ChatID: chatID, UserID: userID, Body: body}
}

func NewCallbackEvent(chatID int64, userID, token string) Event {
	return Event{Kind: EventCallback, ChatID: chatID, UserID: userID, Token: token}
}

func NewCommandEvent(chatID int64, userID, name, args string) Event {
	return Event{Kind: EventCommand, ChatID: chatID, UserID: userID, Name: name, Args: args}
}

// Inbound devuelve el texto crudo del evento para el historial.
func (e Event) Inbound() string {
	switch e.Kind {
	case EventText:
		return e.Body
	case EventCallback:
		return "[" + e.Token + "]"
	default:
		if e.Args != "" {
			return "/" + e.Name + " " + e.Args
		}
		return "/" + e.Name
	}
}

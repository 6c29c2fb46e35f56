package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

const inboxSize = 16

// Pump implementa el modelo de una tarea lógica por user id: los eventos
// del mismo usuario se serializan en orden de llegada; usuarios distintos
// avanzan en paralelo. El Lead nunca se comparte entre tareas.
type Pump struct {
	Controller *Controller
	Sender     ChatSender
	SendPolicy RetryPolicy

	mu      sync.Mutex
	inboxes map[string]chan entity.Event
	wg      sync.WaitGroup
	closed  bool
}

func NewPump(controller *Controller, sender ChatSender) *Pump {
	return &Pump{
		Controller: controller,
		Sender:     sender,
		SendPolicy: DefaultRetryPolicy(),
		inboxes:    make(map[string]chan entity.Event),
	}
}

// Dispatch encola el evento en la bandeja del usuario; crea la tarea de
// sesión si no existe. No bloquea: con la bandeja llena el evento se
// descarta con warning.
func (p *Pump) Dispatch(ctx context.Context, ev entity.Event) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		log.Printf("⚠️ Pump: cerrado, descartando evento de %s", ev.UserID)
		return
	}
	inbox, ok := p.inboxes[ev.UserID]
	if !ok {
		inbox = make(chan entity.Event, inboxSize)
		p.inboxes[ev.UserID] = inbox
		p.wg.Add(1)
		go p.run(ctx, ev.UserID, inbox)
	}
	p.mu.Unlock()

	select {
	case inbox <- ev:
	default:
		log.Printf("⚠️ Pump: bandeja llena para %s, evento descartado", ev.UserID)
	}
}

func (p *Pump) run(ctx context.Context, userID string, inbox <-chan entity.Event) {
	defer p.wg.Done()
	for ev := range inbox {
		p.process(ctx, ev)
	}
	log.Printf("👋 Pump: tarea de sesión %s terminada", userID)
}

func (p *Pump) process(ctx context.Context, ev entity.Event) {
	// Aviso de "procesando" solo para texto; se borra (best effort) antes
	// de la respuesta real.
	noticeID := 0
	if ev.Kind == entity.EventText {
		id, err := p.Sender.SendMessage(ctx, ev.ChatID, p.Controller.Renderer.Processing())
		if err == nil {
			noticeID = id
		}
	}

	out := p.Controller.HandleEvent(ctx, ev)

	if noticeID != 0 {
		if err := p.Sender.DeleteMessage(ctx, ev.ChatID, noticeID); err != nil {
			log.Printf("⚠️ Pump: no se pudo borrar el aviso de procesando: %v", err)
		}
	}

	for _, msg := range out {
		msg := msg
		err := Retry(ctx, p.SendPolicy, func(ctx context.Context) error {
			_, sendErr := p.Sender.SendMessage(ctx, ev.ChatID, msg)
			return sendErr
		})
		if err != nil {
			log.Printf("❌ Pump: envío agotó reintentos para %s: %v", ev.UserID, err)
			if _, apologyErr := p.Sender.SendMessage(ctx, ev.ChatID, p.Controller.Renderer.Apology()); apologyErr != nil {
				log.Printf("❌ Pump: tampoco salió la disculpa: %v", apologyErr)
			}
			return
		}
	}
}

// Stop cierra todas las bandejas y espera a que las tareas drenen.
func (p *Pump) Stop() {
	p.mu.Lock()
	p.closed = true
	for _, inbox := range p.inboxes {
		close(inbox)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

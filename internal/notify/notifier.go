package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/CreativeMB/Server/internal/logger"
	"github.com/CreativeMB/Server/internal/mail"
)

const fallbackTitle = "Sin título"

// Outcome is the result of one notification attempt.
type Outcome struct {
	Status  string `json:"status"`
	Message string `json:"mensaje"`
}

// Dispatcher formats and sends the new-order notification email.
// Delivery is at most once; a failed send is reported, never retried.
type Dispatcher struct {
	transport mail.Transport
	from      string
	to        string
}

func NewDispatcher(transport mail.Transport, from, to string) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		from:      from,
		to:        to,
	}
}

// Notify sends the order email for rawTitle. The title is caller input
// and is escaped before it reaches the HTML body.
func (d *Dispatcher) Notify(ctx context.Context, rawTitle string) Outcome {

	title := escapeHTML(strings.TrimSpace(rawTitle))
	if title == "" {
		title = fallbackTitle
	}

	msg := mail.Message{
		FromName: "Pedidos FullTV",
		From:     d.from,
		To:       d.to,
		Subject:  "🎬 Nuevo Pedido Registrado: " + title,
		HTML:     renderOrderBody(title),
	}

	if err := d.transport.Send(ctx, msg); err != nil {
		logger.Error("order notification failed", map[string]any{
			"title": title,
			"error": err.Error(),
		})
		return Outcome{
			Status:  "error",
			Message: "El servicio de envío de correos no está disponible en este momento.",
		}
	}

	logger.Info("order notification sent", map[string]any{"title": title})

	return Outcome{
		Status:  "ok",
		Message: fmt.Sprintf("Notificación para el pedido '%s' enviada correctamente.", title),
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&#34;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

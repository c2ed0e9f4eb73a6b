package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"dota-draft-tools/logging"
)

var ErrInvalidWebhook = errors.New("URL de webhook inválida")

// Discord limita la descripción de un embed a 4096 caracteres
const maxDescription = 4096

// Announcement es el aviso de que se generó un reporte
type Announcement struct {
	Title string
	URL   string
	Lines []string
}

type Notifier interface {
	Announce(ctx context.Context, a Announcement) error
}

// Noop es el notifier cuando no hay webhook configurado
type Noop struct{}

func (Noop) Announce(context.Context, Announcement) error { return nil }

// Discord publica en un canal a través de un webhook
type Discord struct {
	session *discordgo.Session
	id      string
	token   string
}

// New devuelve Noop si la URL está vacía
func New(webhookURL string) (Notifier, error) {
	if strings.TrimSpace(webhookURL) == "" {
		return Noop{}, nil
	}
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("error creando sesión Discord: %w", err)
	}
	return &Discord{session: session, id: id, token: token}, nil
}

// ParseWebhookURL extrae id y token de https://discord.com/api/webhooks/<id>/<token>
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidWebhook, raw)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", ErrInvalidWebhook, raw)
}

// Embed arma el mensaje; las líneas que no entran se descartan
func Embed(a Announcement, now time.Time) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, line := range a.Lines {
		if b.Len()+len(line)+1 > maxDescription {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return &discordgo.MessageEmbed{
		Title:       a.Title,
		URL:         a.URL,
		Description: strings.TrimRight(b.String(), "\n"),
		Color:       0x3498db,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
}

func (d *Discord) Announce(ctx context.Context, a Announcement) error {
	_, err := d.session.WebhookExecute(d.id, d.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{Embed(a, time.Now())},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error enviando webhook: %w", err)
	}
	return nil
}

// Announce avisa y solo registra el error; un aviso fallido nunca corta un comando
func Announce(ctx context.Context, n Notifier, a Announcement) {
	if err := n.Announce(ctx, a); err != nil {
		logging.Get().WithError(err).Warn("no se pudo avisar en Discord")
		return
	}
	if _, ok := n.(Noop); !ok {
		logging.Get().WithField("titulo", a.Title).Info("aviso enviado a Discord")
	}
}

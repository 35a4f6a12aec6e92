package discord

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"zentra-notify/internal/domain/model"
)

// Payload is the JSON body accepted by a Discord webhook.
// Content is always serialized, as null when unset.
type Payload struct {
	Content *string `json:"content"`
	Embeds  []Embed `json:"embeds" validate:"min=1,max=10,dive"`
}

// Embed is a rich message attachment. Limits follow Discord's documented caps.
type Embed struct {
	Title       string       `json:"title" validate:"required,max=256"`
	Description string       `json:"description" validate:"max=4096"`
	Color       int          `json:"color" validate:"min=0,max=16777215"`
	Footer      *EmbedFooter `json:"footer" validate:"required"`
	Author      *EmbedAuthor `json:"author,omitempty" validate:"omitempty"`
	Fields      []EmbedField `json:"fields,omitempty" validate:"max=25,dive"`
}

// EmbedFooter is the small text line under an embed.
type EmbedFooter struct {
	Text string `json:"text" validate:"required,max=2048"`
}

// EmbedAuthor is rendered above the embed title.
type EmbedAuthor struct {
	Name    string `json:"name" validate:"required,max=256"`
	IconURL string `json:"icon_url,omitempty" validate:"omitempty,url"`
}

// EmbedField is a name/value pair, optionally laid out side by side.
type EmbedField struct {
	Name   string `json:"name" validate:"required,max=256"`
	Value  string `json:"value" validate:"required,max=1024"`
	Inline bool   `json:"inline"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// BuildPayload maps a notification onto the webhook wire format.
func BuildPayload(notification model.Notification) Payload {
	embed := Embed{
		Title:       notification.Title,
		Description: notification.Description,
		Color:       notification.Color,
		Footer:      &EmbedFooter{Text: notification.Footer},
		Fields:      convertFields(notification.Fields),
	}
	if notification.Author.Name != "" {
		embed.Author = &EmbedAuthor{
			Name:    notification.Author.Name,
			IconURL: notification.Author.IconURL,
		}
	}

	return Payload{Embeds: []Embed{embed}}
}

// Encode validates the notification against Discord's limits and serializes it.
// Output is deterministic for equal input.
func Encode(notification model.Notification) ([]byte, error) {
	payload := BuildPayload(notification)
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid embed: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return body, nil
}

func convertFields(fields []model.NotificationField) []EmbedField {
	if len(fields) == 0 {
		return nil
	}

	result := make([]EmbedField, 0, len(fields))
	for _, field := range fields {
		result = append(result, EmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	return result
}

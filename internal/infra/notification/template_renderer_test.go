package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateRenderer_Render(t *testing.T) {
	renderer := NewTemplateRenderer()
	vars := map[string]string{"name": "Amara", "order_id": "A-17"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "plain", template: "Hello {{name}}", want: "Hello Amara"},
		{name: "spaced", template: "Order {{ order_id }} shipped", want: "Order A-17 shipped"},
		{name: "repeated", template: "{{name}}, {{name}}!", want: "Amara, Amara!"},
		{name: "unknown stays", template: "Hi {{nickname}}", want: "Hi {{nickname}}"},
		{name: "no placeholders", template: "Welcome", want: "Welcome"},
		{name: "empty", template: "", want: ""},
		{name: "unterminated tail", template: "Hi {{name}}, order {{ order_id }} {{total", want: "Hi Amara, order A-17 {{total"},
		{name: "only unterminated", template: "Total {{amount", want: "Total {{amount"},
		{name: "stray closing", template: "}} then {{name}}", want: "}} then Amara"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderer.Render(tt.template, vars))
		})
	}
}

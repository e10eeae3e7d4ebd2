package materialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"simple title":            {input: "Getting Started", expected: "getting-started"},
		"punctuation collapses":   {input: "Wi-Fi / MQTT Setup!", expected: "wi-fi-mqtt-setup"},
		"leading trailing hyphen": {input: "  --hello--  ", expected: "hello"},
		"digits survive":          {input: "ESP32 v2", expected: "esp32-v2"},
		"all symbols empty":       {input: "!!!", expected: ""},
		"empty input":             {input: "", expected: ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Slug(test.input))
		})
	}
}

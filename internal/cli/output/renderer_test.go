package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"auto resolves to text", ModeAuto, ModeText},
		{"empty resolves to text", Mode(""), ModeText},
		{"text stays text", ModeText, ModeText},
		{"json stays json", ModeJSON, ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_PlainWhenNotTTY(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, new(bytes.Buffer), ModeAuto)

	r.Println(r.Styles().Error.Render("boom"))
	assert.Equal(t, "boom\n", buf.String(), "no ANSI sequences without a terminal")
}

func TestRenderer_Writers(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeText)

	r.Printf("to %s\n", "stdout")
	r.Errorf("to %s\n", "stderr")

	assert.Equal(t, "to stdout\n", out.String())
	assert.Equal(t, "to stderr\n", errOut.String())
}

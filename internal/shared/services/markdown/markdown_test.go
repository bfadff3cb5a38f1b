package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := r.Render("cliente **storico**, priorità alta")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>storico</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := r.Render("note <script>alert(1)</script> qui")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "note")
	})

	t.Run("keeps links but removes inline handlers", func(t *testing.T) {
		out, err := r.Render(`[sito](https://example.it) <a href="x" onclick="evil()">x</a>`)
		require.NoError(t, err)
		assert.Contains(t, out, `href="https://example.it"`)
		assert.NotContains(t, out, "onclick")
	})
}

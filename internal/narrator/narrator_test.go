package narrator

import (
	"context"
	"testing"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptWithClueAndPaths(t *testing.T) {
	root := mansion.Build()

	prompt, err := Prompt(root)
	require.NoError(t, err)
	assert.Contains(t, prompt, `"Hall de Entrada"`)
	assert.Contains(t, prompt, `"Pegadas recentes no tapete."`)
	assert.Contains(t, prompt, "left to Sala de Estar or right to Jardim")
}

func TestPromptWithoutClueAtDeadEnd(t *testing.T) {
	room := &mansion.Room{Name: "Cela"}

	prompt, err := Prompt(room)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Nothing in this room seems out of place.")
	assert.Contains(t, prompt, "There is no way onward from this room.")
}

func TestNop(t *testing.T) {
	var n Narrator = Nop{}
	text, err := n.Describe(context.Background(), mansion.Build())
	require.NoError(t, err)
	assert.Empty(t, text)
}

package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ctok/pkg/report"
)

func TestSessionEval(t *testing.T) {
	var buf bytes.Buffer
	s := &Session{Out: &buf, Format: report.FormatJSON}

	quit, err := s.Eval("x += 1;")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, `{"lexeme":"x","type":"Identifier","line":1}`+"\n"+
		`{"lexeme":"+=","type":"Operator","line":1}`+"\n"+
		`{"lexeme":"1","type":"Number","line":1}`+"\n"+
		`{"lexeme":";","type":"Delimiter","line":1}`+"\n", buf.String())
}

func TestSessionTable(t *testing.T) {
	var buf bytes.Buffer
	s := &Session{Out: &buf, Format: report.FormatTable}

	_, err := s.Eval("return;")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✔ Tokens found\n")
	assert.Contains(t, buf.String(), "return                         | Keyword         | 1     \n")
}

func TestSessionCommands(t *testing.T) {
	var buf bytes.Buffer
	s := &Session{Out: &buf, Format: report.FormatTable}

	quit, err := s.Eval("   ")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Zero(t, buf.Len())

	quit, err = s.Eval(":help")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, buf.String(), ":quit")

	buf.Reset()
	quit, err = s.Eval(":nope")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, buf.String(), "unknown command :nope")

	quit, err = s.Eval(" :QUIT ")
	require.NoError(t, err)
	assert.True(t, quit)
}

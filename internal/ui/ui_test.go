package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	s := FormatError("bad parameter", "nodetype: \"m400\" is not a legal value", "use one of: d430, d740")
	assert.Contains(t, s, "Error: bad parameter")
	assert.Contains(t, s, "  nodetype")
	assert.Contains(t, s, "Hint: use one of: d430, d740")

	bare := FormatError("oops", "", "")
	assert.NotContains(t, bare, "Hint")
}

func TestOutputRedirect(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Success("done")
	ValidationErr("ansible/site.yml", "missing", "check the path")
	CheckSkipped("Galaxy requirements")

	s := buf.String()
	assert.Contains(t, s, "done")
	assert.Contains(t, s, "ansible/site.yml: missing")
	assert.Contains(t, s, "Hint: check the path")
	assert.Contains(t, s, "Galaxy requirements (skipped)")
}

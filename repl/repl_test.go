/*
File    : numen/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/numen/primitives"
)

func TestExecuteWithRecoveryPrintsResult(t *testing.T) {
	r := NewRepl("", "test", "", "", "", true)
	env := primitives.NewRootEnvironment()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "1 + 2", env)
	assert.Contains(t, buf.String(), "3")
}

func TestExecuteWithRecoveryReportsParseError(t *testing.T) {
	r := NewRepl("", "test", "", "", "", true)
	env := primitives.NewRootEnvironment()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, ")", env)
	assert.Contains(t, buf.String(), "PARSE ERROR")
}

func TestExecuteWithRecoveryReportsEvalError(t *testing.T) {
	r := NewRepl("", "test", "", "", "", true)
	env := primitives.NewRootEnvironment()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "undefinedName", env)
	assert.Contains(t, buf.String(), "EVAL ERROR")
}

func TestBindingsPersistAcrossLines(t *testing.T) {
	r := NewRepl("", "test", "", "", "", true)
	env := primitives.NewRootEnvironment()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "let x = 41", env)
	buf.Reset()
	r.executeWithRecovery(&buf, "x + 1", env)
	assert.Contains(t, buf.String(), "42")
}

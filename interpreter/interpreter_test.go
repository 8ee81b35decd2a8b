package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lox/golox/lexer"
	"github.com/go-lox/golox/parser"
	"github.com/go-lox/golox/reporter"
)

// run scans, parses and interprets src, returning stdout and whether a
// runtime error fired.
func run(t *testing.T, src string) (stdout string, hadRuntimeErr bool) {
	t.Helper()
	var out bytes.Buffer
	var errOut bytes.Buffer
	rep := reporter.NewConsole(&errOut)

	toks := lexer.New(src, rep).ScanTokens()
	require.False(t, rep.HadError(), "unexpected lexical error: %s", errOut.String())

	stmts, ok := parser.New(toks, rep).Parse()
	require.True(t, ok, "unexpected parse error: %s", errOut.String())

	New(rep, &out).Interpret(stmts)
	return out.String(), rep.HadRuntimeError()
}

func TestInterpreter_AddNumbers(t *testing.T) {
	out, hadErr := run(t, "print 1 + 2;")
	assert.False(t, hadErr)
	assert.Equal(t, "3\n", out)
}

func TestInterpreter_VariablesAndArithmetic(t *testing.T) {
	out, hadErr := run(t, "var a = 1; var b = 2; print a + b;")
	assert.False(t, hadErr)
	assert.Equal(t, "3\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, hadErr := run(t, `var a = "hi"; print a + " there";`)
	assert.False(t, hadErr)
	assert.Equal(t, "hi there\n", out)
}

func TestInterpreter_NumberPlusStringIsRuntimeError(t *testing.T) {
	_, hadErr := run(t, `print 1 + "x";`)
	assert.True(t, hadErr)
}

func TestInterpreter_UninitializedVarIsNil(t *testing.T) {
	out, hadErr := run(t, "var a; print a;")
	assert.False(t, hadErr)
	assert.Equal(t, "nil\n", out)
}

func TestInterpreter_BlockScopingShadowsThenRestores(t *testing.T) {
	out, hadErr := run(t, `{ var a = 1; { var a = 2; print a; } print a; }`)
	assert.False(t, hadErr)
	assert.Equal(t, "2\n1\n", out)
}

func TestInterpreter_OrReturnsOperandValue(t *testing.T) {
	out, hadErr := run(t, `print "a" or 2;`)
	assert.False(t, hadErr)
	assert.Equal(t, "a\n", out)
}

func TestInterpreter_WhileLoop(t *testing.T) {
	out, hadErr := run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	assert.False(t, hadErr)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_ForLoopDesugaring(t *testing.T) {
	out, hadErr := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.False(t, hadErr)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_FunctionCallAndReturn(t *testing.T) {
	out, hadErr := run(t, `
fun add(a, b) { return a + b; }
print add(2, 3);
`)
	assert.False(t, hadErr)
	assert.Equal(t, "5\n", out)
}

func TestInterpreter_FunctionFallsOffEndReturnsNil(t *testing.T) {
	out, hadErr := run(t, `
fun noop() {}
print noop();
`)
	assert.False(t, hadErr)
	assert.Equal(t, "nil\n", out)
}

func TestInterpreter_Closure(t *testing.T) {
	out, hadErr := run(t, `
fun makeCounter() {
  var i = 0;
  fun counter() {
    i = i + 1;
    return i;
  }
  return counter;
}
var counter = makeCounter();
print counter();
print counter();
`)
	assert.False(t, hadErr)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpreter_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, hadErr := run(t, `var a = 1; a();`)
	assert.True(t, hadErr)
}

func TestInterpreter_ArityMismatchIsRuntimeError(t *testing.T) {
	_, hadErr := run(t, `
fun f(a, b) { return a + b; }
f(1);
`)
	assert.True(t, hadErr)
}

func TestInterpreter_ClockIsCallableWithZeroArity(t *testing.T) {
	out, hadErr := run(t, `print clock() > 0;`)
	assert.False(t, hadErr)
	assert.Equal(t, "true\n", out)
}

func TestInterpreter_DivisionByZeroIsNotATrappedError(t *testing.T) {
	out, hadErr := run(t, `print 1 / 0;`)
	assert.False(t, hadErr)
	assert.Equal(t, "+Inf\n", out)
}

func TestInterpreter_NumberRenderingStripsTrailingZero(t *testing.T) {
	out, hadErr := run(t, `print 6 / 2;`)
	assert.False(t, hadErr)
	assert.Equal(t, "3\n", out)
}

func TestInterpreter_EnvironmentRestoredAfterRuntimeErrorInBlock(t *testing.T) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	rep := reporter.NewConsole(&errOut)

	toks := lexer.New(`
var a = "outer";
{
  var a = "inner";
  print 1 + nil;
}
print a;
`, rep).ScanTokens()
	stmts, ok := parser.New(toks, rep).Parse()
	require.True(t, ok)

	in := New(rep, &out)
	in.Interpret(stmts)
	// The runtime error aborts the whole batch (spec.md §4.6), so the
	// final `print a;` never runs — but the failure must not have
	// leaked the inner block's shadow into the outer scope either.
	assert.True(t, rep.HadRuntimeError())
	assert.Equal(t, "", out.String())

	// A later batch on the same interpreter sees the outer binding.
	toks = lexer.New("print a;", rep).ScanTokens()
	stmts, ok = parser.New(toks, rep).Parse()
	require.True(t, ok)
	in.Interpret(stmts)
	assert.Equal(t, "outer\n", out.String())
}

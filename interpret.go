package pdf

import (
	"fmt"
	"io"
)

// A Stack holds the operands of a content-stream operator.
type Stack struct {
	stack []Value
}

func (stk *Stack) Len() int {
	return len(stk.stack)
}

func (stk *Stack) Push(v Value) {
	stk.stack = append(stk.stack, v)
}

// Pop removes and returns the top operand, or a null Value if the stack is empty.
func (stk *Stack) Pop() Value {
	n := len(stk.stack)
	if n == 0 {
		return Value{}
	}
	v := stk.stack[n-1]
	stk.stack[n-1] = Value{}
	stk.stack = stk.stack[:n-1]
	return v
}

// Interpret reads the content stream rd, calling do for every operator with
// its operands on stk. Operands left on the stack by do are discarded.
// Malformed input makes Interpret panic, as the lexer does.
func Interpret(rd io.Reader, do func(stk *Stack, op string)) {
	b := newContentBuffer(rd)

	var stk Stack
	for {
		tok := b.readToken()
		if tok == io.EOF {
			break
		}
		if kw, ok := tok.(keyword); ok {
			switch kw {
			case "<<", "[":
				b.unreadToken(tok)
				stk.Push(Value{data: b.readObject()})
				continue
			case "]", ">>":
				panic(fmt.Errorf("unbalanced %q in content stream", kw))
			}
			do(&stk, string(kw))
			stk.stack = stk.stack[:0]
			continue
		}
		stk.Push(Value{data: tok})
	}
}

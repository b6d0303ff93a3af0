package slab

import (
	"fmt"
	"runtime"
	"strings"
)

// ContractViolation is the value panicked for every fatal precondition
// failure in this package (spec.md §7.1: "contract violations are fatal").
// It carries the violated operation, a message, the caller's location, and
// a remediation hint, mirroring the teacher's errorWithHint/captureStack
// shape in errors.go but generalized beyond arena-only misuse strings.
type ContractViolation struct {
	Op    string
	Msg   string
	Hint  string
	Frame *Frame
}

// Frame is a simplified call-site location, captured the same way the
// teacher's stackInfo is: one runtime.Caller lookup, function name and file
// trimmed to their last path component.
type Frame struct {
	File string
	Line int
	Func string
}

func (v *ContractViolation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "slab: %s: %s", v.Op, v.Msg)
	if v.Frame != nil {
		fmt.Fprintf(&b, "\n  at %s:%d (%s)", v.Frame.File, v.Frame.Line, v.Frame.Func)
	}
	if v.Hint != "" {
		fmt.Fprintf(&b, "\n  hint: %s", v.Hint)
	}
	return b.String()
}

func captureFrame(skip int) *Frame {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}
	fnName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		fnName = fn.Name()
		if idx := strings.LastIndex(fnName, "/"); idx >= 0 {
			fnName = fnName[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}
	return &Frame{File: file, Line: line, Func: fnName}
}

func violation(op, msg, hint string) *ContractViolation {
	return &ContractViolation{Op: op, Msg: msg, Hint: hint, Frame: captureFrame(3)}
}

const (
	hintItemSize       = "Arena item size must be a positive number of bytes."
	hintUseAfterFinal  = "Arena was finalized before this access. Finalize() releases every subarena; no further Alloc/Dealloc is possible."
	hintNilDealloc     = "Dealloc requires a non-nil pointer previously returned by this arena's Alloc."
	hintDoubleFinalize = "Finalize() was called twice on the same arena."
)

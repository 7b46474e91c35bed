// Package cpu implements the Cubot microprocessor and its assembler.
//
// The CPU has eight 16-bit registers (A, B, C, D, X, Y, SP, BP), a set of
// status flags, a flat word-addressed memory and a table of hardware devices
// mapped onto bus addresses. The HWI instruction raises a synchronous
// hardware interrupt: the device mapped at the addressed bus slot runs to
// completion, reading its arguments from the registers (register A selects
// the operation) and writing results back to registers or memory.
//
// Only the small instruction set needed to drive devices is provided.
//
// The assembler reads one instruction per line, with labels, .equ
// equates and compile-time $(...) expressions.
package cpu

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a two pass assembler for the Cubot CPU.
//
// Syntax, one instruction per line:
//
//	label: MNEMONIC dst, src ; comment
//	.equ NAME VALUE
//
// Operands are registers (A, B, C, D, X, Y, SP, BP), numbers, equates,
// labels, $(expr) compile-time expressions, or any of these but an
// expression in brackets for a memory reference ([X], [0x100]).
type Assembler struct {
	Verbose bool // If set, logs each source line at debug level.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to instruction indexes.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate,
// applied at the start of every Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xffff || v64 < -0x8000 {
		err = ErrParseNumber(word)
		return
	}
	value = uint16(v64)

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	for key, ip := range asm.Label {
		pred[key] = starlark.MakeInt(ip)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xffff || st_int64 < -0x8000 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// expand substitutes equates and $() expressions in a line.
func (asm *Assembler) expand(line string) (out string, err error) {
	out = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	return
}

// operand parses a single operand.
func (asm *Assembler) operand(word string) (op Operand, err error) {
	word = strings.TrimSpace(word)
	if len(word) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		var inner Operand
		inner, err = asm.operand(word[1 : len(word)-1])
		if err != nil {
			return
		}
		switch inner.Kind {
		case OPERAND_REG:
			op = Operand{Kind: OPERAND_MEM_REG, Reg: inner.Reg}
		case OPERAND_IMM:
			op = Operand{Kind: OPERAND_MEM_IMM, Value: inner.Value}
		default:
			err = ErrParseValue(word)
		}
		return
	}

	for n, reg := range RegisterNames {
		if strings.EqualFold(reg, word) {
			op = Operand{Kind: OPERAND_REG, Reg: n}
			return
		}
	}

	if ip, ok := asm.Label[word]; ok {
		op = Imm(ip)
		return
	}

	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}

	value, err := asm.valueOf(word)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	op = Operand{Kind: OPERAND_IMM, Value: value}
	return
}

// sourceLine is a line of source that carries an instruction.
type sourceLine struct {
	LineNo int
	Line   string
	Words  []string
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	// Pass one: equates and labels.
	var lines []sourceLine
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			logrus.Debugf("asm: %v: %v", lineno, text)
		}

		line = strings.TrimSpace(strings.Split(text, ";")[0])
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		// .equ NAME VALUE
		if strings.EqualFold(words[0], ".equ") {
			if len(words) < 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate["LINENO"] = strconv.Itoa(lineno)
			var value string
			value, err = asm.expand(strings.Join(words[2:], " "))
			if err != nil {
				return
			}
			asm.Equate[words[1]] = value
			continue
		}

		for len(words) > 0 && strings.HasSuffix(words[0], ":") {
			label := strings.TrimSuffix(words[0], ":")
			if _, ok := asm.Label[label]; ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = len(lines)
			words = words[1:]
		}

		if len(words) == 0 {
			continue
		}

		lines = append(lines, sourceLine{LineNo: lineno, Line: line, Words: words})
	}
	if err = scanner.Err(); err != nil {
		return
	}

	// Pass two: instructions.
	prog = &Program{Labels: maps.Clone(asm.Label)}
	for _, src := range lines {
		lineno = src.LineNo
		line = src.Line
		asm.Equate["LINENO"] = strconv.Itoa(lineno)

		var in Instruction
		in, err = asm.instruction(src)
		if err != nil {
			return
		}
		prog.Instructions = append(prog.Instructions, in)
	}

	return
}

// instruction assembles one source line.
func (asm *Assembler) instruction(src sourceLine) (in Instruction, err error) {
	op, ok := opByName[strings.ToUpper(src.Words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	info := opTable[op]

	in = Instruction{LineNo: src.LineNo, Op: op}

	rest, err := asm.expand(strings.Join(src.Words[1:], " "))
	if err != nil {
		return
	}

	var args []string
	if len(strings.TrimSpace(rest)) > 0 {
		args = strings.Split(rest, ",")
	}

	switch {
	case len(args) > info.Args:
		err = ErrOpcodeExtraArgs
		return
	case len(args) < info.Args:
		err = ErrOpcodeValueMissing
		return
	}

	if info.Args > 0 {
		in.Dst, err = asm.operand(args[0])
		if err != nil {
			return
		}
		if info.Writable && !in.Dst.Writable() {
			err = ErrTargetInvalid
			return
		}
	}

	if info.Args > 1 {
		in.Src, err = asm.operand(args[1])
		if err != nil {
			return
		}
	}

	return
}

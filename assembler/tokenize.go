package assembler

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Operands may be separated by commas, whitespace or both.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Separator", Pattern: `[\s,]+`},
	{Name: "Word", Pattern: `[^\s,]+`},
})

var wordTokenType = lineLexer.Symbols()["Word"]

var labelDefinitionPattern = regexp.MustCompile(`^\s*(\w+):`)

var numberRegisterPattern = regexp.MustCompile(`^[-+]?[0-9]+\((\$[A-Za-z0-9_]+)\)$`)

var registerPattern = regexp.MustCompile(`\$\w*`)

// labelConsumingPattern matches the mnemonics whose last operand names a branch or jump target.
var labelConsumingPattern = regexp.MustCompile(`^(beq|bgt|lea|jalr|jmp)\b`)

const commentChar = '!'

func stripComment(line string) string {
	if i := strings.IndexByte(line, commentChar); i >= 0 {
		return line[:i]
	}
	return line
}

// labelDefinition returns the label defined at the start of line, the byte offset of its name
// and the offset just past its colon.
func labelDefinition(line string) (label string, start, end int, ok bool) {
	m := labelDefinitionPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return "", 0, 0, false
	}
	return line[m[2]:m[3]], m[2], m[1], true
}

// lexWords splits s into words, offsetting every word by base.
func lexWords(s string, base int) []token {
	tokens := []token{}
	if strings.TrimSpace(s) == "" {
		return tokens
	}

	lex, err := lineLexer.LexString("", s)
	if err != nil {
		return tokens
	}
	lexed, err := lexer.ConsumeAll(lex)
	if err != nil {
		// every character is either a separator or part of a word
		return tokens
	}

	for _, t := range lexed {
		if t.Type == wordTokenType {
			tokens = append(tokens, token{Text: t.Value, Offset: base + t.Pos.Offset})
		}
	}
	return tokens
}

func splitLine(number int, raw string) sourceLine {
	code := stripComment(raw)
	line := sourceLine{Number: number, Raw: raw}
	codeStart := 0
	if label, start, end, ok := labelDefinition(code); ok {
		line.Label = label
		line.LabelOffset = start
		codeStart = end
	}
	line.Tokens = lexWords(code[codeStart:], codeStart)
	return line
}

// CollectLabels returns every label defined in lines with the index of its first definition.
func CollectLabels(lines []string) map[string]int {
	labels := make(map[string]int)
	for i, line := range lines {
		label, _, _, ok := labelDefinition(line)
		if !ok {
			continue
		}
		if _, seen := labels[label]; !seen {
			labels[label] = i
		}
	}
	return labels
}

// isNumber accepts an optionally signed integer literal in any base Go understands, as well as
// zero-padded decimals. Magnitude is not checked.
func isNumber(s string) bool {
	_, err := strconv.ParseInt(s, 0, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return true
	}
	_, err = strconv.ParseInt(s, 10, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

var parenStripper = strings.NewReplacer("(", "", ")", "")

func stripParens(s string) string {
	return parenStripper.Replace(s)
}

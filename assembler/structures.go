package assembler

type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

// lineRange spans [start, end) on a single line.
func lineRange(line, start, end int) TextRange {
	return TextRange{
		Start: TextPosition{Line: line, Char: start},
		End:   TextPosition{Line: line, Char: end},
	}
}

type CodeDescription struct {
	URL string `json:"href"`
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "info"
	case Hint:
		return "hint"
	}
	return "unknown"
}

type Diagnostic struct {
	Range           TextRange          `json:"range"`
	Message         string             `json:"message"`
	Source          string             `json:"source,omitempty"`
	CodeDescription *CodeDescription   `json:"codeDescription,omitempty"`
	Severity        DiagnosticSeverity `json:"severity,omitempty"`
}

// token is one operand-or-mnemonic word of a source line. Offset is the byte column of the
// first character in the original, untrimmed line.
type token struct {
	Text   string
	Offset int
}

func (t token) end() int {
	return t.Offset + len(t.Text)
}

// sourceLine is a line after comment and label removal.
type sourceLine struct {
	Number      int
	Raw         string
	Label       string // label defined on this line, if any
	LabelOffset int
	Tokens      []token
}

func (l sourceLine) mnemonic() (token, bool) {
	if len(l.Tokens) == 0 {
		return token{}, false
	}
	return l.Tokens[0], true
}

func (l sourceLine) operands() []token {
	if len(l.Tokens) == 0 {
		return nil
	}
	return l.Tokens[1:]
}

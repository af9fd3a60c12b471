package assembler

type hoverInfoFormatsType struct {
	labelDefinition string
	labelReference  string
	integerLiteral  string

	instruction      string
	directive        string
	register         string
	describeRegister string
}

var hoverInfoFormats = hoverInfoFormatsType{
	labelDefinition: "Definition of label `%s`.\n\nLine %d",
	labelReference:  "Reference to label `%s`\n\nDefined on line %d",
	integerLiteral:  "Integer Literal `%d` (`%s`)",

	instruction:      "Instruction `%s`\n\nFormat: `%s`\n\nOperands: %s",
	directive:        "Directive `%s`\n\nOperands are not checked.",
	register:         "Register `%s`",
	describeRegister: "Register `%s`\n\n%s",
}

var registerDescriptions = map[string]string{
	"$zero": "Zero Register. Always evaluates to `0`",
	"$at":   "Assembler Temporary. Reserved for pseudo-instruction expansion",
	"$v0":   "Return Value Register. Holds the value returned by a function",
	"$a0":   "Argument Register. First function argument",
	"$a1":   "Argument Register. Second function argument",
	"$a2":   "Argument Register. Third function argument",
	"$t0":   "Temporary Register. Caller-saved",
	"$t1":   "Temporary Register. Caller-saved",
	"$t2":   "Temporary Register. Caller-saved",
	"$s0":   "Saved Register. Callee-saved",
	"$s1":   "Saved Register. Callee-saved",
	"$s2":   "Saved Register. Callee-saved",
	"$k0":   "Kernel Register. Reserved for the interrupt handler",
	"$sp":   "Stack Pointer Register. Contains the address of the top of the stack",
	"$fp":   "Frame Pointer Register. Contains the address of the current stack frame",
	"$ra":   "Return Address Register. Contains the return address of the current function",
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// InnerDocComment is a module-level doc line.
	InnerDocComment // //!
	// DocComment is an item- or field-level doc line.
	DocComment // ///

	// Ident represents an identifier token.
	Ident
	// NumberLit is a numeric literal with optional sign, radix prefix and suffix.
	NumberLit // 42, 0xFF, -1.5e3, 10u8
	// StringLit is a double-quoted string literal.
	StringLit // "..."
	// CharLit is a single-quoted character literal.
	CharLit // 'x'

	// KwBoolElim represents the 'bool_elim' keyword.
	KwBoolElim // bool_elim
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwF32 represents the 'f32' keyword.
	KwF32 // f32
	// KwF64 represents the 'f64' keyword.
	KwF64 // f64
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwItem represents the 'item' keyword.
	KwItem // item
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	Bang      // !
	Colon     // :
	Comma     // ,
	Equals    // =
	Semicolon // ;

	kindCount
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	InnerDocComment: "InnerDocComment",
	DocComment:      "DocComment",
	Ident:           "Ident",
	NumberLit:       "NumberLit",
	StringLit:       "StringLit",
	CharLit:         "CharLit",
	KwBoolElim:      "KwBoolElim",
	KwElse:          "KwElse",
	KwF32:           "KwF32",
	KwF64:           "KwF64",
	KwIf:            "KwIf",
	KwInt:           "KwInt",
	KwItem:          "KwItem",
	KwStruct:        "KwStruct",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	LParen:          "LParen",
	RParen:          "RParen",
	Bang:            "Bang",
	Colon:           "Colon",
	Comma:           "Comma",
	Equals:          "Equals",
	Semicolon:       "Semicolon",
}

var kindSymbols = map[Kind]string{
	EOF:        "end of file",
	KwBoolElim: "bool_elim",
	KwElse:     "else",
	KwF32:      "f32",
	KwF64:      "f64",
	KwIf:       "if",
	KwInt:      "int",
	KwItem:     "item",
	KwStruct:   "struct",
	LBrace:     "{",
	RBrace:     "}",
	LParen:     "(",
	RParen:     ")",
	Bang:       "!",
	Colon:      ":",
	Comma:      ",",
	Equals:     "=",
	Semicolon:  ";",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns a user-facing rendering: the lexeme for fixed tokens,
// a category name otherwise.
func (k Kind) Describe() string {
	if s, ok := kindSymbols[k]; ok {
		if k == EOF {
			return s
		}
		return "`" + s + "`"
	}
	switch k {
	case InnerDocComment:
		return "inner doc comment"
	case DocComment:
		return "doc comment"
	case Ident:
		return "identifier"
	case NumberLit:
		return "number literal"
	case StringLit:
		return "string literal"
	case CharLit:
		return "character literal"
	}
	return "invalid token"
}

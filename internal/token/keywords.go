package token

var keywords = map[string]Kind{
	"bool_elim": KwBoolElim,
	"else":      KwElse,
	"f32":       KwF32,
	"f64":       KwF64,
	"if":        KwIf,
	"int":       KwInt,
	"item":      KwItem,
	"struct":    KwStruct,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: `Int` и `F32` остаются идентификаторами.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

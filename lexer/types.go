package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenError     TokenType = iota
	TokenEOF                 // End of input
	TokenAtom                // Identifier or procedure name
	TokenConstant            // Reserved constant: "#t", "#f"
	TokenNumber              // Integers
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenDot                 // Dot: "."
	TokenChar                // Any other single character
	TokenString              // Double quoted string
	TokenQuote               // Quote: "'"
	TokenNewLine             // Newline: "\n"
)

var tokenValues = map[TokenType][]byte{
	TokenOpenList:  []byte{'('},
	TokenCloseList: []byte{')'},
	TokenDot:       []byte{'.'},
	TokenQuote:     []byte{'\''},
	TokenNewLine:   []byte{'\n'},
}

var tokenNames = map[TokenType]string{
	TokenError:     "error",
	TokenEOF:       "EOF",
	TokenAtom:      "atom",
	TokenConstant:  "constant",
	TokenNumber:    "number",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenDot:       "dot",
	TokenChar:      "char",
	TokenString:    "string",
	TokenQuote:     "quote",
	TokenNewLine:   "newline",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenError]
}

func isTokenType(tt TokenType) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range tokenValues[tt] {
			if v == c {
				return true
			}
		}
		return false
	}
}

var (
	wordBreak = []byte{'(', ')', '\'', '"', ';'}
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

// isWordBody reports whether c may continue an atom: printable ASCII that is
// neither a space nor a list delimiter.
func isWordBody(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	for _, v := range wordBreak {
		if v == c {
			return false
		}
	}
	return true
}

package lexer

func isWhitespace(char byte) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r' || char == '\f' || char == '\v'
}

func isLetter(char byte) bool {
	return 'a' <= char && char <= 'z' || 'A' <= char && char <= 'Z' || char == '_'
}

func isDigit(char byte) bool {
	return '0' <= char && char <= '9'
}

// isIdentifierChar reports whether char may continue an identifier.
func isIdentifierChar(char byte) bool {
	return isLetter(char) || isDigit(char)
}

// isContinuationByte reports whether b is a non-leading byte of a UTF-8 sequence.
// Such bytes do not advance the column.
func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}

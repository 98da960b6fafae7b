package scanner

import (
	"strconv"
	"unicode"

	"github.com/ltungv/dry/internal/report"
	"github.com/ltungv/dry/internal/token"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line      int
	column    int
	start     int
	startLine int
	startCol  int
	current   int
	source    []rune
	tokens    []*token.Token
	reporter  report.Reporter
}

// New creates a new token scanner
func New(source []rune, reporter report.Reporter) *Scanner {
	return NewAtLine(source, 1, reporter)
}

// NewAtLine creates a scanner for source that starts at the given line of a
// larger input, so that positions refer to that input.
func NewAtLine(source []rune, line int, reporter report.Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = line
	scanner.column = 1
	scanner.source = source
	scanner.tokens = make([]*token.Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The last token is always EOF.
func (scanner *Scanner) Scan() []*token.Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startLine = scanner.line
		scanner.startCol = scanner.column
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '(':
			scanner.addToken(token.LEFT_PAREN, nil)
		case ')':
			scanner.addToken(token.RIGHT_PAREN, nil)
		case ',':
			scanner.addToken(token.COMMA, nil)
		case '-':
			scanner.addToken(token.MINUS, nil)
		case '+':
			scanner.addToken(token.PLUS, nil)
		case '%':
			scanner.addToken(token.PERCENT, nil)
		case '&':
			scanner.addToken(token.AMPERSAND, nil)
		case '|':
			scanner.addToken(token.PIPE, nil)
		case '^':
			scanner.addToken(token.CARET, nil)
		case '~':
			scanner.addToken(token.TILDE, nil)
		// Double character tokens
		case '*':
			if scanner.match('*') {
				scanner.addToken(token.STAR_STAR, nil)
			} else {
				scanner.addToken(token.STAR, nil)
			}
		case '!':
			if scanner.match('=') {
				scanner.addToken(token.BANG_EQUAL, nil)
			} else {
				scanner.addToken(token.BANG, nil)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(token.EQUAL_EQUAL, nil)
			} else {
				scanner.report("Unexpected character.")
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(token.LESS_EQUAL, nil)
			} else if scanner.match('<') {
				scanner.addToken(token.LESS_LESS, nil)
			} else {
				scanner.addToken(token.LESS, nil)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(token.GREATER_EQUAL, nil)
			} else if scanner.match('>') {
				scanner.addToken(token.GREATER_GREATER, nil)
			} else {
				scanner.addToken(token.GREATER, nil)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else if scanner.match('*') {
				scanner.scanMultilineComment()
			} else {
				scanner.addToken(token.SLASH, nil)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.report("Unexpected character.")
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		token.New(token.EOF, "", nil, scanner.line, scanner.column),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		scanner.advance()
	}

	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
		// content between '"' pair
		literal := string(scanner.source[scanner.start+1 : scanner.current-1])
		scanner.addToken(token.STRING, literal)
	} else {
		scanner.report("Unterminated string.")
	}
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: we're ignoring the error, since we have already verified that the
	// lexeme contains a valid 64-bit floating point.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	scanner.addToken(token.NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	typ, isKeyword := token.Keywords[lexeme]
	if !isKeyword {
		scanner.addToken(token.IDENTIFIER, nil)
		return
	}
	switch typ {
	case token.TRUE:
		scanner.addToken(typ, true)
	case token.FALSE:
		scanner.addToken(typ, false)
	default:
		scanner.addToken(typ, nil)
	}
}

func (scanner *Scanner) scanMultilineComment() {
	for {
		for scanner.peek() != '*' && scanner.hasNext() {
			scanner.advance()
		}
		if !scanner.hasNext() {
			scanner.report("Unterminated multiline comment.")
			return
		}
		scanner.advance()
		if scanner.match('/') {
			return
		}
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ token.Type, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := token.New(typ, lexeme, literal, scanner.startLine, scanner.startCol)
	scanner.tokens = append(scanner.tokens, tok)
}

// report sends an error positioned at the start of the current lexeme.
func (scanner *Scanner) report(message string) {
	scanner.reporter.Report(
		newScanError(scanner.startLine, scanner.startCol, message),
	)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possition, keeping
// track of lines and columns
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	if r == '\n' {
		scanner.line++
		scanner.column = 1
	} else {
		scanner.column++
	}
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() || scanner.source[scanner.current] != expected {
		return false
	}
	scanner.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// Package token defines the lexical token types for SQL style analysis.
//
// Unlike a parser-oriented token set, whitespace runs and comments are
// first-class tokens: spacing and indentation rules need to see the exact
// formatting of the source, not a pre-digested view of it.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Trivia - preserved so style rules can inspect exact formatting
	WHITESPACE // run of spaces, tabs, newlines
	COMMENT    // -- line comment or /* block comment */

	// Literals
	IDENT  // unquoted identifier
	QIDENT // "quoted identifier"
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	DPIPE   // ||
	EQ      // =
	NE      // != or <>
	LT      // <
	GT      // >
	LE      // <=
	GE      // >=

	// Punctuation
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]

	// Keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CAST
	CROSS
	DELETE
	DESC
	DISTINCT
	ELSE
	END
	EXCEPT
	EXISTS
	FALSE
	FROM
	FULL
	GROUP
	HAVING
	IN
	INNER
	INSERT
	INTERSECT
	INTO
	IS
	JOIN
	LEFT
	LIKE
	LIMIT
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	RIGHT
	SELECT
	SET
	THEN
	TRUE
	UNION
	UPDATE
	USING
	VALUES
	WHEN
	WHERE
	WITH
)

// Token represents a lexical token with its raw source text and span.
// Literal is always the exact source slice, delimiters included, so that
// fixes can be applied by plain byte-range substitution.
type Token struct {
	Type    Type
	Literal string
	Pos     Position // start of the token
	End     Position // position just past the token
}

// Span returns the source span covered by the token.
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

// IsTrivia returns true for whitespace and comment tokens.
func (t Token) IsTrivia() bool {
	return t.Type == WHITESPACE || t.Type == COMMENT
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var typeNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	WHITESPACE: "WHITESPACE",
	COMMENT:    "COMMENT",

	IDENT:  "IDENT",
	QIDENT: "QIDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	DPIPE:   "||",
	EQ:      "=",
	NE:      "!=",
	LT:      "<",
	GT:      ">",
	LE:      "<=",
	GE:      ">=",

	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",

	ALL:       "ALL",
	AND:       "AND",
	AS:        "AS",
	ASC:       "ASC",
	BETWEEN:   "BETWEEN",
	BY:        "BY",
	CASE:      "CASE",
	CAST:      "CAST",
	CROSS:     "CROSS",
	DELETE:    "DELETE",
	DESC:      "DESC",
	DISTINCT:  "DISTINCT",
	ELSE:      "ELSE",
	END:       "END",
	EXCEPT:    "EXCEPT",
	EXISTS:    "EXISTS",
	FALSE:     "FALSE",
	FROM:      "FROM",
	FULL:      "FULL",
	GROUP:     "GROUP",
	HAVING:    "HAVING",
	IN:        "IN",
	INNER:     "INNER",
	INSERT:    "INSERT",
	INTERSECT: "INTERSECT",
	INTO:      "INTO",
	IS:        "IS",
	JOIN:      "JOIN",
	LEFT:      "LEFT",
	LIKE:      "LIKE",
	LIMIT:     "LIMIT",
	NOT:       "NOT",
	NULL:      "NULL",
	OFFSET:    "OFFSET",
	ON:        "ON",
	OR:        "OR",
	ORDER:     "ORDER",
	OUTER:     "OUTER",
	OVER:      "OVER",
	PARTITION: "PARTITION",
	RIGHT:     "RIGHT",
	SELECT:    "SELECT",
	SET:       "SET",
	THEN:      "THEN",
	TRUE:      "TRUE",
	UNION:     "UNION",
	UPDATE:    "UPDATE",
	USING:     "USING",
	VALUES:    "VALUES",
	WHEN:      "WHEN",
	WHERE:     "WHERE",
	WITH:      "WITH",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]Type{
	"all":       ALL,
	"and":       AND,
	"as":        AS,
	"asc":       ASC,
	"between":   BETWEEN,
	"by":        BY,
	"case":      CASE,
	"cast":      CAST,
	"cross":     CROSS,
	"delete":    DELETE,
	"desc":      DESC,
	"distinct":  DISTINCT,
	"else":      ELSE,
	"end":       END,
	"except":    EXCEPT,
	"exists":    EXISTS,
	"false":     FALSE,
	"from":      FROM,
	"full":      FULL,
	"group":     GROUP,
	"having":    HAVING,
	"in":        IN,
	"inner":     INNER,
	"insert":    INSERT,
	"intersect": INTERSECT,
	"into":      INTO,
	"is":        IS,
	"join":      JOIN,
	"left":      LEFT,
	"like":      LIKE,
	"limit":     LIMIT,
	"not":       NOT,
	"null":      NULL,
	"offset":    OFFSET,
	"on":        ON,
	"or":        OR,
	"order":     ORDER,
	"outer":     OUTER,
	"over":      OVER,
	"partition": PARTITION,
	"right":     RIGHT,
	"select":    SELECT,
	"set":       SET,
	"then":      THEN,
	"true":      TRUE,
	"union":     UNION,
	"update":    UPDATE,
	"using":     USING,
	"values":    VALUES,
	"when":      WHEN,
	"where":     WHERE,
	"with":      WITH,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier (lowercased) is a keyword, the keyword token type is
// returned; otherwise IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a reserved keyword.
func IsKeyword(t Type) bool {
	return t >= ALL && t <= WITH
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t Type) bool {
	return t >= PLUS && t <= GE
}

// IsIdent returns true for quoted and unquoted identifiers.
func IsIdent(t Type) bool {
	return t == IDENT || t == QIDENT
}

// clauseKeywords are the keywords that open a top-level clause.
var clauseKeywords = map[Type]bool{
	SELECT: true,
	FROM:   true,
	WHERE:  true,
	GROUP:  true,
	HAVING: true,
	ORDER:  true,
	LIMIT:  true,
	OFFSET: true,
	UPDATE: true,
	INSERT: true,
	DELETE: true,
	VALUES: true,
	UNION:  true,
	WITH:   true,
}

// IsClauseKeyword returns true if the token type opens a top-level clause
// (SELECT, FROM, WHERE, GROUP, HAVING, ORDER, LIMIT, ...).
func IsClauseKeyword(t Type) bool {
	return clauseKeywords[t]
}

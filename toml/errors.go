package toml

import "fmt"

// ErrorKind tags every error the parser or table model can raise. These
// are tagged kinds, not strings, so a caller can branch on Kind rather
// than matching message text.
type ErrorKind uint8

const (
	// Lexical / parse family.
	ErrInvalidChar ErrorKind = iota
	ErrInvalidEscapeValue
	ErrInvalidUnicode
	ErrInvalidStringDelimiter
	ErrEOF
	ErrInvalidKey
	ErrInvalidKeyValuePair
	ErrInvalidTableHeader
	ErrInvalidTableArrayHeader
	ErrInlineDefinition
	ErrTrailingComma
	ErrInvalidValue

	// Structural (table model) family.
	ErrInvalidTableNesting
	ErrDuplicateTableHeader
	ErrImmutableInlineTable
	ErrDuplicateKeyValuePair
	ErrTableRedefinition
	ErrKeyValueRedefinition
	ErrExpectedTable
	ErrExpectedArray
	ErrExpectedArrayOfTables
	ErrKeyValueTypeOverride

	// Scalar family.
	ErrInvalidYear
	ErrInvalidMonth
	ErrInvalidDay
	ErrInvalidHour
	ErrInvalidMinute
	ErrInvalidSecond
	ErrInvalidNanoSecond
	ErrInvalidTimeOffset
	ErrIntegerOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidChar:
		return "InvalidChar"
	case ErrInvalidEscapeValue:
		return "InvalidEscapeValue"
	case ErrInvalidUnicode:
		return "InvalidUnicode"
	case ErrInvalidStringDelimiter:
		return "InvalidStringDelimiter"
	case ErrEOF:
		return "ErrorEOF"
	case ErrInvalidKey:
		return "InvalidKey"
	case ErrInvalidKeyValuePair:
		return "InvalidKeyValuePair"
	case ErrInvalidTableHeader:
		return "InvalidTableHeader"
	case ErrInvalidTableArrayHeader:
		return "InvalidTableArrayHeader"
	case ErrInlineDefinition:
		return "InlineDefinition"
	case ErrTrailingComma:
		return "TrailingComma"
	case ErrInvalidValue:
		return "InvalidValue"
	case ErrInvalidTableNesting:
		return "InvalidTableNesting"
	case ErrDuplicateTableHeader:
		return "DuplicateTableHeader"
	case ErrImmutableInlineTable:
		return "ImmutableInlineTable"
	case ErrDuplicateKeyValuePair:
		return "DuplicateKeyValuePair"
	case ErrTableRedefinition:
		return "TableRedefinition"
	case ErrKeyValueRedefinition:
		return "KeyValueRedefinition"
	case ErrExpectedTable:
		return "ExpectedTable"
	case ErrExpectedArray:
		return "ExpectedArray"
	case ErrExpectedArrayOfTables:
		return "ExpectedArrayOfTables"
	case ErrKeyValueTypeOverride:
		return "KeyValueTypeOverride"
	case ErrInvalidYear:
		return "InvalidYear"
	case ErrInvalidMonth:
		return "InvalidMonth"
	case ErrInvalidDay:
		return "InvalidDay"
	case ErrInvalidHour:
		return "InvalidHour"
	case ErrInvalidMinute:
		return "InvalidMinute"
	case ErrInvalidSecond:
		return "InvalidSecond"
	case ErrInvalidNanoSecond:
		return "InvalidNanoSecond"
	case ErrInvalidTimeOffset:
		return "InvalidTimeOffset"
	case ErrIntegerOverflow:
		return "IntegerOverflow"
	default:
		return "Unknown"
	}
}

// ErrorContext pinpoints where a parse failed: the byte index into the
// source buffer and the 1-based line number computed by counting
// newlines in the consumed prefix.
type ErrorContext struct {
	Kind      ErrorKind
	ByteIndex int
	Line      int
}

// ParseError is the concrete error type returned by every parse and
// table-model failure path. Kind is recoverable via errors.As without
// matching message text.
type ParseError struct {
	Kind      ErrorKind
	Message   string
	ByteIndex int
	Line      int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toml: line %d: %s: %s", e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("toml: %s: %s", e.Kind, e.Message)
}

// withPosition returns a copy of e with position context attached, used
// by the parser to add context to errors bubbled up from the table
// model or scalar interpreters, which know nothing about source offsets.
func (e *ParseError) withPosition(byteIndex, line int) *ParseError {
	cp := *e
	cp.ByteIndex = byteIndex
	cp.Line = line
	return &cp
}

package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexBadNumber          Code = 1004
	LexTokenTooLong       Code = 1005

	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectSemicolon   Code = 2003
	SynExpectIdentifier  Code = 2004
	SynExpectTerm        Code = 2005

	SemInfo             Code = 3000
	SemUnknownGlobal    Code = 3001
	SemMalformedLiteral Code = 3002

	IOLoadFileError   Code = 4001
	IOCacheError      Code = 4002
	IOManifestInvalid Code = 4003

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexUnterminatedChar:   "Unterminated character literal",
	LexBadNumber:          "Bad number",
	LexTokenTooLong:       "Token too long",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedDelimiter:  "Unclosed delimiter",
	SynExpectSemicolon:    "Expect semicolon",
	SynExpectIdentifier:   "Expect identifier",
	SynExpectTerm:         "Expect term",
	SemInfo:               "Semantic information",
	SemUnknownGlobal:      "Unknown global",
	SemMalformedLiteral:   "Malformed literal",
	IOLoadFileError:       "Failed to load file",
	IOCacheError:          "Cache access failed",
	IOManifestInvalid:     "Invalid project manifest",
	ObsInfo:               "Observability information",
	ObsTimings:            "Timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

package server

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// RequestIDHeader carries the ID assigned to each request.
const RequestIDHeader = "X-Request-Id"

// MaxPatternLength is the longest pattern the server compiles.
const MaxPatternLength = 4096

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("glob", validGlob); err != nil {
		panic(err)
	}
	return v
}

// validGlob accepts patterns that are valid UTF-8 and not too long. Any such
// string is a pattern; malformed syntax matches literally.
func validGlob(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) <= MaxPatternLength && utf8.ValidString(s)
}

// MatchOptions mirrors the extglob options.
type MatchOptions struct {
	CaseInsensitive bool `json:"case_insensitive,omitempty"`
	Dot             bool `json:"dot,omitempty"`
	Unixify         bool `json:"unixify,omitempty"`
	NoGlobStar      bool `json:"no_globstar,omitempty"`
}

// MatchRequest asks for candidates to be matched against a pattern.
type MatchRequest struct {
	Pattern    string       `json:"pattern" validate:"glob"`
	Candidates []string     `json:"candidates" validate:"required,max=100000"`
	Options    MatchOptions `json:"options,omitempty"`
}

func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// MatchResponse reports the result for each candidate, in request order, and
// the candidates that matched.
type MatchResponse struct {
	Pattern string   `json:"pattern"`
	Matches []string `json:"matches"`
	Results []bool   `json:"results"`
}

// ErrorResponse is returned with any 4xx or 5xx status.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message,omitempty"`
}

type ErrorCode string

const (
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeCancelled      ErrorCode = "CANCELLED"
)

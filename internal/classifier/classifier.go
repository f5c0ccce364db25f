// Package classifier partitions a token sequence into numeric, alphabetic
// and special categories and derives their aggregates.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidInput is reported when the data field is present but is not
// an array.
var ErrInvalidInput = errors.New("data field must be an array")

type Request struct {
	Data any `json:"data"`
}

type Result struct {
	IsSuccess         bool     `json:"is_success"`
	Error             string   `json:"error,omitempty"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// Failure returns the failure-shaped Result: success flag down, the error
// description set, every aggregate at its empty default.
func Failure(err error) Result {
	res := emptyResult()
	res.Error = err.Error()
	return res
}

func emptyResult() Result {
	return Result{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
		Sum:               "0",
	}
}

// Classify partitions the request's tokens and assembles the aggregates.
// It is a total function: malformed input is reported through the Result,
// never raised. A missing data field counts as an empty sequence.
func Classify(req Request) Result {
	tokens, err := tokenize(req.Data)
	if err != nil {
		return Failure(err)
	}

	res := emptyResult()
	res.IsSuccess = true

	sum := new(big.Int)
	var letters []string

	for _, tok := range tokens {
		switch {
		case isDigits(tok):
			n := new(big.Int)
			n.SetString(tok, 10)
			// minimal decimal form, so "007" renders as "7"
			if n.Bit(0) == 1 {
				res.OddNumbers = append(res.OddNumbers, n.String())
			} else {
				res.EvenNumbers = append(res.EvenNumbers, n.String())
			}
			sum.Add(sum, n)
		case isSingleLetter(tok):
			letters = append(letters, tok)
		default:
			res.SpecialCharacters = append(res.SpecialCharacters, tok)
		}
	}

	sortLetters(letters)
	res.Alphabets = append(res.Alphabets, letters...)
	res.ConcatString = strings.Join(letters, "")
	res.Sum = sum.String()

	return res
}

// tokenize reduces the data field to trimmed string tokens, dropping the
// ones that trim to empty. A nil field is an empty sequence; anything else
// that is not an array is ErrInvalidInput.
func tokenize(data any) ([]string, error) {
	if data == nil {
		return nil, nil
	}

	seq, ok := data.([]any)
	if !ok {
		return nil, ErrInvalidInput
	}

	tokens := make([]string, 0, len(seq))
	for _, v := range seq {
		tok := strings.TrimSpace(stringify(v))
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}

// isDigits recognizes non-empty runs of ASCII decimal digits. Signs and
// decimal points disqualify, those tokens fall through to special.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isSingleLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	b := s[0]
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// sortLetters orders uppercase before lowercase, then by code point.
// Comparing (caseRank, byte) keys keeps the order total and transitive.
func sortLetters(letters []string) {
	sort.SliceStable(letters, func(i, j int) bool {
		a, b := letters[i][0], letters[j][0]
		if caseRank(a) != caseRank(b) {
			return caseRank(a) < caseRank(b)
		}
		return a < b
	})
}

func caseRank(b byte) int {
	if b >= 'a' && b <= 'z' {
		return 1
	}
	return 0
}

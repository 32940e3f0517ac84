package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeQuotes reads a JSON price document and returns a StaticQuotes table.
//
// With an empty path the document must be a plain object mapping symbols to
// prices, e.g. {"RELIANCE.NS": 2850.5}. With a path, the JSONPath expression
// selects the symbol-to-price object inside an arbitrary vendor dump, e.g.
// "$.data.quotes". Prices may be numbers or numeric strings, some vendors
// serve either.
func DecodeQuotes(r io.Reader, path, currency string) (StaticQuotes, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid quotes document: %w", err)
	}

	if path != "" {
		jval, err := jsonpathGet(path, jobj)
		if err != nil {
			return nil, fmt.Errorf("error evaluating quotes path %q: %w", path, err)
		}
		jobj = jval
	}

	table, ok := jobj.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("quotes document is not an object of symbol to price, got %T", jobj)
	}

	quotes := make(StaticQuotes, len(table))
	for symbol, jval := range table {
		val, err := asPrice(jval)
		if err != nil {
			return nil, fmt.Errorf("cannot read price for %q: %w", symbol, err)
		}
		quotes[symbol] = M(val, currency)
	}
	return quotes, nil
}

// jsonpathGet evaluates a JSONPath expression against a decoded document.
// because jsonpath is never clear about whether it returns a list of 1
// answer, or a single answer: this call keeps the first one if any.
func jsonpathGet(path string, jobj any) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

// asPrice converts a decoded JSON value into a float price. Some vendors
// return numbers as strings, with comma decimal separators.
func asPrice(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price string %q: %w", v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("neither a float nor a string, got %T", jval)
	}
}

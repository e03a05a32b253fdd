// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func removeSurroundingParenthesis(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 {
		if string(s[0]) != "(" || string(s[len(s)-1]) != ")" {
			return "", fmt.Errorf("expected method spec %q to be surrounded by parenthesis", s)
		}
		s = s[1 : len(s)-1]
	}
	return s, nil
}

func getWords(s string) []string {
	words := []string{}
	word := ""
	depth := 0
	for _, rune := range s {
		c := string(rune)
		if depth > 0 {
			switch c {
			case "(":
				depth++
			case ")":
				depth--
			}
			if depth == 0 {
				words = append(words, word)
				word = ""
			} else {
				word += c
			}
			continue
		}
		if c == " " || c == "," || c == "(" {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		}
		if c == " " || c == "," {
			continue
		}
		if c == "(" {
			depth++
			continue
		}
		word += c
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

// structFieldNames returns the field names of params[0] when it is the only
// parameter and a struct with exactly n fields
func structFieldNames(n int, params ...interface{}) []string {
	if len(params) != 1 || params[0] == nil {
		return nil
	}
	rt := reflect.TypeOf(params[0])
	if rt.Kind() != reflect.Struct || rt.NumField() != n {
		return nil
	}
	names := make([]string, n)
	for i := range names {
		names[i] = rt.Field(i).Name
	}
	return names
}

func getMap(
	types []string,
	params ...interface{},
) []map[string]interface{} {
	r := []map[string]interface{}{}
	names := structFieldNames(len(types), params...)
	for i, t := range types {
		spaceIndex := strings.Index(t, " ")
		commaIndex := strings.Index(t, ",")
		m := map[string]interface{}{}
		if spaceIndex != -1 || commaIndex != -1 {
			// tuple, its components get named after the struct fields given as param
			var param interface{}
			if i < len(params) {
				param = params[i]
			}
			m["components"] = getMap(getWords(t), param)
			m["internalType"] = "tuple"
			m["type"] = "tuple"
			m["name"] = ""
		} else {
			name := ""
			if names != nil {
				name = names[i]
			}
			m["internalType"] = t
			m["type"] = t
			m["name"] = name
		}
		r = append(r, m)
	}
	return r
}

// ParseSpec parses a method spec of the form
//
//	name(inputType1, inputType2)->(outputType1)
//
// where tuple types are written between parenthesis, and returns the method
// name together with a JSON ABI containing just that method. An empty name
// describes a constructor.
func ParseSpec(
	methodSpec string,
	paid bool,
	view bool,
	params ...interface{},
) (string, string, error) {
	methodSpec = strings.TrimSpace(methodSpec)
	index := strings.Index(methodSpec, "(")
	if index == -1 {
		methodSpec += "()"
		index = len(methodSpec) - 2
	}
	methodName := methodSpec[:index]
	methodTypes := methodSpec[index:]
	methodInputs := ""
	methodOutputs := ""
	index = strings.Index(methodTypes, "->")
	if index == -1 {
		methodInputs = methodTypes
	} else {
		methodInputs = methodTypes[:index]
		methodOutputs = methodTypes[index+2:]
	}
	var err error
	methodInputs, err = removeSurroundingParenthesis(methodInputs)
	if err != nil {
		return "", "", err
	}
	methodOutputs, err = removeSurroundingParenthesis(methodOutputs)
	if err != nil {
		return "", "", err
	}
	inputTypes := getWords(methodInputs)
	outputTypes := getWords(methodOutputs)
	inputs := getMap(inputTypes, params...)
	outputs := getMap(outputTypes)
	entry := map[string]interface{}{
		"inputs":          inputs,
		"stateMutability": "nonpayable",
		"type":            "function",
	}
	if methodName == "" {
		entry["type"] = "constructor"
	} else {
		entry["name"] = methodName
		entry["outputs"] = outputs
	}
	if paid {
		entry["stateMutability"] = "payable"
	}
	if view {
		entry["stateMutability"] = "view"
	}
	abiBytes, err := json.MarshalIndent([]map[string]interface{}{entry}, "", "  ")
	if err != nil {
		return "", "", err
	}
	return methodName, string(abiBytes), nil
}

// ParseABI is ParseSpec followed by the go-ethereum ABI parser
func ParseABI(
	methodSpec string,
	paid bool,
	view bool,
	params ...interface{},
) (string, abi.ABI, error) {
	methodName, methodABI, err := ParseSpec(methodSpec, paid, view, params...)
	if err != nil {
		return "", abi.ABI{}, err
	}
	parsed, err := abi.JSON(strings.NewReader(methodABI))
	if err != nil {
		return "", abi.ABI{}, fmt.Errorf("invalid method spec %q: %w", methodSpec, err)
	}
	return methodName, parsed, nil
}

// GetMethodReturn extracts the single value returned by method out of out
func GetMethodReturn[T any](method string, out []interface{}) (T, error) {
	var zero T
	if len(out) == 0 {
		return zero, fmt.Errorf("error at %s call: no return value", method)
	}
	if len(out) != 1 {
		return zero, fmt.Errorf("error at %s call: expected 1 return value, got %d", method, len(out))
	}
	value, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("error at %s call: expected %T, got %T", method, zero, out[0])
	}
	return value, nil
}

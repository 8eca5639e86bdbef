package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
)

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, jsonError(d, dec, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("invalid data after top-level value")
		}
		return nil, jsonError(d, dec, err)
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", v)
		}
	case string:
		return ir.FromString(v), nil
	case json.Number:
		return ir.FromNumber(string(v)), nil
	case bool:
		return ir.FromBool(v), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*ir.Node, error) {
	obj := ir.Object()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		val, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*ir.Node, error) {
	arr := ir.Array()
	for dec.More() {
		val, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func jsonError(d []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	msg := err.Error()
	var synErr *json.SyntaxError
	switch {
	case errors.As(err, &synErr):
		offset = synErr.Offset
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		offset = int64(len(d))
		msg = "unexpected end of JSON input"
	}
	line, col := lineCol(d, offset)
	return &SyntaxError{
		Format: format.JSONFormat,
		Line:   line,
		Column: col,
		Msg:    msg,
		Err:    err,
	}
}

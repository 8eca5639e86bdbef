package parse

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"

	"github.com/goccy/go-yaml"
)

// yamlPosRE matches the "[line:col]" prefix of go-yaml error messages.
var yamlPosRE = regexp.MustCompile(`^\[(\d+):(\d+)\]\s*`)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, yamlError(err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		obj := ir.Object()
		for _, item := range x {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(yamlKey(item.Key), val)
		}
		return obj, nil
	case []any:
		arr := ir.Array()
		for _, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			arr.Append(val)
		}
		return arr, nil
	case map[string]any:
		vals := make(map[any]any, len(x))
		for k, v := range x {
			vals[k] = v
		}
		return fromYAML(vals)
	case map[any]any:
		vals := make(map[string]any, len(x))
		for k, v := range x {
			vals[yamlKey(k)] = v
		}
		obj := ir.Object()
		for _, k := range slices.Sorted(maps.Keys(vals)) {
			val, err := fromYAML(vals[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, val)
		}
		return obj, nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case []byte:
		return ir.FromString(string(x)), nil
	default:
		return ir.FromAny(v)
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func yamlError(err error) error {
	msg := strings.TrimSpace(err.Error())
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	res := &SyntaxError{
		Format: format.YAMLFormat,
		Msg:    msg,
		Err:    err,
	}
	if m := yamlPosRE.FindStringSubmatch(msg); m != nil {
		res.Line, _ = strconv.Atoi(m[1])
		res.Column, _ = strconv.Atoi(m[2])
		res.Msg = msg[len(m[0]):]
	}
	return res
}

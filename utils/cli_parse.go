package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ParseCLI populates a configuration struct from a list of
// "key.path=value" tokens, so a config can be supplied directly on the
// command line instead of through a config file. Keys follow the json
// tags of the output struct; embedded structs contribute their fields
// at the embedding level.
func ParseCLI(prefix string, args []string, out interface{}) error {
	fieldTypes := map[string]reflect.Type{}
	buildFieldTypesMap(reflect.TypeOf(out).Elem(), "", fieldTypes)

	data := map[string]interface{}{}
	for _, arg := range args {
		components := strings.SplitN(arg, "=", 2)
		if len(components) != 2 {
			continue
		}
		pathElems := strings.Split(components[0], ".")
		if prefix != "" {
			pathElems = append([]string{prefix}, pathElems...)
		}
		fieldType := fieldTypes[strings.Join(pathElems, ".")]

		tmp := data
		for i, elem := range pathElems {
			if i == len(pathElems)-1 {
				tmp[elem] = convertValue(components[1], fieldType)
				break
			}
			existing, ok := tmp[elem]
			if !ok {
				next := map[string]interface{}{}
				tmp[elem] = next
				tmp = next
				continue
			}
			next, ok := existing.(map[string]interface{})
			if !ok {
				return fmt.Errorf("namespace collision: %v", elem)
			}
			tmp = next
		}
	}

	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(j, out)
}

// buildFieldTypesMap records the type of every reachable field keyed by
// its json tag path.
func buildFieldTypesMap(t reflect.Type, prefix string, fieldTypes map[string]reflect.Type) {
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			// Promoted fields live at the embedding level.
			buildFieldTypesMap(field.Type, prefix, fieldTypes)
			continue
		}
		jsonTag := strings.Split(field.Tag.Get("json"), ",")[0]
		if jsonTag == "-" {
			continue
		}
		if jsonTag == "" {
			jsonTag = field.Name
		}
		currentPath := jsonTag
		if prefix != "" {
			currentPath = prefix + "." + jsonTag
		}
		if field.Type.Kind() == reflect.Struct {
			buildFieldTypesMap(field.Type, currentPath, fieldTypes)
		}
		fieldTypes[currentPath] = field.Type
	}
}

// convertValue converts a token value to the type of the field it
// targets, falling back to a guess when the field is unknown.
func convertValue(val string, fieldType reflect.Type) interface{} {
	if fieldType == nil {
		if b, err := strconv.ParseBool(val); val != "0" && val != "1" && err == nil {
			return b
		}
		if num, err := strconv.ParseInt(val, 10, 64); err == nil {
			return num
		}
		return val
	}

	switch fieldType.Kind() {
	case reflect.Bool:
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		return val
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if num, err := strconv.ParseInt(val, 10, 64); err == nil {
			return num
		}
		return val
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if num, err := strconv.ParseUint(val, 10, 64); err == nil {
			return num
		}
		return val
	case reflect.Float32, reflect.Float64:
		if num, err := strconv.ParseFloat(val, 64); err == nil {
			return num
		}
		return val
	default:
		return val
	}
}

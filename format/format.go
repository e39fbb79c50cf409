// Package format names the file formats a source can read and, for
// formats whose record shape is fixed, derives the output schema
// without looking at any data.
package format

import (
	"fmt"
	"strings"

	"github.com/datamill-io/s3-source/schema"
)

type Format string

const (
	Avro      Format = "avro"
	Blob      Format = "blob"
	CSV       Format = "csv"
	Delimited Format = "delimited"
	JSON      Format = "json"
	Parquet   Format = "parquet"
	Text      Format = "text"
	TSV       Format = "tsv"
)

var known = []Format{Avro, Blob, CSV, Delimited, JSON, Parquet, Text, TSV}

// FromString resolves a format name case-insensitively.
func FromString(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	for _, k := range known {
		if f == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, must be one of %s", name, joinKnown())
}

func joinKnown() string {
	names := make([]string, len(known))
	for i, k := range known {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// UsesHeader reports whether records of this format can carry a header
// row naming their columns.
func (f Format) UsesHeader() bool {
	switch f {
	case CSV, Delimited, TSV:
		return true
	}
	return false
}

// Schema derives the output schema for formats with a fixed record
// shape. pathField, when set, is appended as a string field holding
// the file path each record was read from. Formats whose shape depends
// on the data (or on a declared schema) return nil.
func (f Format) Schema(pathField string) (*schema.Schema, error) {
	var fields []schema.Field
	switch f {
	case Text:
		fields = []schema.Field{
			{Name: "offset", Type: schema.TypeLong},
			{Name: "body", Type: schema.TypeString},
		}
	case Blob:
		fields = []schema.Field{
			{Name: "body", Type: schema.TypeBytes},
		}
	default:
		return nil, nil
	}
	if pathField != "" {
		for _, fl := range fields {
			if fl.Name == pathField {
				return nil, fmt.Errorf("path field %q collides with the %q field of the %s format", pathField, fl.Name, f)
			}
		}
		fields = append(fields, schema.Field{Name: pathField, Type: schema.TypeString})
	}
	return &schema.Schema{Fields: fields}, nil
}

// Package filesource holds the settings shared by every file-reading
// source, independent of the storage system behind it. Storage-specific
// configurations embed Settings and delegate the generic part of their
// validation to it.
package filesource

import (
	"github.com/datamill-io/s3-source/format"
	"github.com/datamill-io/s3-source/macro"
	"github.com/datamill-io/s3-source/schema"
)

// Settings are the generic file-source fields entered by the user.
type Settings struct {
	ReferenceName string `json:"reference_name" yaml:"reference_name" description:"Name used to identify this source for lineage and metadata."`

	Format string `json:"format" yaml:"format" description:"Format of the files to read. One of avro, blob, csv, delimited, json, parquet, text, tsv."`

	Schema string `json:"schema,omitempty" yaml:"schema,omitempty" description:"Output schema as JSON. Required for formats that cannot derive their schema."`

	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty" description:"Field delimiter. Only used with the delimited format."`

	PathField string `json:"path_field,omitempty" yaml:"path_field,omitempty" description:"Optional output field holding the path of the file each record was read from."`

	SkipHeader bool `json:"skip_header,omitempty" yaml:"skip_header,omitempty" description:"Whether the first line of each file is a header row and should not be emitted as a record."`
}

// Validate checks the generic file-source fields. Deferred fields are
// skipped, concrete ones must hold usable values.
func (s *Settings) Validate() error {
	if s.ReferenceName == "" {
		return &ConfigError{Field: "reference_name", Reason: "a reference name must be specified"}
	}
	if !macro.IsDeferred(s.Format) {
		if s.Format == "" {
			return &ConfigError{Field: "format", Reason: "a format must be specified"}
		}
		f, err := format.FromString(s.Format)
		if err != nil {
			return &ConfigError{Field: "format", Reason: err.Error()}
		}
		if s.Delimiter != "" && f != format.Delimited {
			return &ConfigError{Field: "delimiter", Reason: "delimiter can only be used with the delimited format"}
		}
	}
	if s.Schema != "" && !macro.IsDeferred(s.Schema) {
		if _, err := schema.Parse([]byte(s.Schema)); err != nil {
			return &ConfigError{Field: "schema", Reason: err.Error()}
		}
	}
	return nil
}

// FileFormat resolves the configured format. ok is false when the
// format is unset, deferred, or unknown.
func (s *Settings) FileFormat() (f format.Format, ok bool) {
	if s.Format == "" || macro.IsDeferred(s.Format) {
		return "", false
	}
	f, err := format.FromString(s.Format)
	if err != nil {
		return "", false
	}
	return f, true
}

// DeclaredSchema parses the user-declared schema. It is nil when no
// concrete schema was declared.
func (s *Settings) DeclaredSchema() (*schema.Schema, error) {
	if s.Schema == "" || macro.IsDeferred(s.Schema) {
		return nil, nil
	}
	return schema.Parse([]byte(s.Schema))
}

// ShouldCopyHeader reports whether the header row of each file must be
// carried along to the reading layer. Only formats that use a header
// row qualify, and only when the user asked for the header to be
// skipped in the output.
func (s *Settings) ShouldCopyHeader() bool {
	f, ok := s.FileFormat()
	return ok && f.UsesHeader() && s.SkipHeader
}

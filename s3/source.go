package s3source

import (
	"strings"

	"github.com/datamill-io/s3-source/schema"
	"github.com/datamill-io/s3-source/utils"
)

// Source answers the framework-facing queries for a configured S3
// input: the filesystem-connection properties for the run path, and
// the output schema for design-time tooling. It holds no state beyond
// the configuration and is safe to discard after use.
type Source struct {
	conf *Config
}

func NewSource(conf *Config) *Source {
	return &Source{conf: conf}
}

// FileSystemProperties resolves the connection properties handed to
// the file-reading layer. The returned map is a fresh copy on every
// call. User-supplied properties seed the map; credentials and the
// default endpoint are filled in for Access Credentials mode, with a
// user-supplied fs.s3a.endpoint always winning over the default.
func (s *Source) FileSystemProperties() (map[string]string, error) {
	parsed, err := s.conf.fileSystemProperties()
	if err != nil {
		return nil, err
	}
	properties := utils.DuplicateStrMap(parsed)

	if s.conf.usesAccessCredentials() && strings.HasPrefix(s.conf.Path, pathScheme) {
		properties[s3aAccessKey] = s.conf.AccessID
		properties[s3aSecretKey] = s.conf.AccessKey
		if _, ok := properties[s3aEndpoint]; !ok {
			properties[s3aEndpoint] = "s3." + s.conf.Region + ".amazonaws.com"
		}
	}
	if s.conf.ShouldCopyHeader() {
		properties[copyHeaderKey] = "true"
	}
	return properties, nil
}

// Schema resolves the output schema of the source. A schema derived
// from the configured format wins outright; otherwise the declared
// schema is used, which may be nil. Callable independently of
// Validate by design-time tooling.
func (s *Source) Schema() (*schema.Schema, error) {
	if f, ok := s.conf.FileFormat(); ok {
		derived, err := f.Schema(s.conf.PathField)
		if err != nil {
			return nil, err
		}
		if derived != nil {
			return derived, nil
		}
	}
	return s.conf.DeclaredSchema()
}

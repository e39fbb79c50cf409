// Package s3source configures batch reads from Amazon S3-compatible
// storage: it validates the user-entered configuration, resolves the
// filesystem-connection properties the file-reading layer needs to
// open the path, and answers design-time schema requests.
package s3source

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/datamill-io/s3-source/filesource"
	"github.com/datamill-io/s3-source/macro"
)

const (
	s3aAccessKey = "fs.s3a.access.key"
	s3aSecretKey = "fs.s3a.secret.key"
	s3aEndpoint  = "fs.s3a.endpoint"

	copyHeaderKey = "copy-header"

	// authAccessCredentials is the default authentication method;
	// matched case-insensitively against the configured one.
	authAccessCredentials = "Access Credentials"

	// pathScheme is the only URI scheme the S3A filesystem accepts.
	pathScheme = "s3a://"
)

// Config is the user-entered configuration of the S3 source. Any
// string field may hold a deferred ${...} placeholder instead of a
// concrete value; deferred fields are skipped by validation and read
// as absent during property resolution.
type Config struct {
	filesource.Settings `yaml:",inline"`

	Path string `json:"path" yaml:"path"`

	AccessID  string `json:"access_id,omitempty" yaml:"access_id,omitempty"`
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty"`

	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	AuthenticationMethod string `json:"authentication_method,omitempty" yaml:"authentication_method,omitempty"`

	// FileSystemProperties is a JSON object of additional string
	// properties handed verbatim to the underlying filesystem.
	FileSystemProperties string `json:"file_system_properties,omitempty" yaml:"file_system_properties,omitempty"`

	parsedProps map[string]string
}

func (c *Config) authenticationMethod() string {
	if c.AuthenticationMethod == "" {
		return authAccessCredentials
	}
	return c.AuthenticationMethod
}

func (c *Config) usesAccessCredentials() bool {
	return strings.EqualFold(c.authenticationMethod(), authAccessCredentials)
}

// Validate checks the configuration before a run. It fails on the
// first unmet rule; rules on deferred fields are skipped.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if c.usesAccessCredentials() {
		if !macro.IsDeferred(c.AccessID) && c.AccessID == "" {
			return &filesource.ConfigError{
				Field:  "access_id",
				Reason: "the access ID must be specified when the authentication method is Access Credentials",
			}
		}
		if !macro.IsDeferred(c.AccessKey) && c.AccessKey == "" {
			return &filesource.ConfigError{
				Field:  "access_key",
				Reason: "the access key must be specified when the authentication method is Access Credentials",
			}
		}
	}
	if !macro.IsDeferred(c.Region) && c.Region == "" {
		return &filesource.ConfigError{
			Field:  "region",
			Reason: "a non-empty region must be specified",
		}
	}
	if !macro.IsDeferred(c.FileSystemProperties) {
		if _, err := c.fileSystemProperties(); err != nil {
			return &filesource.ConfigError{
				Field:  "file_system_properties",
				Reason: fmt.Sprintf("not a valid JSON map of string to string: %v", err),
			}
		}
	}
	if !macro.IsDeferred(c.Path) && !strings.HasPrefix(c.Path, pathScheme) {
		return &filesource.ConfigError{
			Field:  "path",
			Reason: "the path must start with s3a:// for the S3A filesystem",
		}
	}
	return nil
}

// fileSystemProperties lazily parses the FileSystemProperties JSON.
// The parsed map is cached on the config; callers that hand it out
// must copy it first. A deferred value parses as empty since it cannot
// be read before substitution.
func (c *Config) fileSystemProperties() (map[string]string, error) {
	if c.parsedProps != nil {
		return c.parsedProps, nil
	}
	props := map[string]string{}
	if c.FileSystemProperties != "" && !macro.IsDeferred(c.FileSystemProperties) {
		if err := json.Unmarshal([]byte(c.FileSystemProperties), &props); err != nil {
			return nil, err
		}
		if props == nil {
			props = map[string]string{}
		}
	}
	c.parsedProps = props
	return props, nil
}

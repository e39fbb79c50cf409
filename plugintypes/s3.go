package plugintypes

// S3SourceConfig describes the configuration surface of the S3 batch source
type S3SourceConfig struct {
	ReferenceName string `json:"reference_name" yaml:"reference_name" description:"Name used to identify this source for lineage and metadata" category:"source"`

	Path string `json:"path" yaml:"path" description:"Path to file(s) to be read. If a directory is specified, terminate the path name with a '/'. The path must start with s3a://" category:"source" example:"s3a://my-logs/2026/" llmguidance:"Any field may instead hold a ${...} placeholder to be bound at run time"`

	Format string `json:"format" yaml:"format" description:"Format of the files to read. One of avro, blob, csv, delimited, json, parquet, text, tsv" category:"source" example:"text"`

	Schema string `json:"schema,omitempty" yaml:"schema,omitempty" description:"Output schema as JSON. Required for formats that cannot derive their schema from the path alone" category:"source"`

	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty" description:"Field delimiter. Only used with the delimited format" category:"source"`

	PathField string `json:"path_field,omitempty" yaml:"path_field,omitempty" description:"Optional output field holding the path of the file each record was read from" category:"source"`

	SkipHeader bool `json:"skip_header,omitempty" yaml:"skip_header,omitempty" description:"Whether the first line of each file is a header row" category:"source" default:"false"`

	AccessID string `json:"access_id,omitempty" yaml:"access_id,omitempty" description:"Access ID of the Amazon S3 instance to connect to" category:"auth" sensitive:"true" llmguidance:"AWS access key typically starts with 'AKIA'. Required when the authentication method is Access Credentials"`

	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty" description:"Access Key of the Amazon S3 instance to connect to" category:"auth" sensitive:"true" llmguidance:"Keep this value secret. Never log or expose in plain text"`

	Region string `json:"region,omitempty" yaml:"region,omitempty" description:"Region of the Amazon S3 instance to connect to" category:"source" example:"us-east-1"`

	AuthenticationMethod string `json:"authentication_method,omitempty" yaml:"authentication_method,omitempty" description:"Authentication method to access S3. Defaults to Access Credentials. URI scheme should be s3a:// for S3AFileSystem" category:"auth" default:"Access Credentials"`

	FileSystemProperties string `json:"file_system_properties,omitempty" yaml:"file_system_properties,omitempty" description:"Any additional properties to use when reading from the filesystem, as a JSON object of string to string. This is an advanced feature that requires knowledge of the properties supported by the underlying filesystem" category:"behavior"`
}

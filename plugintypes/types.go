// Package plugintypes is the registry of source-plugin configuration
// types. The structs mirror the runtime configs field for field and
// carry the description metadata used for reflection-based usage and
// schema generation.
package plugintypes

// PluginConfigs is the central registry of all source configuration types.
type PluginConfigs struct {
	S3 S3SourceConfig `json:"s3" yaml:"s3" pluginName:"s3" pluginCategory:"cloud_storage" description:"Batch source reading files from Amazon S3-compatible storage"`
}

// GetPluginRegistry returns a new instance of the plugin registry.
func GetPluginRegistry() *PluginConfigs {
	return &PluginConfigs{}
}

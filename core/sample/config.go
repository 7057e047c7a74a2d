package sample

// Source kinds.
const (
	SourceLocal   = "local"
	SourceStorage = "storage"
)

// Config selects where the sample KML file is read from.
type Config struct {
	// Source is either "local" (working directory) or "storage" (object bucket).
	Source string `mapstructure:"source" default:"local"`
	// Path is the local file name, resolved against the working directory.
	Path string `mapstructure:"path" default:"Bike routes.kml"`
	// Object is the object key used when Source is "storage".
	Object string `mapstructure:"object" default:"samples/Bike routes.kml"`
}

// IsValidSource checks if the configured source kind is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceStorage:
		return true
	default:
		return false
	}
}

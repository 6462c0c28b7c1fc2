package gitrepo

// Config holds configuration for the token document repository.
type Config struct {
	// Path is the local path of the git repository. Empty disables git access.
	Path string `mapstructure:"path" default:""`
	// Ref is the revision read when none is given.
	Ref string `mapstructure:"ref" default:"HEAD"`
	// TokensPath is the document path read when none is given.
	TokensPath string `mapstructure:"tokens_path" default:"tokens/tokens.json"`
}

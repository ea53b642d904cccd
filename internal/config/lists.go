package config

// ListsConfig locates the household list files.
type ListsConfig struct {
	Dir string `envconfig:"DATA_DIR" default:"data"`
}

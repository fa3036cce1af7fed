package links

// CatalogConfig is the top-level structure of a catalog file.
type CatalogConfig struct {
	Links []LinkProps `yaml:"links"`
}

// LinkProps are the properties of one catalog entry.
type LinkProps struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Category string `yaml:"category"`
}

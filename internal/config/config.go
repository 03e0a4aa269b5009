package config

// Config is the fully resolved site configuration. It is loaded once per run
// by the CLI layer and passed through the pipeline unchanged.
type Config struct {
	Site      Site      `mapstructure:"site"`
	Homepage  Homepage  `mapstructure:"homepage"`
	Templates Templates `mapstructure:"templates"`
}

// Site holds the identity of the published site and the two output roots.
type Site struct {
	Name       string `mapstructure:"name"`
	URL        string `mapstructure:"url"`
	Username   string `mapstructure:"username"`
	HTMLRoot   string `mapstructure:"html_root"`
	GeminiRoot string `mapstructure:"gemini_root"`
	PostsDir   string `mapstructure:"posts_dir"`
	TopicsDir  string `mapstructure:"topics_dir"`
}

// Homepage controls the optional pieces of the generated site.
type Homepage struct {
	UseAboutPage bool   `mapstructure:"use_about_page"`
	AboutPath    string `mapstructure:"about_path"`
	PostList     bool   `mapstructure:"post_list"`
	AtomFeed     bool   `mapstructure:"atom_feed"`
}

// Templates points at optional user overrides for the bundled template set
// and stylesheet. Empty paths mean "use the built-in defaults".
type Templates struct {
	CustomHTMLDir   string `mapstructure:"custom_html_dir"`
	CustomGeminiDir string `mapstructure:"custom_gemini_dir"`
	CustomCSSPath   string `mapstructure:"custom_css_path"`
}

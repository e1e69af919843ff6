package metadata

// Metadata is the package description consumed by the packaging toolchain.
type Metadata struct {
	Name                       string   `yaml:"name" json:"name"`
	Version                    string   `yaml:"version" json:"version"`
	Author                     string   `yaml:"author" json:"author"`
	AuthorEmail                string   `yaml:"author_email" json:"author_email"`
	Description                string   `yaml:"description" json:"description"`
	LongDescription            string   `yaml:"long_description" json:"long_description"`
	LongDescriptionContentType string   `yaml:"long_description_content_type" json:"long_description_content_type"`
	InstallRequires            []string `yaml:"install_requires" json:"install_requires"`
	Packages                   []string `yaml:"packages" json:"packages"`
	Classifiers                []string `yaml:"classifiers" json:"classifiers"`
	PythonRequires             string   `yaml:"python_requires" json:"python_requires"`
}

// Output formats understood by registrars.
const (
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatPkgInfo = "pkg-info"
)

// ValidFormats contains all supported output formats.
var ValidFormats = []string{
	FormatYAML,
	FormatJSON,
	FormatPkgInfo,
}

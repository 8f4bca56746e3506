// Package content holds the static records rendered into the page sections.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/yuin/goldmark"
	yamlv3 "gopkg.in/yaml.v3"
)

type Profile struct {
	Name        string   `yaml:"name" koanf:"name" validate:"required"`
	Title       string   `yaml:"title" koanf:"title" validate:"required"`
	Description string   `yaml:"description" koanf:"description"`
	About       string   `yaml:"about" koanf:"about"` // markdown
	Avatar      string   `yaml:"avatar" koanf:"avatar"`
	Skills      []string `yaml:"skills" koanf:"skills" validate:"dive,required"`
}

type Project struct {
	Image       string   `yaml:"image" koanf:"image"`
	Title       string   `yaml:"title" koanf:"title" validate:"required"`
	Description string   `yaml:"description" koanf:"description"`
	Tech        []string `yaml:"tech" koanf:"tech"`
	Link        string   `yaml:"link" koanf:"link" validate:"omitempty,url"`
}

type Experience struct {
	Company     string `yaml:"company" koanf:"company" validate:"required"`
	Role        string `yaml:"role" koanf:"role" validate:"required"`
	Period      string `yaml:"period" koanf:"period"`
	Description string `yaml:"description" koanf:"description"`
}

type Contact struct {
	Email    string `yaml:"email" koanf:"email" validate:"required,email"`
	GitHub   string `yaml:"github" koanf:"github" validate:"omitempty,url"`
	LinkedIn string `yaml:"linkedin" koanf:"linkedin" validate:"omitempty,url"`
}

// Resume points at the downloadable document and its preview image.
type Resume struct {
	Document string `yaml:"document" koanf:"document"`
	Preview  string `yaml:"preview" koanf:"preview"`
}

// Content is everything the section templates display.
type Content struct {
	Logo       string       `yaml:"logo" koanf:"logo"`
	Profile    Profile      `yaml:"profile" koanf:"profile"`
	Projects   []Project    `yaml:"projects" koanf:"projects" validate:"dive"`
	Experience []Experience `yaml:"experience" koanf:"experience" validate:"dive"`
	Contact    Contact      `yaml:"contact" koanf:"contact"`
	Resume     Resume       `yaml:"resume" koanf:"resume"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a YAML content file. The file replaces the built-in content as a
// whole; an empty path returns Default.
func Load(path string) (*Content, error) {
	if path == "" {
		c := Default()
		return &c, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	var c Content
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("unmarshalling content %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields and link formats.
func (c *Content) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

// Save writes c as YAML.
func (c *Content) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing content to %s: %w", path, err)
	}
	return nil
}

// AboutHTML renders the biography markdown. Raw HTML in the source is not
// passed through.
func (p Profile) AboutHTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.About), &buf); err != nil {
		return "", fmt.Errorf("rendering about: %w", err)
	}
	return template.HTML(buf.String()), nil
}

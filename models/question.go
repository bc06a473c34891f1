package models

// Category is one entry of the static question catalog.
// Count is the number of markdown files backing it at request time.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// CategoryInfo is the registry half of a category: everything except the
// file-derived count. It is what the optional categories YAML file holds.
type CategoryInfo struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Question is a markdown-backed catalog entry.
// ID is the file name stem; DetailedAnswer is the markdown body.
type Question struct {
	ID             string `json:"id"`
	CategoryID     string `json:"categoryId"`
	Category       string `json:"category"`
	Question       string `json:"question"`
	ShortAnswer    string `json:"shortAnswer"`
	DetailedAnswer string `json:"detailedAnswer"`
}

// FrontMatter is the typed view of the metadata block at the top of a
// question file.
type FrontMatter struct {
	Question    string `yaml:"question"`
	ShortAnswer string `yaml:"shortAnswer"`
}

// CompanyQuestion is a question appended to a company markdown file.
type CompanyQuestion struct {
	CompanyName    string `json:"companyName" validate:"required"`
	Question       string `json:"question" validate:"required"`
	ShortAnswer    string `json:"shortAnswer" validate:"required"`
	DetailedAnswer string `json:"detailedAnswer,omitempty"`
}

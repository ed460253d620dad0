package question

// Bank defines the question bank schema loaded from JSON or YAML.
type Bank struct {
	Version    int        `json:"version" yaml:"version"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category is a named, ordered set of questions representing one quiz topic.
type Category struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question represents a single prompt with answer choices and one correct choice.
type Question struct {
	Prompt  string   `json:"question" yaml:"question"`
	Choices []string `json:"choices" yaml:"choices"`
	Answer  string   `json:"answer" yaml:"answer"`
}

// Total returns the number of questions in the category.
func (c Category) Total() int {
	return len(c.Questions)
}

package assessment

import (
	"errors"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/errs"
)

type templateFile struct {
	Question []templateQuestion `toml:"question"`
}

type templateQuestion struct {
	Text string `toml:"text"`
}

// LoadTemplateFile reads a question template from a TOML file of
// [[question]] entries. Ordinals follow file order.
func LoadTemplateFile(path string) (domainassessment.Template, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return domainassessment.Template{}, errors.New("template file is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domainassessment.Template{}, errs.Wrap(err, "read template file")
	}

	var parsed templateFile
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return domainassessment.Template{}, errs.Wrap(err, "parse template file")
	}

	prompts := make([]string, 0, len(parsed.Question))
	for _, q := range parsed.Question {
		prompts = append(prompts, q.Text)
	}
	return domainassessment.NewTemplate(prompts)
}

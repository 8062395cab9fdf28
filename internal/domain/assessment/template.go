package assessment

import "strings"

// Template is the static ordered list of question prompts used to seed a
// new assessment. Ordinals are assigned from slice order, starting at 1.
type Template struct {
	Questions []string
}

// NewTemplate trims the prompts and rejects empty ones. At least one
// question is required.
func NewTemplate(prompts []string) (Template, error) {
	out := make([]string, 0, len(prompts))
	for _, raw := range prompts {
		prompt := strings.TrimSpace(raw)
		if prompt == "" {
			continue
		}
		out = append(out, prompt)
	}
	if len(out) == 0 {
		return Template{}, ErrEmptyTemplate
	}
	return Template{Questions: out}, nil
}

// Size returns the number of questions a seeded assessment will carry.
func (t Template) Size() int {
	return len(t.Questions)
}

// DefaultTemplate is the reference store-inspection checklist.
func DefaultTemplate() Template {
	return Template{Questions: []string{
		"Is the storefront signage clean, lit and undamaged?",
		"Are the entrance doors and windows free of dirt and damage?",
		"Is the sales floor free of obstructions and trip hazards?",
		"Are all shelves stocked according to the current planogram?",
		"Are shelf price labels present and matching the register prices?",
		"Are promotional displays set up per the current campaign brief?",
		"Is all promotional material within its valid date range?",
		"Are perishable goods within their sell-by dates?",
		"Are refrigeration units at or below the required temperature?",
		"Are temperature logs filled in for the last seven days?",
		"Is the stockroom organized with goods off the floor?",
		"Are fire exits unlocked and free of obstructions?",
		"Are fire extinguishers charged and within inspection date?",
		"Is the first-aid kit stocked and accessible?",
		"Are staff wearing the required uniform and name badges?",
		"Are food-handling staff certificates current and on file?",
		"Are restrooms clean and stocked with supplies?",
		"Is the waste area tidy with lids closed on all containers?",
		"Are cash-handling procedures being followed at the registers?",
		"Is the daily cleaning checklist signed off for today?",
	}}
}

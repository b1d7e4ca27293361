package flexfolio

// ModelSelector designates which accounting models of a statement a derivation
// operates on: a single named model, or all of them. The zero value selects
// nothing; construct one with AllModels or OneModel.
type ModelSelector struct {
	all  bool
	name string
}

// AllModels returns a selector matching every model in the statement.
func AllModels() ModelSelector { return ModelSelector{all: true} }

// OneModel returns a selector matching only the model with the given name.
func OneModel(name string) ModelSelector { return ModelSelector{name: name} }

// Matches reports whether the selector designates the given model name.
func (s ModelSelector) Matches(model string) bool { return s.all || s.name == model }

func (s ModelSelector) String() string {
	if s.all {
		return "all models"
	}
	return s.name
}

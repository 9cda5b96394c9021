package domain

import "fmt"

// ModelName is the closed set of model identifiers accepted by the
// GET /models/{model_name} route. Values outside the set never reach a
// handler: ParseModelName rejects them during request validation, so
// handler code can switch over the constants exhaustively.
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

// ParseModelName converts a raw path segment into a ModelName.
// Returns ErrUnknownModelName wrapped with the offending value for
// anything outside the closed set.
func ParseModelName(raw string) (ModelName, error) {
	switch ModelName(raw) {
	case ModelAlexNet, ModelResNet, ModelLeNet:
		return ModelName(raw), nil
	default:
		return "", fmt.Errorf("%q: %w", raw, ErrUnknownModelName)
	}
}

func (m ModelName) String() string {
	return string(m)
}

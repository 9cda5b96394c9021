package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/perlow/catalog-api/internal/api/shared"
	"github.com/perlow/catalog-api/internal/domain"
)

// ParamKind is the declared type of a query parameter.
type ParamKind int

const (
	KindString ParamKind = iota
	KindInt
	KindBool
)

// QueryParam is the schema for one declared query parameter: its kind,
// required flag, bounds, pattern and default. Each route owns the
// QueryParam values for its parameters; one generic checker interprets
// them against the raw query string.
type QueryParam struct {
	// Name is the canonical field name used in error responses.
	Name string

	// Alias, when set, is the wire name looked up in the query string.
	Alias string

	Kind     ParamKind
	Required bool

	// Default is the raw value applied when the parameter is absent.
	// Empty means no default (absent stays absent).
	Default string

	// MinLen/MaxLen bound the value length; zero means unbounded.
	MinLen int
	MaxLen int

	// Pattern, when set, must match the whole value.
	Pattern *regexp.Regexp

	// Deprecated marks parameters kept only for wire compatibility.
	// Handlers log a warning when one is supplied.
	Deprecated bool
}

// WireName returns the name the parameter travels under.
func (p QueryParam) WireName() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Name
}

// Value extracts the raw value and checks it against the schema.
// Returns present=false when the parameter is absent and has no default.
func (p QueryParam) Value(q url.Values) (value string, present bool, err error) {
	raw := q.Get(p.WireName())
	if raw == "" && !q.Has(p.WireName()) {
		if p.Required {
			return "", false, domain.NewValidationError(p.WireName(), "is required", domain.ErrValidation)
		}
		if p.Default == "" {
			return "", false, nil
		}
		return p.Default, true, nil
	}

	if constraint := p.lengthConstraint(); constraint != "" {
		if verr := shared.Validate.Var(raw, constraint); verr != nil {
			return "", false, domain.NewValidationError(
				p.WireName(),
				fmt.Sprintf("must be between %d and %d characters", p.MinLen, p.MaxLen),
				domain.ErrValidation,
			)
		}
	}

	if p.Pattern != nil && !p.Pattern.MatchString(raw) {
		return "", false, domain.NewValidationError(
			p.WireName(),
			fmt.Sprintf("must match pattern %q", p.Pattern.String()),
			domain.ErrValidation,
		)
	}

	return raw, true, nil
}

// lengthConstraint builds the validator constraint string for the
// declared bounds, e.g. "min=3,max=50".
func (p QueryParam) lengthConstraint() string {
	var parts []string
	if p.MinLen > 0 {
		parts = append(parts, fmt.Sprintf("min=%d", p.MinLen))
	}
	if p.MaxLen > 0 {
		parts = append(parts, fmt.Sprintf("max=%d", p.MaxLen))
	}
	return strings.Join(parts, ",")
}

// Int interprets the parameter as an integer.
func (p QueryParam) Int(q url.Values) (int, error) {
	raw, present, err := p.Value(q)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(p.WireName(), "must be an integer", domain.ErrValidation)
	}
	return n, nil
}

// Bool interprets the parameter as a boolean. Accepts the strconv forms
// (true/false, 1/0, t/f in any case).
func (p QueryParam) Bool(q url.Values) (bool, error) {
	raw, present, err := p.Value(q)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(p.WireName(), "must be a boolean", domain.ErrValidation)
	}
	return b, nil
}

package model

// FindingKind identifies the extraction rule a finding came from.
type FindingKind string

const (
	// KindFieldReference is a `form.field` output or tag expression.
	KindFieldReference FindingKind = "field-reference"
	// KindErrorBinding is a `form.field.errors` expression.
	KindErrorBinding FindingKind = "error-binding"
	// KindFormReference is any attribute access on a form (not a formset).
	KindFormReference FindingKind = "form-reference"
	// KindNonFieldErrorBinding is a `form.non_field_errors` expression.
	KindNonFieldErrorBinding FindingKind = "non-field-error-binding"
	// KindResourceReference is a link/script/img href or src that is neither
	// absolute http(s), protocol-relative nor produced by a template expression.
	KindResourceReference FindingKind = "resource-reference"
	// KindStaticAsset is the identifier passed to a `{% static %}` call in a
	// link/script/img href or src.
	KindStaticAsset FindingKind = "static-asset-reference"
)

// Finding is a single fact extracted from one template by one rule.
type Finding struct {
	Kind     FindingKind
	Subject  string // normalized text of interest, e.g. "form.email" or "css/app.css"
	Template Path
	Raw      string // full regex match
}

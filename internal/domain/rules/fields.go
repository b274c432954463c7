package rules

import m "tplvet.dev/pkg/tplvet/internal/model"

// Form expressions live inside `{{ ... }}` or `{% ... %}`. The prefix before
// the form identifier never crosses a tag boundary ([^{}]*?), so several
// expressions on one line are matched separately.
const (
	fieldReferenceExpr = `\{[{%][^{}]*?\b(\w*form(?!set|\.non_field_errors)\w*\.\w+)[|\w:\s'"=-]*\s*[%}]\}`
	errorBindingExpr   = `\{[{%][^{}]*?\b(\w*form\w*\.\w+\.errors)\b[^{}]*?[%}]\}`
	formReferenceExpr  = `\{[{%][^{}]*?\b(\w*form(?!set)\w*)\.\w+[|\w:\s'"=-]*\s*[%}]\}`
	nonFieldErrorExpr  = `\{[{%][^{}]*?\b(\w*form\w*\.non_field_errors)\b[^{}]*?[%}]\}`
)

var (
	// FieldReference matches `form.field` expressions, skipping formsets and
	// non_field_errors. Subject: "form.field".
	FieldReference = New("field-reference", m.KindFieldReference, fieldReferenceExpr, 1, true)

	// ErrorBinding matches `form.field.errors`. Subject: "form.field.errors".
	ErrorBinding = New("error-binding", m.KindErrorBinding, errorBindingExpr, 1, false)

	// FormReference matches any attribute access on a form. Subject: "form".
	FormReference = New("form-reference", m.KindFormReference, formReferenceExpr, 1, true)

	// NonFieldErrorBinding matches `form.non_field_errors`.
	// Subject: "form.non_field_errors".
	NonFieldErrorBinding = New("non-field-error-binding", m.KindNonFieldErrorBinding, nonFieldErrorExpr, 1, false)
)

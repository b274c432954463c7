package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

const template = m.Path("templates/signup.html")

func subjects(findings []m.Finding) []string {
	result := make([]string, 0, len(findings))
	for _, f := range findings {
		result = append(result, f.Subject)
	}

	return result
}

func TestFieldReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain output", `{{ form.email }}`, []string{"form.email"}},
		{"no spaces", `{{form.email}}`, []string{"form.email"}},
		{"filter chain", `{{ form.email|add_class:"form-control" }}`, []string{"form.email"}},
		{"template tag", `{% render_field form.email class="input-lg" %}`, []string{"form.email"}},
		{"prefixed form name", `{{ signup_form.password }}`, []string{"signup_form.password"}},
		{"two fields on one line", `{{ form.email }} {{ form.password }}`, []string{"form.email", "form.password"}},
		{"duplicates collapse", "{{ form.email }}\n{{ form.email }}", []string{"form.email"}},
		{"formset excluded", `{{ formset.management_form }}`, []string{}},
		{"non field errors excluded", `{{ form.non_field_errors }}`, []string{}},
		{"errors expression is not a field", `{{ form.email.errors }}`, []string{}},
		{"error condition is not a field", `{% if form.email.errors %}`, []string{}},
		{"unrelated variable", `{{ user.email }}`, []string{}},
		{"plain html", `<input name="form.email">`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldReference.FindAll(tt.input, template)
			assert.Equal(t, tt.want, subjects(got))
		})
	}
}

func TestErrorBinding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"output", `{{ form.email.errors }}`, []string{"form.email.errors"}},
		{"loop", `{% for error in form.email.errors %}`, []string{"form.email.errors"}},
		{"filter", `{{ form.email.errors|striptags }}`, []string{"form.email.errors"}},
		{"two on one line", `{{ form.a.errors }}{{ form.b.errors }}`, []string{"form.a.errors", "form.b.errors"}},
		{"suffix is a different attribute", `{{ form.email.errors_count }}`, []string{}},
		{"non field errors", `{{ form.non_field_errors }}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorBinding.FindAll(tt.input, template)
			assert.Equal(t, tt.want, subjects(got))
		})
	}
}

func TestFormReferenceAndNonFieldErrors(t *testing.T) {
	content := `
<form method="post">
  {% csrf_token %}
  {{ login_form.non_field_errors }}
  {{ login_form.username }}
  {{ form.email }}
  {{ formset.management_form }}
</form>`

	forms := FormReference.FindAll(content, template)
	assert.ElementsMatch(t, []string{"login_form", "form"}, subjects(forms))

	bindings := NonFieldErrorBinding.FindAll(content, template)
	assert.Equal(t, []string{"login_form.non_field_errors"}, subjects(bindings))
}

func TestNonFieldErrorBinding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"output", `{{ form.non_field_errors }}`, []string{"form.non_field_errors"}},
		{"condition", `{% if form.non_field_errors %}`, []string{"form.non_field_errors"}},
		{"loop", `{% for error in signup_form.non_field_errors %}`, []string{"signup_form.non_field_errors"}},
		{"outside a tag", `<p>form.non_field_errors</p>`, []string{}},
		{"field errors", `{{ form.email.errors }}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonFieldErrorBinding.FindAll(tt.input, template)
			assert.Equal(t, tt.want, subjects(got))
		})
	}
}

func TestResourceReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"relative script", `<script src="app.js">`, []string{"app.js"}},
		{"absolute http", `<script src="http://cdn.example.com/app.js">`, []string{}},
		{"https", `<link href="https://cdn.example.com/site.css" rel="stylesheet">`, []string{}},
		{"protocol relative", `<img src="//cdn.example.com/logo.png">`, []string{}},
		{"static tag", `<script src="{% static 'app.js' %}">`, []string{}},
		{"template variable", `<img src="{{ user.avatar_url }}">`, []string{}},
		{"hardcoded root path", `<link rel="stylesheet" href="/static/css/site.css">`, []string{"/static/css/site.css"}},
		{"single quotes", `<img alt="logo" src='img/logo.png'>`, []string{"img/logo.png"}},
		{"two tags on one line", `<script src="a.js"></script><script src="b.js"></script>`, []string{"a.js", "b.js"}},
		{"multi line tag", "<img\n  class=\"avatar\"\n  src=\"avatar.png\">", []string{"avatar.png"}},
		{"anchor ignored", `<a href="about.html">About</a>`, []string{}},
		{"image tag prefix is not img", `<image src="x.png">`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResourceReference.FindAll(tt.input, template)
			assert.Equal(t, tt.want, subjects(got))
		})
	}
}

func TestStaticAsset(t *testing.T) {
	content := `
<link href="{% static 'css/present.css' %}" rel="stylesheet">
<script src="{% static "js/app.js" %}"></script>
<img src="{% static 'img/logo.png' %}" alt="">
<img src="{% static 'img/logo.png' %}" alt="again">
<script src="app.js"></script>`

	got := StaticAsset.FindAll(content, template)
	assert.Equal(t, []string{"css/present.css", "js/app.js", "img/logo.png"}, subjects(got))
}

func TestFindAll_DropsMatchesWithoutCaptureGroup(t *testing.T) {
	rule := New("optional-group", m.KindResourceReference, `<b>(x)?</b>`, 1, false)

	got := rule.FindAll(`<b></b><b>x</b>`, template)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Subject)

	outOfRange := New("missing-group", m.KindResourceReference, `<b>x</b>`, 2, false)
	assert.Empty(t, outOfRange.FindAll(`<b>x</b>`, template))
}

func TestFindAll_RecordsTemplateAndRawMatch(t *testing.T) {
	got := ResourceReference.FindAll(`<script src="app.js"></script>`, template)
	require.Len(t, got, 1)
	assert.Equal(t, m.KindResourceReference, got[0].Kind)
	assert.Equal(t, template, got[0].Template)
	assert.Equal(t, `<script src="app.js"`, got[0].Raw)
}

func TestForGroups(t *testing.T) {
	all := ForGroups(m.AllGroups()...)
	require.Len(t, all, 6)

	names := make([]string, 0, len(all))
	for _, r := range all {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"field-reference", "error-binding",
		"form-reference", "non-field-error-binding",
		"resource-reference", "static-asset-reference",
	}, names)

	assert.Len(t, ForGroups(m.GroupStaticAssets, m.GroupStaticAssets), 1)
	assert.Empty(t, ForGroup("unknown"))
}

func TestExtract(t *testing.T) {
	content := `{{ form.email }}{{ form.email.errors }}<script src="app.js"></script>`

	got := Extract(content, template, ForGroups(m.GroupFieldErrors, m.GroupResourceLinks))

	assert.Equal(t, []string{"form.email"}, subjects(got[m.KindFieldReference]))
	assert.Equal(t, []string{"form.email.errors"}, subjects(got[m.KindErrorBinding]))
	assert.Equal(t, []string{"app.js"}, subjects(got[m.KindResourceReference]))

	_, hasAssets := got[m.KindStaticAsset]
	assert.False(t, hasAssets, "rules that were not requested must not run")
}

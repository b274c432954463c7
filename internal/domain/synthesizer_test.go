package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "tplvet.dev/pkg/tplvet/internal/adapter/mocks"
	"tplvet.dev/pkg/tplvet/internal/domain"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

func finding(kind m.FindingKind, subject string, template m.Path) m.Finding {
	return m.Finding{Kind: kind, Subject: subject, Template: template}
}

func scanOf(template m.Path, findings ...m.Finding) m.TemplateScan {
	scan := m.TemplateScan{
		Template: m.Template{Path: template, ShortPath: template},
		Findings: map[m.FindingKind][]m.Finding{},
	}

	for _, f := range findings {
		scan.Findings[f.Kind] = append(scan.Findings[f.Kind], f)
	}

	return scan
}

func unitNames(units []m.TestUnit) []string {
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}

	return names
}

func TestSynthesize_FieldErrors(t *testing.T) {
	scan := scanOf("signup.html",
		finding(m.KindFieldReference, "form.email", "signup.html"),
		finding(m.KindFieldReference, "form.name", "signup.html"),
		finding(m.KindErrorBinding, "form.email.errors", "signup.html"),
	)

	registry := domain.Synthesize([]m.TemplateScan{scan}, []m.Group{m.GroupFieldErrors}, nil)

	units := registry.Units(m.GroupFieldErrors)
	require.Len(t, units, 2)
	assert.Equal(t, []string{
		"test_form_email_signup_html_errors",
		"test_form_name_signup_html_errors",
	}, unitNames(units))

	ctx := context.Background()

	t.Run("satisfied reference passes", func(t *testing.T) {
		assert.NoError(t, units[0].Check(ctx))
	})

	t.Run("unsatisfied reference fails with its subject", func(t *testing.T) {
		err := units[1].Check(ctx)

		var violation *domain.ViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, []string{"form.name"}, violation.Subjects)
		assert.Contains(t, violation.Error(), "form.name.errors")
	})
}

func TestSynthesize_NonFieldErrors(t *testing.T) {
	scans := []m.TemplateScan{
		scanOf("login.html",
			finding(m.KindFormReference, "form", "login.html"),
			finding(m.KindNonFieldErrorBinding, "form.non_field_errors", "login.html"),
		),
		scanOf("profile.html",
			finding(m.KindFormReference, "user_form", "profile.html"),
		),
	}

	registry := domain.Synthesize(scans, []m.Group{m.GroupNonFieldErrors}, nil)

	units := registry.Units(m.GroupNonFieldErrors)
	require.Len(t, units, 2)
	assert.Equal(t, "test_form_login_html_non_field_errors", units[0].Name)
	assert.Equal(t, "test_user_form_profile_html_non_field_errors", units[1].Name)

	assert.NoError(t, units[0].Check(context.Background()))
	assert.ErrorContains(t, units[1].Check(context.Background()), "user_form.non_field_errors")
}

func TestSynthesize_BindingsDoNotCrossTemplates(t *testing.T) {
	scans := []m.TemplateScan{
		scanOf("a.html", finding(m.KindFieldReference, "form.email", "a.html")),
		scanOf("b.html",
			finding(m.KindFieldReference, "form.email", "b.html"),
			finding(m.KindErrorBinding, "form.email.errors", "b.html"),
		),
	}

	registry := domain.Synthesize(scans, []m.Group{m.GroupFieldErrors}, nil)

	units := registry.Units(m.GroupFieldErrors)
	require.Len(t, units, 2, "the same subject in two templates yields two units")
	assert.Equal(t, "test_form_email_a_html_errors", units[0].Name)
	assert.Equal(t, "test_form_email_b_html_errors", units[1].Name)

	assert.Error(t, units[0].Check(context.Background()))
	assert.NoError(t, units[1].Check(context.Background()))
}

func TestSynthesize_EachUnitCapturesItsOwnSubject(t *testing.T) {
	const n = 64

	findings := make([]m.Finding, 0, 2*n)
	for i := range n {
		subject := fmt.Sprintf("form.field%03d", i)
		findings = append(findings, finding(m.KindFieldReference, subject, "big.html"))

		if i%2 == 0 {
			findings = append(findings, finding(m.KindErrorBinding, subject+".errors", "big.html"))
		}
	}

	registry := domain.Synthesize([]m.TemplateScan{scanOf("big.html", findings...)}, nil, nil)

	units := registry.Units(m.GroupFieldErrors)
	require.Len(t, units, n)

	for i, unit := range units {
		subject := fmt.Sprintf("form.field%03d", i)
		require.Equal(t, subject, unit.Subject)

		err := unit.Check(context.Background())
		if i%2 == 0 {
			assert.NoError(t, err, unit.Name)
			continue
		}

		var violation *domain.ViolationError
		require.ErrorAs(t, err, &violation, unit.Name)
		assert.Equal(t, []string{subject}, violation.Subjects, unit.Name)
	}
}

func TestSynthesize_ResourceLinks(t *testing.T) {
	scans := []m.TemplateScan{
		scanOf("base.html",
			finding(m.KindResourceReference, "app.js", "base.html"),
			finding(m.KindResourceReference, "css/site.css", "base.html"),
		),
		scanOf("clean.html"),
	}

	registry := domain.Synthesize(scans, []m.Group{m.GroupResourceLinks}, nil)

	units := registry.Units(m.GroupResourceLinks)
	require.Len(t, units, 2, "one unit per template")
	assert.Equal(t, "test_base_html_has_no_hardcoded_urls", units[0].Name)
	assert.Equal(t, "test_clean_html_has_no_hardcoded_urls", units[1].Name)

	var violation *domain.ViolationError
	require.ErrorAs(t, units[0].Check(context.Background()), &violation)
	assert.Equal(t, []string{"app.js", "css/site.css"}, violation.Subjects)

	assert.NoError(t, units[1].Check(context.Background()))
}

func TestSynthesize_StaticAssets(t *testing.T) {
	resolver := adaptermocks.NewMockAssetResolver(t)
	resolver.EXPECT().Find(mock.Anything, "css/app.css").Return(m.Path("static/css/app.css"), true)
	resolver.EXPECT().Find(mock.Anything, "js/missing.js").Return(m.Path(""), false)

	scan := scanOf("base.html",
		finding(m.KindStaticAsset, "js/missing.js", "base.html"),
		finding(m.KindStaticAsset, "css/app.css", "base.html"),
	)

	registry := domain.Synthesize([]m.TemplateScan{scan}, []m.Group{m.GroupStaticAssets}, resolver)

	units := registry.Units(m.GroupStaticAssets)
	require.Len(t, units, 2)
	assert.Equal(t, "test_css_app_css_base_html_is_reachable", units[0].Name)
	assert.Equal(t, "test_js_missing_js_base_html_is_reachable", units[1].Name)

	assert.NoError(t, units[0].Check(context.Background()))

	var violation *domain.ViolationError
	require.ErrorAs(t, units[1].Check(context.Background()), &violation)
	assert.Equal(t, []string{"js/missing.js"}, violation.Subjects)
}

func TestSynthesize_StaticAssetsWithoutResolver(t *testing.T) {
	scan := scanOf("base.html", finding(m.KindStaticAsset, "css/app.css", "base.html"))

	registry := domain.Synthesize([]m.TemplateScan{scan}, []m.Group{m.GroupStaticAssets}, nil)

	units := registry.Units(m.GroupStaticAssets)
	require.Len(t, units, 1)

	err := units[0].Check(context.Background())
	require.Error(t, err)

	var violation *domain.ViolationError
	assert.False(t, errors.As(err, &violation))
}

func TestSynthesize_SanitizesNames(t *testing.T) {
	scan := scanOf("./templates/my-app/sign up.html",
		finding(m.KindFieldReference, "form.e-mail", "./templates/my-app/sign up.html"),
	)

	registry := domain.Synthesize([]m.TemplateScan{scan}, []m.Group{m.GroupFieldErrors}, nil)

	units := registry.Units(m.GroupFieldErrors)
	require.Len(t, units, 1)
	assert.Equal(t, "test_form_e_mail_templates_my_app_sign_up_html_errors", units[0].Name)
}

func TestSynthesize_NamesAreStableAcrossRuns(t *testing.T) {
	scans := []m.TemplateScan{
		scanOf("b.html",
			finding(m.KindFieldReference, "form.b", "b.html"),
			finding(m.KindFieldReference, "form.a", "b.html"),
			finding(m.KindResourceReference, "x.js", "b.html"),
		),
		scanOf("a.html", finding(m.KindFormReference, "form", "a.html")),
	}

	reversed := []m.TemplateScan{scans[1], scans[0]}

	first := unitNames(domain.Synthesize(scans, nil, nil).All())
	second := unitNames(domain.Synthesize(reversed, nil, nil).All())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("unit names differ between runs (-first +second):\n%s", diff)
	}

	assert.Equal(t, []string{
		"test_form_a_b_html_errors",
		"test_form_b_b_html_errors",
		"test_form_a_html_non_field_errors",
		"test_a_html_has_no_hardcoded_urls",
		"test_b_html_has_no_hardcoded_urls",
	}, first)
}

func TestSynthesize_SanitizedCollisionsAreRenamed(t *testing.T) {
	scans := []m.TemplateScan{
		scanOf("a-b.html", finding(m.KindFieldReference, "form.x", "a-b.html")),
		scanOf("a_b.html", finding(m.KindFieldReference, "form.x", "a_b.html")),
	}

	registry := domain.Synthesize(scans, []m.Group{m.GroupFieldErrors}, nil)

	assert.Equal(t, []string{
		"test_form_x_a_b_html_errors",
		"test_form_x_a_b_html_errors_2",
	}, unitNames(registry.All()))

	collisions := registry.Collisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, m.Path("a_b.html"), collisions[0].Template)
	assert.Equal(t, "test_form_x_a_b_html_errors_2", collisions[0].Renamed)
}

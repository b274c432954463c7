package rules

import m "tplvet.dev/pkg/tplvet/internal/model"

// Both patterns capture three groups: tag name, attribute name and value.
const (
	resourceReferenceExpr = `<(link|script|img)\b[^>]*?\b(href|src)=["']((?!http|\{|//)[^\s"']+)["']`
	staticAssetExpr       = `<(link|script|img)\b[^>]*?\b(href|src)=["']\{%\s*static\s+["']([^\s"']+)["']`
)

var (
	// ResourceReference matches link/script/img references that are not
	// http(s), protocol-relative or template generated. Subject: the value.
	ResourceReference = New("resource-reference", m.KindResourceReference, resourceReferenceExpr, 3, false)

	// StaticAsset matches link/script/img references built with the static
	// tag. Subject: the asset identifier.
	StaticAsset = New("static-asset-reference", m.KindStaticAsset, staticAssetExpr, 3, true)
)

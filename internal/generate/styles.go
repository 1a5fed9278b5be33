package generate

import (
	"strings"

	"github.com/vk/siteforge/internal/artifact"
)

// cssRule is one selector with its declaration block body.
type cssRule struct {
	selector string
	body     string
}

// styleRules maps a manifest style id to the rules its stylesheet defines.
// Every class a markup template binds must have a selector here; the
// consistency validator cross-checks the two. Ids with no entry (a feature
// shipped without a stylesheet template) are skipped by the generator and
// later stubbed by the repair engine if something references them.
var styleRules = map[string][]cssRule{
	"navbar": {
		{".navbar", "display: flex;\n  align-items: center;\n  justify-content: space-between;\n  padding: 1rem 2rem;"},
		{".navbar-brand", "font-size: 1.25rem;\n  font-weight: 700;"},
		{".navbar-links", "display: flex;\n  gap: 1.5rem;\n  list-style: none;\n  margin: 0;\n  padding: 0;"},
		{".navbar-links a", "text-decoration: none;\n  color: inherit;"},
	},
	"home": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".hero", "padding: 4rem 1rem;\n  text-align: center;"},
		{".hero-title", "font-size: 2.5rem;\n  margin-bottom: 0.5rem;"},
		{".hero-subtitle", "font-size: 1.25rem;\n  color: #555;"},
		{".hero-cta", "display: inline-block;\n  margin-top: 1.5rem;\n  padding: 0.75rem 2rem;\n  border-radius: 4px;\n  background: #1a1a2e;\n  color: #fff;\n  text-decoration: none;"},
		{".services-preview", "display: grid;\n  grid-template-columns: repeat(auto-fit, minmax(240px, 1fr));\n  gap: 1.5rem;\n  margin-top: 3rem;"},
		{".service-card", "padding: 1.5rem;\n  border: 1px solid #e0e0e0;\n  border-radius: 8px;"},
	},
	"about": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".page-title", "font-size: 2rem;\n  margin-bottom: 1rem;"},
		{".about-text", "line-height: 1.7;\n  color: #333;"},
	},
	"services": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".page-title", "font-size: 2rem;\n  margin-bottom: 1rem;"},
		{".services-grid", "display: grid;\n  grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));\n  gap: 1.5rem;"},
		{".service-card", "padding: 1.5rem;\n  border: 1px solid #e0e0e0;\n  border-radius: 8px;"},
		{".service-name", "margin-top: 0;"},
		{".service-desc", "color: #555;\n  line-height: 1.6;"},
	},
	"contact": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".page-title", "font-size: 2rem;\n  margin-bottom: 1rem;"},
		{".contact-info", "margin-top: 1rem;"},
		{".contact-detail", "margin: 0.25rem 0;\n  color: #333;"},
	},
	"gallery": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".page-title", "font-size: 2rem;\n  margin-bottom: 1rem;"},
		{".gallery-intro", "color: #555;\n  margin-bottom: 2rem;"},
	},
	"blog": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".page-title", "font-size: 2rem;\n  margin-bottom: 1rem;"},
		{".blog-list", "display: flex;\n  flex-direction: column;\n  gap: 2rem;"},
	},
	"booking": {
		{".page", "max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;"},
		{".page-title", "font-size: 2rem;\n  margin-bottom: 1rem;"},
		{".booking-intro", "color: #555;\n  margin-bottom: 2rem;"},
	},
	"contact-form": {
		{".contact-form", "display: flex;\n  flex-direction: column;\n  gap: 1rem;\n  max-width: 480px;"},
		{".form-field", "display: flex;\n  flex-direction: column;\n  gap: 0.25rem;"},
		{".form-label", "font-weight: 600;"},
		{".form-input", "padding: 0.5rem;\n  border: 1px solid #ccc;\n  border-radius: 4px;"},
		{".form-submit", "align-self: flex-start;\n  padding: 0.6rem 1.5rem;\n  border: none;\n  border-radius: 4px;\n  background: #1a1a2e;\n  color: #fff;\n  cursor: pointer;"},
	},
	"gallery-grid": {
		{".gallery-grid", "display: grid;\n  grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));\n  gap: 1rem;"},
		{".gallery-item", "margin: 0;\n  overflow: hidden;\n  border-radius: 6px;"},
		{".gallery-item img", "width: 100%;\n  height: 100%;\n  object-fit: cover;\n  display: block;"},
	},
	"post-card": {
		{".post-card", "padding: 1.5rem;\n  border: 1px solid #e0e0e0;\n  border-radius: 8px;"},
		{".post-title", "margin-top: 0;"},
		{".post-excerpt", "color: #555;\n  line-height: 1.6;"},
	},
	"booking-form": {
		{".booking-form", "display: flex;\n  flex-direction: column;\n  gap: 1rem;\n  max-width: 360px;"},
		{".form-field", "display: flex;\n  flex-direction: column;\n  gap: 0.25rem;"},
		{".form-label", "font-weight: 600;"},
		{".form-input", "padding: 0.5rem;\n  border: 1px solid #ccc;\n  border-radius: 4px;"},
		{".form-submit", "align-self: flex-start;\n  padding: 0.6rem 1.5rem;\n  border: none;\n  border-radius: 4px;\n  background: #1a1a2e;\n  color: #fff;\n  cursor: pointer;"},
	},
	"newsletter-signup": {
		{".newsletter", "display: flex;\n  flex-wrap: wrap;\n  align-items: center;\n  gap: 0.75rem;\n  margin-top: 3rem;\n  padding: 1.5rem;\n  border-radius: 8px;\n  background: #f5f5f5;"},
		{".newsletter-input", "flex: 1;\n  min-width: 200px;\n  padding: 0.5rem;\n  border: 1px solid #ccc;\n  border-radius: 4px;"},
		{".newsletter-button", "padding: 0.5rem 1.25rem;\n  border: none;\n  border-radius: 4px;\n  background: #1a1a2e;\n  color: #fff;\n  cursor: pointer;"},
	},
	"testimonial-list": {
		{".testimonials", "display: grid;\n  gap: 1.5rem;\n  margin-top: 3rem;"},
		{".testimonial", "margin: 0;\n  padding: 1.5rem;\n  border-left: 3px solid #1a1a2e;\n  background: #fafafa;"},
		{".testimonial-quote", "font-style: italic;\n  margin: 0 0 0.5rem;"},
		{".testimonial-author", "font-size: 0.9rem;\n  color: #777;"},
	},
}

// stylesheetPath maps a style id to its artifact path.
func stylesheetPath(styleID string) string {
	return "src/styles/" + pascal(styleID) + ".css"
}

// stylesheetFor renders the stylesheet artifact for a style id, or nil when
// no rules are registered for it.
func stylesheetFor(styleID string) *artifact.Artifact {
	rules, ok := styleRules[styleID]
	if !ok {
		return nil
	}
	var sb strings.Builder
	for i, r := range rules {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.selector)
		sb.WriteString(" {\n  ")
		sb.WriteString(r.body)
		sb.WriteString("\n}\n")
	}
	return &artifact.Artifact{
		Path:    stylesheetPath(styleID),
		Kind:    artifact.KindStylesheet,
		Content: sb.String(),
	}
}

// stubStylesheet is the minimal paired sheet synthesized next to a stub
// page or component. It defines the selectors every stub binds.
func stubStylesheet(name string) *artifact.Artifact {
	content := ".page {\n  max-width: 960px;\n  margin: 0 auto;\n  padding: 2rem;\n}\n\n.page-title {\n  font-size: 2rem;\n  margin-bottom: 1rem;\n}\n"
	return &artifact.Artifact{
		Path:    "src/styles/" + name + ".css",
		Kind:    artifact.KindStylesheet,
		Content: content,
	}
}

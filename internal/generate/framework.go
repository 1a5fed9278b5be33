package generate

import (
	"strings"

	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/request"
)

// pageInfo is the resolved identity of one page within the target project.
type pageInfo struct {
	ID    string // manifest id, e.g. "contact-form" page ids are single words
	Name  string // exported component name, e.g. "Gallery"
	Route string // router path, e.g. "/gallery"
	Path  string // artifact path, e.g. "src/pages/Gallery.jsx"
}

// pageContext carries everything a page template needs.
type pageContext struct {
	sel  *request.FeatureSelection
	deck *content.Deck
	info pageInfo
	// extraComponents are manifest components hosted on this page, in
	// manifest order, e.g. TestimonialList on the home page.
	extraComponents []string
}

// templates bundles the per-framework artifact builders. Page and component
// kinds with no registered template are skipped by the generator; the repair
// engine later synthesizes stand-ins for anything the router still expects.
type templates struct {
	markupExt string
	// devDependencies are the framework's build-tool packages for the
	// dependency manifest.
	devDependencies map[string]string
	entry           func(sel *request.FeatureSelection, pages []pageInfo) []*writer
	navbar          func(sel *request.FeatureSelection, pages []pageInfo) *writer
	pages           map[string]func(ctx *pageContext) *writer
	components      map[string]func(sel *request.FeatureSelection, deck *content.Deck) *writer
	stubPage        func(name string) *writer
	stubComponent   func(name string) *writer
}

// templatesFor resolves the template set for a validated framework id.
func templatesFor(framework string) *templates {
	switch framework {
	case request.FrameworkVue:
		return vueTemplates
	default:
		return reactTemplates
	}
}

// componentHost maps a component to the page that renders it. Components
// with an empty host (the Navbar) are wired into the app shell instead.
var componentHost = map[string]string{
	"Navbar":           "",
	"ContactForm":      "contact",
	"GalleryGrid":      "gallery",
	"PostCard":         "blog",
	"BookingForm":      "booking",
	"NewsletterSignup": "home",
	"TestimonialList":  "home",
}

// pascal converts a manifest id like "contact-form" to "ContactForm".
func pascal(id string) string {
	parts := strings.Split(id, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

// routeFor maps a page id to its router path. The home page owns the root.
func routeFor(pageID string) string {
	if pageID == "home" {
		return "/"
	}
	return "/" + pageID
}

// labelForRoute derives a human navigation label from a route path.
// "/" -> "Home", "/contact-form" -> "Contact Form".
func labelForRoute(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "Home"
	}
	parts := strings.Split(trimmed, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// pageNameForRoute derives the component name a route expects, e.g.
// "/gallery" -> "Gallery".
func pageNameForRoute(route string) string {
	if route == "/" {
		return "Home"
	}
	return pascal(strings.Trim(route, "/"))
}

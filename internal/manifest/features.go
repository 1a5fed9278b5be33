package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/vk/siteforge/internal/request"
)

// FeatureSpec is one row of the immutable feature lookup table: the pages,
// components, styles and third-party packages a single feature contributes.
type FeatureSpec struct {
	Pages        []string
	Components   []string
	Styles       []string
	Dependencies map[string]string // package name -> pinned version
}

// corePages are always present regardless of the selection.
var corePages = []string{"home", "about", "services", "contact"}

// coreComponents are always present regardless of the selection.
var coreComponents = []string{"Navbar"}

// coreStyles pair the always-present pages and components.
var coreStyles = []string{"home", "about", "services", "contact", "navbar"}

// featureTable is the single authoritative mapping from feature id to the
// concrete artifacts and dependencies it requires. Every selected feature
// maps to at least one entry here; generation code never branches on
// feature ids directly.
var featureTable = map[string]FeatureSpec{
	"contact-form": {
		Components:   []string{"ContactForm"},
		Styles:       []string{"contact-form"},
		Dependencies: map[string]string{"validator": "13.12.0"},
	},
	"gallery": {
		Pages:        []string{"gallery"},
		Components:   []string{"GalleryGrid"},
		Styles:       []string{"gallery", "gallery-grid"},
		Dependencies: map[string]string{"photoswipe": "5.4.4"},
	},
	"chat": {
		Pages:        []string{"chat"},
		Styles:       []string{"chat"},
		Dependencies: map[string]string{"socket.io-client": "4.7.5"},
	},
	"blog": {
		Pages:        []string{"blog"},
		Components:   []string{"PostCard"},
		Styles:       []string{"blog", "post-card"},
		Dependencies: map[string]string{"marked": "12.0.2"},
	},
	"booking": {
		Pages:        []string{"booking"},
		Components:   []string{"BookingForm"},
		Styles:       []string{"booking", "booking-form"},
		Dependencies: map[string]string{"date-fns": "3.6.0"},
	},
	"newsletter": {
		Components: []string{"NewsletterSignup"},
		Styles:     []string{"newsletter-signup"},
	},
	"testimonials": {
		Components: []string{"TestimonialList"},
		Styles:     []string{"testimonial-list"},
	},
}

// frameworkDependencies are the baseline packages per target framework.
var frameworkDependencies = map[string]map[string]string{
	request.FrameworkReact: {
		"react":            "18.3.1",
		"react-dom":        "18.3.1",
		"react-router-dom": "6.26.2",
	},
	request.FrameworkVue: {
		"vue":        "3.4.38",
		"vue-router": "4.4.3",
	},
}

func init() {
	// The tables are built-in configuration; an unparseable pinned version
	// is a programmer error, caught at startup rather than mid-repair.
	for id, spec := range featureTable {
		for pkg, ver := range spec.Dependencies {
			if _, err := semver.NewVersion(ver); err != nil {
				panic(fmt.Errorf("feature table: feature %q pins invalid version %q for package %q: %w", id, ver, pkg, err))
			}
		}
	}
	for fw, deps := range frameworkDependencies {
		for pkg, ver := range deps {
			if _, err := semver.NewVersion(ver); err != nil {
				panic(fmt.Errorf("framework table: %q pins invalid version %q for package %q: %w", fw, ver, pkg, err))
			}
		}
	}
}

// KnownFeature reports whether the feature id has a table entry.
func KnownFeature(id string) bool {
	_, ok := featureTable[id]
	return ok
}

// DependenciesFor returns the full package->version map required by the
// framework baseline plus every known selected feature. Unknown ids are
// ignored, mirroring the resolver.
func DependenciesFor(framework string, features []string) map[string]string {
	out := make(map[string]string)
	for pkg, ver := range frameworkDependencies[framework] {
		out[pkg] = ver
	}
	for _, id := range features {
		spec, ok := featureTable[id]
		if !ok {
			continue
		}
		for pkg, ver := range spec.Dependencies {
			out[pkg] = ver
		}
	}
	return out
}

// PinnedVersion returns the table's pinned version for a package required
// by the given selection, for use when repairing the dependency manifest.
func PinnedVersion(framework string, features []string, pkg string) (string, bool) {
	ver, ok := DependenciesFor(framework, features)[pkg]
	return ver, ok
}

package generate

import (
	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/request"
)

// reactTemplates builds a Vite + React Router project.
var reactTemplates = &templates{
	markupExt: ".jsx",
	devDependencies: map[string]string{
		"vite":                 "5.4.8",
		"@vitejs/plugin-react": "4.3.1",
	},
	entry:         reactEntry,
	navbar:        reactNavbar,
	stubPage:      reactStubPage,
	stubComponent: reactStubComponent,
	pages: map[string]func(ctx *pageContext) *writer{
		"home":     reactHomePage,
		"about":    reactAboutPage,
		"services": reactServicesPage,
		"contact":  reactContactPage,
		"gallery":  reactGalleryPage,
		"blog":     reactBlogPage,
		"booking":  reactBookingPage,
	},
	components: map[string]func(sel *request.FeatureSelection, deck *content.Deck) *writer{
		"ContactForm":      reactContactForm,
		"GalleryGrid":      reactGalleryGrid,
		"PostCard":         reactPostCard,
		"BookingForm":      reactBookingForm,
		"NewsletterSignup": reactNewsletterSignup,
		"TestimonialList":  reactTestimonialList,
	},
}

func reactEntry(sel *request.FeatureSelection, pages []pageInfo) []*writer {
	html := newWriter("index.html", artifact.KindAsset)
	html.printf("<!DOCTYPE html>\n<html lang=\"en\">\n  <head>\n")
	html.printf("    <meta charset=\"UTF-8\" />\n")
	html.printf("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	html.printf("    <title>%s</title>\n", sel.BusinessName)
	html.printf("  </head>\n  <body>\n    <div id=\"root\"></div>\n")
	html.printf("    <script type=\"module\" src=\"./src/main.jsx\"></script>\n")
	html.art.AddReference(artifact.RefImport, "./src/main.jsx")
	html.printf("  </body>\n</html>\n")

	vite := newWriter("vite.config.js", artifact.KindConfig)
	vite.importLine("import { defineConfig } from 'vite';", "vite")
	vite.importLine("import react from '@vitejs/plugin-react';", "@vitejs/plugin-react")
	vite.printf("\nexport default defineConfig({\n  plugins: [react()],\n});\n")

	main := newWriter("src/main.jsx", artifact.KindConfig)
	main.importLine("import React from 'react';", "react")
	main.importLine("import ReactDOM from 'react-dom/client';", "react-dom/client")
	main.importLine("import App from './App';", "./App")
	main.printf("\nReactDOM.createRoot(document.getElementById('root')).render(\n")
	main.printf("  <React.StrictMode>\n    <App />\n  </React.StrictMode>\n);\n")

	app := newWriter("src/App.jsx", artifact.KindConfig)
	app.importLine("import React from 'react';", "react")
	app.importLine("import { BrowserRouter, Routes, Route } from 'react-router-dom';", "react-router-dom")
	app.importLine("import Navbar from './components/Navbar';", "./components/Navbar")
	for _, p := range pages {
		app.importLine("import "+p.Name+" from './pages/"+p.Name+"';", "./pages/"+p.Name)
	}
	app.printf("\nfunction App() {\n  return (\n    <BrowserRouter>\n      <Navbar />\n      <main>\n        <Routes>\n")
	for _, p := range pages {
		app.route(p.Route)
		app.printf("          <Route path=\"%s\" element={<%s />} />\n", p.Route, p.Name)
	}
	app.printf("        </Routes>\n      </main>\n    </BrowserRouter>\n  );\n}\n\nexport default App;\n")

	return []*writer{html, vite, main, app}
}

func reactNavbar(sel *request.FeatureSelection, pages []pageInfo) *writer {
	w := newWriter("src/components/Navbar.jsx", artifact.KindComponent)
	w.importLine("import React from 'react';", "react")
	w.importLine("import { NavLink } from 'react-router-dom';", "react-router-dom")
	w.importLine("import '../styles/Navbar.css';", "../styles/Navbar.css")
	w.printf("\nfunction Navbar() {\n  return (\n    <nav className=\"%s\">\n", w.class("navbar"))
	w.printf("      <span className=\"%s\">%s</span>\n", w.class("navbar-brand"), sel.BusinessName)
	w.printf("      <ul className=\"%s\">\n", w.class("navbar-links"))
	for _, p := range pages {
		w.navLink(p.Route)
		w.printf("        <li><NavLink to=\"%s\">%s</NavLink></li>\n", p.Route, labelForRoute(p.Route))
	}
	w.printf("      </ul>\n    </nav>\n  );\n}\n\nexport default Navbar;\n")
	return w
}

// reactPageOpen writes the shared page preamble: react import, stylesheet
// import, hosted-component imports and the opening wrapper element.
func reactPageOpen(ctx *pageContext, w *writer) {
	w.importLine("import React from 'react';", "react")
	w.importLine("import '../styles/"+ctx.info.Name+".css';", "../styles/"+ctx.info.Name+".css")
	for _, comp := range ctx.extraComponents {
		w.importLine("import "+comp+" from '../components/"+comp+"';", "../components/"+comp)
	}
	w.printf("\nfunction %s() {\n  return (\n    <div className=\"%s\">\n", ctx.info.Name, w.class("page"))
}

// reactPageClose writes the hosted components and the shared page epilogue.
func reactPageClose(ctx *pageContext, w *writer) {
	for _, comp := range ctx.extraComponents {
		w.printf("      <%s />\n", comp)
	}
	w.printf("    </div>\n  );\n}\n\nexport default %s;\n", ctx.info.Name)
}

func reactHomePage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	deck := ctx.deck
	w.importLine("import React from 'react';", "react")
	w.importLine("import '../styles/Home.css';", "../styles/Home.css")
	for _, comp := range ctx.extraComponents {
		w.importLine("import "+comp+" from '../components/"+comp+"';", "../components/"+comp)
	}
	w.printf("\nfunction Home() {\n  return (\n    <div className=\"%s\">\n", w.class("page"))
	w.printf("      <section className=\"%s\">\n", w.class("hero"))
	w.printf("        <h1 className=\"%s\">%s</h1>\n", w.class("hero-title"), ctx.sel.BusinessName)
	w.printf("        <p className=\"%s\">%s</p>\n", w.class("hero-subtitle"), deck.Hero.Subtitle)
	w.printf("        <a className=\"%s\" href=\"/contact\">%s</a>\n", w.class("hero-cta"), deck.Hero.CTA)
	w.printf("      </section>\n")
	w.printf("      <section className=\"%s\">\n", w.class("services-preview"))
	for i, svc := range deck.Services {
		if i >= 3 {
			break
		}
		w.printf("        <article className=\"%s\">\n", w.class("service-card"))
		w.printf("          <h2>%s</h2>\n          <p>%s</p>\n", svc.Name, svc.Description)
		w.printf("        </article>\n")
	}
	w.printf("      </section>\n")
	reactPageClose(ctx, w)
	return w
}

func reactAboutPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	reactPageOpen(ctx, w)
	w.printf("      <h1 className=\"%s\">About %s</h1>\n", w.class("page-title"), ctx.sel.BusinessName)
	w.printf("      <p className=\"%s\">%s</p>\n", w.class("about-text"), ctx.deck.About)
	reactPageClose(ctx, w)
	return w
}

func reactServicesPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	reactPageOpen(ctx, w)
	w.printf("      <h1 className=\"%s\">Services</h1>\n", w.class("page-title"))
	w.printf("      <div className=\"%s\">\n", w.class("services-grid"))
	for _, svc := range ctx.deck.Services {
		w.printf("        <article className=\"%s\">\n", w.class("service-card"))
		w.printf("          <h2 className=\"%s\">%s</h2>\n", w.class("service-name"), svc.Name)
		w.printf("          <p className=\"%s\">%s</p>\n", w.class("service-desc"), svc.Description)
		w.printf("        </article>\n")
	}
	w.printf("      </div>\n")
	reactPageClose(ctx, w)
	return w
}

func reactContactPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	reactPageOpen(ctx, w)
	w.printf("      <h1 className=\"%s\">Contact</h1>\n", w.class("page-title"))
	w.printf("      <div className=\"%s\">\n", w.class("contact-info"))
	w.printf("        <p className=\"%s\">We would love to hear from you.</p>\n", w.class("contact-detail"))
	if phone, ok := ctx.sel.BusinessData["phone"]; ok {
		w.printf("        <p className=\"%s\">Phone: %s</p>\n", w.class("contact-detail"), phone)
	}
	if email, ok := ctx.sel.BusinessData["email"]; ok {
		w.printf("        <p className=\"%s\">Email: %s</p>\n", w.class("contact-detail"), email)
	}
	w.printf("      </div>\n")
	reactPageClose(ctx, w)
	return w
}

func reactGalleryPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	reactPageOpen(ctx, w)
	w.printf("      <h1 className=\"%s\">Gallery</h1>\n", w.class("page-title"))
	w.printf("      <p className=\"%s\">A look inside %s.</p>\n", w.class("gallery-intro"), ctx.sel.BusinessName)
	reactPageClose(ctx, w)
	return w
}

func reactBlogPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	reactPageOpen(ctx, w)
	w.printf("      <h1 className=\"%s\">Blog</h1>\n", w.class("page-title"))
	w.printf("      <div className=\"%s\">\n", w.class("blog-list"))
	w.printf("        <p>News and updates from %s.</p>\n", ctx.sel.BusinessName)
	w.printf("      </div>\n")
	reactPageClose(ctx, w)
	return w
}

func reactBookingPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	reactPageOpen(ctx, w)
	w.printf("      <h1 className=\"%s\">Booking</h1>\n", w.class("page-title"))
	w.printf("      <p className=\"%s\">Reserve your spot with %s.</p>\n", w.class("booking-intro"), ctx.sel.BusinessName)
	reactPageClose(ctx, w)
	return w
}

// --- Components ---

func reactContactForm(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/ContactForm.jsx", artifact.KindComponent)
	w.importLine("import React, { useState } from 'react';", "react")
	w.importLine("import isEmail from 'validator/lib/isEmail';", "validator/lib/isEmail")
	w.importLine("import '../styles/ContactForm.css';", "../styles/ContactForm.css")
	w.printf("\nfunction ContactForm() {\n")
	w.printf("  const [email, setEmail] = useState('');\n")
	w.printf("  const valid = email === '' || isEmail(email);\n")
	w.printf("  return (\n    <form className=\"%s\">\n", w.class("contact-form"))
	w.printf("      <div className=\"%s\">\n", w.class("form-field"))
	w.printf("        <label className=\"%s\" htmlFor=\"name\">Name</label>\n", w.class("form-label"))
	w.printf("        <input className=\"%s\" id=\"name\" name=\"name\" type=\"text\" />\n", w.class("form-input"))
	w.printf("      </div>\n")
	w.printf("      <div className=\"%s\">\n", w.class("form-field"))
	w.printf("        <label className=\"%s\" htmlFor=\"email\">Email</label>\n", w.class("form-label"))
	w.printf("        <input className=\"%s\" id=\"email\" name=\"email\" type=\"email\" onChange={(e) => setEmail(e.target.value)} />\n", w.class("form-input"))
	w.printf("      </div>\n")
	w.printf("      <div className=\"%s\">\n", w.class("form-field"))
	w.printf("        <label className=\"%s\" htmlFor=\"message\">Message</label>\n", w.class("form-label"))
	w.printf("        <textarea className=\"%s\" id=\"message\" name=\"message\" rows=\"5\" />\n", w.class("form-input"))
	w.printf("      </div>\n")
	w.printf("      <button className=\"%s\" type=\"submit\" disabled={!valid}>Send</button>\n", w.class("form-submit"))
	w.printf("    </form>\n  );\n}\n\nexport default ContactForm;\n")
	return w
}

func reactGalleryGrid(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/GalleryGrid.jsx", artifact.KindComponent)
	w.importLine("import React from 'react';", "react")
	w.importLine("import 'photoswipe/style.css';", "photoswipe/style.css")
	w.importLine("import '../styles/GalleryGrid.css';", "../styles/GalleryGrid.css")
	w.printf("\nconst slots = [1, 2, 3, 4, 5, 6];\n")
	w.printf("\nfunction GalleryGrid() {\n  return (\n    <div className=\"%s\">\n", w.class("gallery-grid"))
	w.printf("      {slots.map((n) => (\n")
	w.printf("        <figure className=\"%s\" key={n}>\n", w.class("gallery-item"))
	w.printf("          <img src={`/images/gallery-${n}.jpg`} alt=\"\" loading=\"lazy\" />\n")
	w.printf("        </figure>\n      ))}\n")
	w.printf("    </div>\n  );\n}\n\nexport default GalleryGrid;\n")
	return w
}

func reactPostCard(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/PostCard.jsx", artifact.KindComponent)
	w.importLine("import React from 'react';", "react")
	w.importLine("import { parse } from 'marked';", "marked")
	w.importLine("import '../styles/PostCard.css';", "../styles/PostCard.css")
	w.printf("\nfunction PostCard({ title, excerpt }) {\n")
	w.printf("  return (\n    <article className=\"%s\">\n", w.class("post-card"))
	w.printf("      <h2 className=\"%s\">{title}</h2>\n", w.class("post-title"))
	w.printf("      <div className=\"%s\" dangerouslySetInnerHTML={{ __html: parse(excerpt) }} />\n", w.class("post-excerpt"))
	w.printf("    </article>\n  );\n}\n\nexport default PostCard;\n")
	return w
}

func reactBookingForm(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/BookingForm.jsx", artifact.KindComponent)
	w.importLine("import React, { useState } from 'react';", "react")
	w.importLine("import { format } from 'date-fns';", "date-fns")
	w.importLine("import '../styles/BookingForm.css';", "../styles/BookingForm.css")
	w.printf("\nfunction BookingForm() {\n")
	w.printf("  const [date, setDate] = useState(format(new Date(), 'yyyy-MM-dd'));\n")
	w.printf("  return (\n    <form className=\"%s\">\n", w.class("booking-form"))
	w.printf("      <div className=\"%s\">\n", w.class("form-field"))
	w.printf("        <label className=\"%s\" htmlFor=\"date\">Date</label>\n", w.class("form-label"))
	w.printf("        <input className=\"%s\" id=\"date\" type=\"date\" value={date} onChange={(e) => setDate(e.target.value)} />\n", w.class("form-input"))
	w.printf("      </div>\n")
	w.printf("      <button className=\"%s\" type=\"submit\">Request booking</button>\n", w.class("form-submit"))
	w.printf("    </form>\n  );\n}\n\nexport default BookingForm;\n")
	return w
}

func reactNewsletterSignup(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/NewsletterSignup.jsx", artifact.KindComponent)
	w.importLine("import React from 'react';", "react")
	w.importLine("import '../styles/NewsletterSignup.css';", "../styles/NewsletterSignup.css")
	w.printf("\nfunction NewsletterSignup() {\n")
	w.printf("  return (\n    <section className=\"%s\">\n", w.class("newsletter"))
	w.printf("      <h2>Stay in touch</h2>\n")
	w.printf("      <input className=\"%s\" type=\"email\" placeholder=\"you@example.com\" />\n", w.class("newsletter-input"))
	w.printf("      <button className=\"%s\" type=\"button\">Subscribe</button>\n", w.class("newsletter-button"))
	w.printf("    </section>\n  );\n}\n\nexport default NewsletterSignup;\n")
	return w
}

func reactTestimonialList(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/TestimonialList.jsx", artifact.KindComponent)
	w.importLine("import React from 'react';", "react")
	w.importLine("import '../styles/TestimonialList.css';", "../styles/TestimonialList.css")
	w.printf("\nfunction TestimonialList() {\n  return (\n    <section className=\"%s\">\n", w.class("testimonials"))
	for _, tm := range deck.Testimonials {
		w.printf("      <blockquote className=\"%s\">\n", w.class("testimonial"))
		w.printf("        <p className=\"%s\">%s</p>\n", w.class("testimonial-quote"), tm.Quote)
		w.printf("        <footer className=\"%s\">%s</footer>\n", w.class("testimonial-author"), tm.Author)
		w.printf("      </blockquote>\n")
	}
	w.printf("    </section>\n  );\n}\n\nexport default TestimonialList;\n")
	return w
}

// reactStubComponent is the stand-in for a referenced component that no
// template produced.
func reactStubComponent(name string) *writer {
	w := newWriter("src/components/"+name+".jsx", artifact.KindComponent)
	w.importLine("import React from 'react';", "react")
	w.importLine("import '../styles/"+name+".css';", "../styles/"+name+".css")
	w.printf("\nfunction %s() {\n  return <div className=\"%s\" />;\n}\n\nexport default %s;\n", name, w.class("page"), name)
	return w
}

// reactStubPage is the minimal structurally valid stand-in used by the
// repair engine when the router expects a page no template produced.
func reactStubPage(name string) *writer {
	w := newWriter("src/pages/"+name+".jsx", artifact.KindPage)
	w.importLine("import React from 'react';", "react")
	w.importLine("import '../styles/"+name+".css';", "../styles/"+name+".css")
	w.printf("\nfunction %s() {\n  return (\n    <div className=\"%s\">\n", name, w.class("page"))
	w.printf("      <h1 className=\"%s\">%s</h1>\n", w.class("page-title"), labelForRoute("/"+name))
	w.printf("      <p>Coming soon.</p>\n")
	w.printf("    </div>\n  );\n}\n\nexport default %s;\n", name)
	return w
}

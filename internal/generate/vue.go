package generate

import (
	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/request"
)

// vueTemplates builds a Vite + Vue Router project from single-file components.
var vueTemplates = &templates{
	markupExt: ".vue",
	devDependencies: map[string]string{
		"vite":               "5.4.8",
		"@vitejs/plugin-vue": "5.1.4",
	},
	entry:         vueEntry,
	navbar:        vueNavbar,
	stubPage:      vueStubPage,
	stubComponent: vueStubComponent,
	pages: map[string]func(ctx *pageContext) *writer{
		"home":     vueHomePage,
		"about":    vueAboutPage,
		"services": vueServicesPage,
		"contact":  vueContactPage,
		"gallery":  vueGalleryPage,
		"blog":     vueBlogPage,
		"booking":  vueBookingPage,
	},
	components: map[string]func(sel *request.FeatureSelection, deck *content.Deck) *writer{
		"ContactForm":      vueContactForm,
		"GalleryGrid":      vueGalleryGrid,
		"PostCard":         vuePostCard,
		"BookingForm":      vueBookingForm,
		"NewsletterSignup": vueNewsletterSignup,
		"TestimonialList":  vueTestimonialList,
	},
}

func vueEntry(sel *request.FeatureSelection, pages []pageInfo) []*writer {
	html := newWriter("index.html", artifact.KindAsset)
	html.printf("<!DOCTYPE html>\n<html lang=\"en\">\n  <head>\n")
	html.printf("    <meta charset=\"UTF-8\" />\n")
	html.printf("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	html.printf("    <title>%s</title>\n", sel.BusinessName)
	html.printf("  </head>\n  <body>\n    <div id=\"app\"></div>\n")
	html.printf("    <script type=\"module\" src=\"./src/main.js\"></script>\n")
	html.art.AddReference(artifact.RefImport, "./src/main.js")
	html.printf("  </body>\n</html>\n")

	vite := newWriter("vite.config.js", artifact.KindConfig)
	vite.importLine("import { defineConfig } from 'vite';", "vite")
	vite.importLine("import vue from '@vitejs/plugin-vue';", "@vitejs/plugin-vue")
	vite.printf("\nexport default defineConfig({\n  plugins: [vue()],\n});\n")

	main := newWriter("src/main.js", artifact.KindConfig)
	main.importLine("import { createApp } from 'vue';", "vue")
	main.importLine("import App from './App.vue';", "./App.vue")
	main.importLine("import router from './router';", "./router")
	main.printf("\ncreateApp(App).use(router).mount('#app');\n")

	router := newWriter("src/router.js", artifact.KindConfig)
	router.importLine("import { createRouter, createWebHistory } from 'vue-router';", "vue-router")
	for _, p := range pages {
		router.importLine("import "+p.Name+" from './pages/"+p.Name+".vue';", "./pages/"+p.Name+".vue")
	}
	router.printf("\nconst routes = [\n")
	for _, p := range pages {
		router.route(p.Route)
		router.printf("  { path: '%s', component: %s },\n", p.Route, p.Name)
	}
	router.printf("];\n\nexport default createRouter({\n  history: createWebHistory(),\n  routes,\n});\n")

	app := newWriter("src/App.vue", artifact.KindConfig)
	app.printf("<template>\n  <div id=\"app-shell\">\n    <Navbar />\n    <main>\n      <router-view />\n    </main>\n  </div>\n</template>\n\n")
	app.printf("<script>\n")
	app.importLine("import Navbar from './components/Navbar.vue';", "./components/Navbar.vue")
	app.printf("\nexport default {\n  name: 'App',\n  components: { Navbar },\n};\n</script>\n")

	return []*writer{html, vite, main, router, app}
}

func vueNavbar(sel *request.FeatureSelection, pages []pageInfo) *writer {
	w := newWriter("src/components/Navbar.vue", artifact.KindComponent)
	w.printf("<template>\n  <nav class=\"%s\">\n", w.class("navbar"))
	w.printf("    <span class=\"%s\">%s</span>\n", w.class("navbar-brand"), sel.BusinessName)
	w.printf("    <ul class=\"%s\">\n", w.class("navbar-links"))
	for _, p := range pages {
		w.navLink(p.Route)
		w.printf("      <li><router-link to=\"%s\">%s</router-link></li>\n", p.Route, labelForRoute(p.Route))
	}
	w.printf("    </ul>\n  </nav>\n</template>\n\n")
	w.printf("<script>\nexport default {\n  name: 'Navbar',\n};\n</script>\n\n")
	w.printf("<style src=\"../styles/Navbar.css\"></style>\n")
	w.art.AddReference(artifact.RefImport, "../styles/Navbar.css")
	return w
}

// vuePageScript writes the script block with hosted-component registration
// and the stylesheet link shared by every page template.
func vuePageScript(ctx *pageContext, w *writer) {
	w.printf("<script>\n")
	for _, comp := range ctx.extraComponents {
		w.importLine("import "+comp+" from '../components/"+comp+".vue';", "../components/"+comp+".vue")
	}
	w.printf("\nexport default {\n  name: '%sPage',\n", ctx.info.Name)
	if len(ctx.extraComponents) > 0 {
		w.printf("  components: { ")
		for i, comp := range ctx.extraComponents {
			if i > 0 {
				w.printf(", ")
			}
			w.printf("%s", comp)
		}
		w.printf(" },\n")
	}
	w.printf("};\n</script>\n\n")
	w.printf("<style src=\"../styles/%s.css\"></style>\n", ctx.info.Name)
	w.art.AddReference(artifact.RefImport, "../styles/"+ctx.info.Name+".css")
}

// vueHostedComponents writes the hosted component tags inside the template.
func vueHostedComponents(ctx *pageContext, w *writer) {
	for _, comp := range ctx.extraComponents {
		w.printf("    <%s />\n", comp)
	}
}

func vueHomePage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	deck := ctx.deck
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <section class=\"%s\">\n", w.class("hero"))
	w.printf("      <h1 class=\"%s\">%s</h1>\n", w.class("hero-title"), ctx.sel.BusinessName)
	w.printf("      <p class=\"%s\">%s</p>\n", w.class("hero-subtitle"), deck.Hero.Subtitle)
	w.printf("      <a class=\"%s\" href=\"/contact\">%s</a>\n", w.class("hero-cta"), deck.Hero.CTA)
	w.printf("    </section>\n")
	w.printf("    <section class=\"%s\">\n", w.class("services-preview"))
	for i, svc := range deck.Services {
		if i >= 3 {
			break
		}
		w.printf("      <article class=\"%s\">\n", w.class("service-card"))
		w.printf("        <h2>%s</h2>\n        <p>%s</p>\n", svc.Name, svc.Description)
		w.printf("      </article>\n")
	}
	w.printf("    </section>\n")
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

func vueAboutPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">About %s</h1>\n", w.class("page-title"), ctx.sel.BusinessName)
	w.printf("    <p class=\"%s\">%s</p>\n", w.class("about-text"), ctx.deck.About)
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

func vueServicesPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">Services</h1>\n", w.class("page-title"))
	w.printf("    <div class=\"%s\">\n", w.class("services-grid"))
	for _, svc := range ctx.deck.Services {
		w.printf("      <article class=\"%s\">\n", w.class("service-card"))
		w.printf("        <h2 class=\"%s\">%s</h2>\n", w.class("service-name"), svc.Name)
		w.printf("        <p class=\"%s\">%s</p>\n", w.class("service-desc"), svc.Description)
		w.printf("      </article>\n")
	}
	w.printf("    </div>\n")
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

func vueContactPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">Contact</h1>\n", w.class("page-title"))
	w.printf("    <div class=\"%s\">\n", w.class("contact-info"))
	w.printf("      <p class=\"%s\">We would love to hear from you.</p>\n", w.class("contact-detail"))
	if phone, ok := ctx.sel.BusinessData["phone"]; ok {
		w.printf("      <p class=\"%s\">Phone: %s</p>\n", w.class("contact-detail"), phone)
	}
	if email, ok := ctx.sel.BusinessData["email"]; ok {
		w.printf("      <p class=\"%s\">Email: %s</p>\n", w.class("contact-detail"), email)
	}
	w.printf("    </div>\n")
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

func vueGalleryPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">Gallery</h1>\n", w.class("page-title"))
	w.printf("    <p class=\"%s\">A look inside %s.</p>\n", w.class("gallery-intro"), ctx.sel.BusinessName)
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

func vueBlogPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">Blog</h1>\n", w.class("page-title"))
	w.printf("    <div class=\"%s\">\n", w.class("blog-list"))
	w.printf("      <p>News and updates from %s.</p>\n", ctx.sel.BusinessName)
	w.printf("    </div>\n")
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

func vueBookingPage(ctx *pageContext) *writer {
	w := newWriter(ctx.info.Path, artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">Booking</h1>\n", w.class("page-title"))
	w.printf("    <p class=\"%s\">Reserve your spot with %s.</p>\n", w.class("booking-intro"), ctx.sel.BusinessName)
	vueHostedComponents(ctx, w)
	w.printf("  </div>\n</template>\n\n")
	vuePageScript(ctx, w)
	return w
}

// --- Components ---

// vueComponentClose writes the script and style blocks shared by components.
func vueComponentClose(w *writer, name string) {
	w.printf("<script>\nexport default {\n  name: '%s',\n};\n</script>\n\n", name)
	w.printf("<style src=\"../styles/%s.css\"></style>\n", name)
	w.art.AddReference(artifact.RefImport, "../styles/"+name+".css")
}

func vueContactForm(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/ContactForm.vue", artifact.KindComponent)
	w.printf("<template>\n  <form class=\"%s\">\n", w.class("contact-form"))
	w.printf("    <div class=\"%s\">\n", w.class("form-field"))
	w.printf("      <label class=\"%s\" for=\"name\">Name</label>\n", w.class("form-label"))
	w.printf("      <input class=\"%s\" id=\"name\" name=\"name\" type=\"text\" />\n", w.class("form-input"))
	w.printf("    </div>\n")
	w.printf("    <div class=\"%s\">\n", w.class("form-field"))
	w.printf("      <label class=\"%s\" for=\"email\">Email</label>\n", w.class("form-label"))
	w.printf("      <input class=\"%s\" id=\"email\" name=\"email\" type=\"email\" v-model=\"email\" />\n", w.class("form-input"))
	w.printf("    </div>\n")
	w.printf("    <div class=\"%s\">\n", w.class("form-field"))
	w.printf("      <label class=\"%s\" for=\"message\">Message</label>\n", w.class("form-label"))
	w.printf("      <textarea class=\"%s\" id=\"message\" name=\"message\" rows=\"5\"></textarea>\n", w.class("form-input"))
	w.printf("    </div>\n")
	w.printf("    <button class=\"%s\" type=\"submit\" :disabled=\"!valid\">Send</button>\n", w.class("form-submit"))
	w.printf("  </form>\n</template>\n\n")
	w.printf("<script>\n")
	w.importLine("import isEmail from 'validator/lib/isEmail';", "validator/lib/isEmail")
	w.printf("\nexport default {\n  name: 'ContactForm',\n  data() {\n    return { email: '' };\n  },\n")
	w.printf("  computed: {\n    valid() {\n      return this.email === '' || isEmail(this.email);\n    },\n  },\n};\n</script>\n\n")
	w.printf("<style src=\"../styles/ContactForm.css\"></style>\n")
	w.art.AddReference(artifact.RefImport, "../styles/ContactForm.css")
	return w
}

func vueGalleryGrid(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/GalleryGrid.vue", artifact.KindComponent)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("gallery-grid"))
	w.printf("    <figure class=\"%s\" v-for=\"n in 6\" :key=\"n\">\n", w.class("gallery-item"))
	w.printf("      <img :src=\"`/images/gallery-${n}.jpg`\" alt=\"\" loading=\"lazy\" />\n")
	w.printf("    </figure>\n")
	w.printf("  </div>\n</template>\n\n")
	w.printf("<script>\n")
	w.importLine("import 'photoswipe/style.css';", "photoswipe/style.css")
	w.printf("\nexport default {\n  name: 'GalleryGrid',\n};\n</script>\n\n")
	w.printf("<style src=\"../styles/GalleryGrid.css\"></style>\n")
	w.art.AddReference(artifact.RefImport, "../styles/GalleryGrid.css")
	return w
}

func vuePostCard(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/PostCard.vue", artifact.KindComponent)
	w.printf("<template>\n  <article class=\"%s\">\n", w.class("post-card"))
	w.printf("    <h2 class=\"%s\">{{ title }}</h2>\n", w.class("post-title"))
	w.printf("    <div class=\"%s\" v-html=\"rendered\"></div>\n", w.class("post-excerpt"))
	w.printf("  </article>\n</template>\n\n")
	w.printf("<script>\n")
	w.importLine("import { parse } from 'marked';", "marked")
	w.printf("\nexport default {\n  name: 'PostCard',\n  props: ['title', 'excerpt'],\n")
	w.printf("  computed: {\n    rendered() {\n      return parse(this.excerpt);\n    },\n  },\n};\n</script>\n\n")
	w.printf("<style src=\"../styles/PostCard.css\"></style>\n")
	w.art.AddReference(artifact.RefImport, "../styles/PostCard.css")
	return w
}

func vueBookingForm(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/BookingForm.vue", artifact.KindComponent)
	w.printf("<template>\n  <form class=\"%s\">\n", w.class("booking-form"))
	w.printf("    <div class=\"%s\">\n", w.class("form-field"))
	w.printf("      <label class=\"%s\" for=\"date\">Date</label>\n", w.class("form-label"))
	w.printf("      <input class=\"%s\" id=\"date\" type=\"date\" v-model=\"date\" />\n", w.class("form-input"))
	w.printf("    </div>\n")
	w.printf("    <button class=\"%s\" type=\"submit\">Request booking</button>\n", w.class("form-submit"))
	w.printf("  </form>\n</template>\n\n")
	w.printf("<script>\n")
	w.importLine("import { format } from 'date-fns';", "date-fns")
	w.printf("\nexport default {\n  name: 'BookingForm',\n  data() {\n    return { date: format(new Date(), 'yyyy-MM-dd') };\n  },\n};\n</script>\n\n")
	w.printf("<style src=\"../styles/BookingForm.css\"></style>\n")
	w.art.AddReference(artifact.RefImport, "../styles/BookingForm.css")
	return w
}

func vueNewsletterSignup(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/NewsletterSignup.vue", artifact.KindComponent)
	w.printf("<template>\n  <section class=\"%s\">\n", w.class("newsletter"))
	w.printf("    <h2>Stay in touch</h2>\n")
	w.printf("    <input class=\"%s\" type=\"email\" placeholder=\"you@example.com\" />\n", w.class("newsletter-input"))
	w.printf("    <button class=\"%s\" type=\"button\">Subscribe</button>\n", w.class("newsletter-button"))
	w.printf("  </section>\n</template>\n\n")
	vueComponentClose(w, "NewsletterSignup")
	return w
}

func vueTestimonialList(sel *request.FeatureSelection, deck *content.Deck) *writer {
	w := newWriter("src/components/TestimonialList.vue", artifact.KindComponent)
	w.printf("<template>\n  <section class=\"%s\">\n", w.class("testimonials"))
	for _, tm := range deck.Testimonials {
		w.printf("    <blockquote class=\"%s\">\n", w.class("testimonial"))
		w.printf("      <p class=\"%s\">%s</p>\n", w.class("testimonial-quote"), tm.Quote)
		w.printf("      <footer class=\"%s\">%s</footer>\n", w.class("testimonial-author"), tm.Author)
		w.printf("    </blockquote>\n")
	}
	w.printf("  </section>\n</template>\n\n")
	vueComponentClose(w, "TestimonialList")
	return w
}

// vueStubComponent is the stand-in for a referenced component that no
// template produced.
func vueStubComponent(name string) *writer {
	w := newWriter("src/components/"+name+".vue", artifact.KindComponent)
	w.printf("<template>\n  <div class=\"%s\" />\n</template>\n\n", w.class("page"))
	w.printf("<script>\nexport default {\n  name: '%s',\n};\n</script>\n\n", name)
	w.printf("<style src=\"../styles/%s.css\"></style>\n", name)
	w.art.AddReference(artifact.RefImport, "../styles/"+name+".css")
	return w
}

// vueStubPage is the minimal structurally valid stand-in used by the repair
// engine when the router expects a page no template produced.
func vueStubPage(name string) *writer {
	w := newWriter("src/pages/"+name+".vue", artifact.KindPage)
	w.printf("<template>\n  <div class=\"%s\">\n", w.class("page"))
	w.printf("    <h1 class=\"%s\">%s</h1>\n", w.class("page-title"), labelForRoute("/"+name))
	w.printf("    <p>Coming soon.</p>\n")
	w.printf("  </div>\n</template>\n\n")
	w.printf("<script>\nexport default {\n  name: '%sPage',\n};\n</script>\n\n", name)
	w.printf("<style src=\"../styles/%s.css\"></style>\n", name)
	w.art.AddReference(artifact.RefImport, "../styles/"+name+".css")
	return w
}

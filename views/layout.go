package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/bepisdev/bepis"
	"github.com/bepisdev/bepis/siteconfig"
)

const themeScript = `(function(){var k="theme",d=document.documentElement,t=localStorage.getItem(k)||(matchMedia("(prefers-color-scheme: dark)").matches?"dark":"light");d.dataset.theme=t;document.addEventListener("DOMContentLoaded",function(){var b=document.getElementById("theme-btn");if(!b)return;b.addEventListener("click",function(){t=t==="dark"?"light":"dark";d.dataset.theme=t;localStorage.setItem(k,t)})})})();`

// Layout wraps body in the full HTML document: head metadata, header with
// logo and socials, and footer.
func Layout(sc bepis.SiteContext, meta bepis.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, b *builder) error {
		b.raw(`<!DOCTYPE html><html`)
		b.attr("lang", HTMLLang(sc))
		b.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.raw(`<title>`)
		b.text(meta.Title)
		b.raw(`</title>`)
		writeMeta(b, "name", "title", meta.Title)
		writeMeta(b, "name", "description", meta.Description)
		writeMeta(b, "name", "author", sc.Site.Author)
		b.raw(`<link rel="canonical"`)
		b.href(meta.URL)
		b.raw(`><link rel="icon" type="image/svg+xml" href="/favicon.svg">`)
		b.raw(`<link rel="alternate" type="application/rss+xml"`)
		b.attr("title", sc.Site.Title)
		b.raw(` href="/rss.xml"><link rel="sitemap" href="/sitemap.xml">`)
		writeMeta(b, "property", "og:title", meta.Title)
		writeMeta(b, "property", "og:type", meta.OGType)
		writeMeta(b, "property", "og:description", meta.Description)
		writeMeta(b, "property", "og:url", meta.URL)
		writeMeta(b, "property", "og:site_name", sc.Site.Title)
		writeMeta(b, "property", "og:locale", OGLocale(sc))
		if meta.OGImage != "" {
			writeMeta(b, "property", "og:image", meta.OGImage)
			writeMeta(b, "name", "twitter:image", meta.OGImage)
		}
		writeMeta(b, "name", "twitter:card", "summary_large_image")
		writeMeta(b, "name", "twitter:title", meta.Title)
		writeMeta(b, "name", "twitter:description", meta.Description)
		if jsonLD != "" {
			b.raw(`<script type="application/ld+json">`)
			b.raw(jsonLD)
			b.raw(`</script>`)
		}
		b.raw(`<link rel="stylesheet" href="/public/style.css">`)
		if sc.Site.LightAndDarkMode {
			b.raw(`<script>` + themeScript + `</script>`)
		}
		b.raw(`</head><body>`)
		if err := b.child(ctx, Header(sc)); err != nil {
			return err
		}
		b.raw(`<main id="main-content">`)
		if err := b.child(ctx, body); err != nil {
			return err
		}
		b.raw(`</main>`)
		if err := b.child(ctx, Footer(sc)); err != nil {
			return err
		}
		b.raw(`</body></html>`)
		return nil
	})
}

func writeMeta(b *builder, key, name, content string) {
	if content == "" {
		return
	}
	b.raw(`<meta`)
	b.attr(key, name)
	b.attr("content", content)
	b.raw(`>`)
}

// Header renders the site logo (or title), navigation and socials.
func Header(sc bepis.SiteContext) templ.Component {
	return component(func(ctx context.Context, b *builder) error {
		b.raw(`<header><a id="skip-to-content" href="#main-content">Skip to content</a><div class="nav-container"><a href="/" class="logo">`)
		if sc.Logo.Enable {
			b.raw(`<img`)
			b.attr("src", LogoSrc(sc.Logo))
			b.attr("alt", sc.Site.Title)
			b.attr("width", strconv.Itoa(sc.Logo.Width))
			b.attr("height", strconv.Itoa(sc.Logo.Height))
			b.raw(`>`)
		} else {
			b.text(sc.Site.Title)
		}
		b.raw(`</a><nav><ul><li><a href="/posts/">Posts</a></li><li><a href="/tags/">Tags</a></li>`)
		if sc.Site.LightAndDarkMode {
			b.raw(`<li><button id="theme-btn" title="Toggles light &amp; dark" aria-label="auto" aria-live="polite">Theme</button></li>`)
		}
		b.raw(`</ul></nav></div></header>`)
		return nil
	})
}

// Footer renders the social links and copyright line.
func Footer(sc bepis.SiteContext) templ.Component {
	return component(func(ctx context.Context, b *builder) error {
		b.raw(`<footer>`)
		if err := b.child(ctx, Socials(sc.Socials, false)); err != nil {
			return err
		}
		b.raw(`<p class="copyright">Copyright &#169; `)
		b.text(sc.Site.Author)
		b.raw(` | All rights reserved.</p></footer>`)
		return nil
	})
}

// Socials renders the active social links in their configured order.
// centered adds the layout class used on the home page.
func Socials(links []siteconfig.SocialLink, centered bool) templ.Component {
	return component(func(ctx context.Context, b *builder) error {
		active := siteconfig.ActiveSocials(links)
		if len(active) == 0 {
			return nil
		}
		cls := "social-icons"
		if centered {
			cls += " centered"
		}
		b.raw(`<div`)
		b.attr("class", cls)
		b.raw(`>`)
		for _, l := range active {
			b.raw(`<a`)
			b.href(l.Href)
			b.attr("class", "social-link")
			b.attr("title", l.LinkTitle)
			b.attr("aria-label", l.LinkTitle)
			b.raw(` target="_blank" rel="noopener noreferrer"><span`)
			b.attr("class", "icon "+SocialIcon(l.Name))
			b.raw(` aria-hidden="true"></span><span class="sr-only">`)
			b.text(l.LinkTitle)
			b.raw(`</span></a>`)
		}
		b.raw(`</div>`)
		return nil
	})
}

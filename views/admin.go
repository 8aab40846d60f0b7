package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/bepisdev/bepis"
)

func adminMeta(sc bepis.SiteContext, title string) bepis.PageMeta {
	return bepis.PageMeta{Title: title + " | " + sc.Site.Title, OGType: "website"}
}

func csrfField(b *builder, token string) {
	b.raw(`<input type="hidden" name="_csrf"`)
	b.attr("value", token)
	b.raw(`>`)
}

// AdminLogin renders the password form.
func AdminLogin(sc bepis.SiteContext, showError bool, csrfToken string) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<h1>Admin</h1>`)
		if showError {
			b.raw(`<p class="error" role="alert">Wrong password.</p>`)
		}
		b.raw(`<form method="post" action="/admin/login/">`)
		csrfField(b, csrfToken)
		b.raw(`<label for="password">Password</label><input id="password" type="password" name="password" required autofocus><button type="submit">Log in</button></form>`)
		return nil
	})
	return Layout(sc, adminMeta(sc, "Admin"), "", body)
}

// AdminDashboard renders every post with edit/delete controls and an empty
// form for a new post.
func AdminDashboard(sc bepis.SiteContext, posts []bepis.BlogPost, message string, csrfToken string) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<script src="/public/htmx.min.js" defer></script><h1>Dashboard</h1>`)
		if message != "" {
			b.raw(`<p class="message" role="status">`)
			b.text(message)
			b.raw(`</p>`)
		}
		b.raw(`<form method="post" action="/admin/logout/">`)
		csrfField(b, csrfToken)
		b.raw(`<button type="submit">Log out</button></form><button hx-get="/admin/images/" hx-target="#images-panel">Images</button><div id="images-panel"></div>`)
		b.raw(`<table class="admin-posts"><thead><tr><th>Title</th><th>Published</th><th>Status</th><th></th></tr></thead><tbody>`)
		for _, p := range posts {
			b.raw(`<tr><td><a`)
			b.href("/admin/post/" + p.Slug + "/")
			b.attr("hx-get", "/admin/post/"+p.Slug+"/")
			b.raw(` hx-target="#post-form" hx-swap="outerHTML">`)
			b.text(p.Title)
			b.raw(`</a></td><td>`)
			b.text(FormatDate(p.PubDatetime))
			b.raw(`</td><td>`)
			switch {
			case p.Draft:
				b.raw(`draft`)
			case p.Featured:
				b.raw(`featured`)
			default:
				b.raw(`live`)
			}
			b.raw(`</td><td><button hx-delete="/admin/post/`)
			b.text(p.Slug)
			b.raw(`/" hx-target="body" hx-confirm="Delete this post?"`)
			b.attr("hx-headers", `{"X-CSRF-Token": "`+csrfToken+`"}`)
			b.raw(`>Delete</button></td></tr>`)
		}
		b.raw(`</tbody></table><h2>New post</h2>`)
		return b.child(ctx, AdminFormPartial(bepis.BlogPost{}, csrfToken))
	})
	return Layout(sc, adminMeta(sc, "Dashboard"), "", body)
}

// AdminFormPartial renders the post editor, prefilled with post.
func AdminFormPartial(post bepis.BlogPost, csrfToken string) templ.Component {
	return component(func(ctx context.Context, b *builder) error {
		b.raw(`<form id="post-form" method="post" action="/admin/save/">`)
		csrfField(b, csrfToken)
		field := func(label, name, typ, value string) {
			b.raw(`<label>`)
			b.text(label)
			b.raw(`<input`)
			b.attr("type", typ)
			b.attr("name", name)
			b.attr("value", value)
			b.raw(`></label>`)
		}
		field("Title", "title", "text", post.Title)
		field("Slug", "slug", "text", post.Slug)
		field("Description", "description", "text", post.Description)
		field("Tags", "tags", "text", JoinTags(post.Tags))
		field("Publish at (UTC)", "pub_datetime", "datetime-local", datetimeLocal(post.PubDatetime))
		field("OG image", "og_image", "text", post.OGImage)
		checkbox := func(label, name string, checked bool) {
			b.raw(`<label><input type="checkbox"`)
			b.attr("name", name)
			b.raw(` value="1"`)
			if checked {
				b.raw(` checked`)
			}
			b.raw(`> `)
			b.text(label)
			b.raw(`</label>`)
		}
		checkbox("Featured", "featured", post.Featured)
		checkbox("Draft", "draft", post.Draft)
		b.raw(`<label>Content<textarea name="content" rows="20">`)
		b.text(post.Content)
		b.raw(`</textarea></label><button type="submit">Save</button></form>`)
		return nil
	})
}

// AdminImages renders the upload form and the list of uploaded images.
func AdminImages(images []bepis.Image, csrfToken string) templ.Component {
	return component(func(ctx context.Context, b *builder) error {
		b.raw(`<section id="images"><form hx-post="/admin/images/upload/" hx-encoding="multipart/form-data" hx-target="#images" hx-swap="outerHTML">`)
		csrfField(b, csrfToken)
		b.raw(`<input type="file" name="image" accept="image/*" required><button type="submit">Upload</button></form><ul class="image-list">`)
		for _, img := range images {
			src := "/public/uploads/" + img.Filename
			b.raw(`<li><img`)
			b.attr("src", src)
			b.attr("alt", img.OriginalName)
			b.attr("width", strconv.Itoa(img.Width))
			b.attr("height", strconv.Itoa(img.Height))
			b.raw(` loading="lazy"><code>`)
			b.text("![" + img.OriginalName + "](" + src + ")")
			b.raw(`</code><button`)
			b.attr("hx-delete", "/admin/images/"+img.Filename+"/")
			b.attr("hx-headers", `{"X-CSRF-Token": "`+csrfToken+`"}`)
			b.raw(` hx-target="#images" hx-swap="outerHTML">Delete</button></li>`)
		}
		b.raw(`</ul></section>`)
		return nil
	})
}

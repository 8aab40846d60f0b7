package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/bepisdev/bepis"
	"github.com/bepisdev/bepis/markdown"
)

// Home renders the landing page: intro, socials, featured and recent posts.
func Home(sc bepis.SiteContext, meta bepis.PageMeta, featured, recent []bepis.BlogPost) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<section id="hero"><h1>`)
		b.text(sc.Site.Title)
		b.raw(`</h1><a class="rss-link" href="/rss.xml" aria-label="rss feed" title="RSS Feed">RSS</a><p>`)
		b.text(sc.Site.Desc)
		b.raw(`</p>`)
		if err := b.child(ctx, Socials(sc.Socials, true)); err != nil {
			return err
		}
		b.raw(`</section>`)
		if len(featured) > 0 {
			b.raw(`<section id="featured"><h2>Featured</h2><ul>`)
			for _, p := range featured {
				postCard(b, p, "h3")
			}
			b.raw(`</ul></section>`)
		}
		if len(recent) > 0 {
			b.raw(`<section id="recent-posts"><h2>Recent Posts</h2><ul>`)
			for _, p := range recent {
				postCard(b, p, "h3")
			}
			b.raw(`</ul></section>`)
		}
		b.raw(`<div class="all-posts-btn"><a href="/posts/">All Posts &#8594;</a></div>`)
		return nil
	})
	return Layout(sc, meta, bepis.WebsiteJsonLD(sc.Site), body)
}

// Posts renders one page of the post listing.
func Posts(sc bepis.SiteContext, meta bepis.PageMeta, page bepis.Page) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<h1>Posts</h1><p>All the articles I've posted.</p><ul>`)
		for _, p := range page.Posts {
			postCard(b, p, "h2")
		}
		b.raw(`</ul>`)
		pagination(b, page)
		return nil
	})
	return Layout(sc, meta, "", body)
}

// Post renders a single article with links to its neighbours.
func Post(sc bepis.SiteContext, meta bepis.PageMeta, post bepis.BlogPost, prev, next *bepis.BlogPost) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<article id="article"><h1 class="post-title">`)
		b.text(post.Title)
		b.raw(`</h1>`)
		datetime(b, post)
		b.raw(`<div class="prose">`)
		if err := b.child(ctx, markdown.Markdown(post.Content)); err != nil {
			return err
		}
		b.raw(`</div><ul class="tags">`)
		for _, t := range post.Tags {
			b.raw(`<li><a`)
			b.href(bepis.TagLink(t))
			b.attr("class", TagClass(false))
			b.raw(`>#`)
			b.text(TagTitle(sc, t))
			b.raw(`</a></li>`)
		}
		b.raw(`</ul>`)
		if prev != nil || next != nil {
			b.raw(`<nav class="post-nav">`)
			if prev != nil {
				b.raw(`<a`)
				b.href(prev.Link)
				b.raw(` class="prev"><span>Previous Post</span><div>`)
				b.text(prev.Title)
				b.raw(`</div></a>`)
			}
			if next != nil {
				b.raw(`<a`)
				b.href(next.Link)
				b.raw(` class="next"><span>Next Post</span><div>`)
				b.text(next.Title)
				b.raw(`</div></a>`)
			}
			b.raw(`</nav>`)
		}
		b.raw(`</article>`)
		return nil
	})
	return Layout(sc, meta, bepis.BlogPostingJsonLD(sc.Site, post), body)
}

// Tags renders the list of all tags.
func Tags(sc bepis.SiteContext, meta bepis.PageMeta, tags []string) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<h1>Tags</h1><p>All the tags used in posts.</p><ul class="tags">`)
		for _, t := range tags {
			b.raw(`<li><a`)
			b.href(bepis.TagLink(t))
			b.attr("class", TagClass(false))
			b.raw(`>#`)
			b.text(TagTitle(sc, t))
			b.raw(`</a></li>`)
		}
		b.raw(`</ul>`)
		return nil
	})
	return Layout(sc, meta, "", body)
}

// TagPosts renders one page of posts carrying tag.
func TagPosts(sc bepis.SiteContext, meta bepis.PageMeta, tag string, page bepis.Page) templ.Component {
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<h1>Tag: `)
		b.text(TagTitle(sc, tag))
		b.raw(`</h1><ul>`)
		for _, p := range page.Posts {
			postCard(b, p, "h2")
		}
		b.raw(`</ul>`)
		pagination(b, page)
		return nil
	})
	return Layout(sc, meta, "", body)
}

// NotFound renders the 404 page.
func NotFound(sc bepis.SiteContext) templ.Component {
	meta := bepis.PageMeta{Title: "404 Not Found | " + sc.Site.Title, Description: sc.Site.Desc, OGType: "website"}
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<div class="not-found"><h1>404</h1><p>Page Not Found</p><a href="/">Go back home</a></div>`)
		return nil
	})
	return Layout(sc, meta, "", body)
}

// ServerError renders the 5xx page.
func ServerError(sc bepis.SiteContext) templ.Component {
	meta := bepis.PageMeta{Title: "Error | " + sc.Site.Title, Description: sc.Site.Desc, OGType: "website"}
	body := component(func(ctx context.Context, b *builder) error {
		b.raw(`<div class="not-found"><h1>500</h1><p>Something went wrong.</p><a href="/">Go back home</a></div>`)
		return nil
	})
	return Layout(sc, meta, "", body)
}

func postCard(b *builder, p bepis.BlogPost, heading string) {
	b.raw(`<li class="post-card"><a`)
	b.href(p.Link)
	b.raw(`><` + heading + `>`)
	b.text(p.Title)
	b.raw(`</` + heading + `></a>`)
	datetime(b, p)
	b.raw(`<p>`)
	b.text(p.Description)
	b.raw(`</p></li>`)
}

func datetime(b *builder, p bepis.BlogPost) {
	b.raw(`<div class="datetime">`)
	if p.ModDatetime != nil {
		b.raw(`<span>Updated:</span> `)
	}
	b.raw(`<time`)
	b.attr("datetime", p.Updated().UTC().Format("2006-01-02T15:04:05Z07:00"))
	b.raw(`>`)
	b.text(FormatDate(p.Updated()))
	b.raw(`</time></div>`)
}

func pagination(b *builder, page bepis.Page) {
	if page.TotalPages <= 1 {
		return
	}
	b.raw(`<nav class="pagination" aria-label="Pagination">`)
	if page.HasPrev() {
		b.raw(`<a`)
		b.href(page.PrevURL())
		b.raw(` rel="prev">&#8592; Prev</a>`)
	} else {
		b.raw(`<span class="disabled">&#8592; Prev</span>`)
	}
	b.raw(`<span class="page-count">`)
	b.text(strconv.Itoa(page.Current) + " / " + strconv.Itoa(page.TotalPages))
	b.raw(`</span>`)
	if page.HasNext() {
		b.raw(`<a`)
		b.href(page.NextURL())
		b.raw(` rel="next">Next &#8594;</a>`)
	} else {
		b.raw(`<span class="disabled">Next &#8594;</span>`)
	}
	b.raw(`</nav>`)
}

// Package views renders the bepis pages as templ components.
package views

import "github.com/bepisdev/bepis"

// Funcs returns the view set for bepis.New.
func Funcs() bepis.ViewFuncs {
	return bepis.ViewFuncs{
		Home:             Home,
		Posts:            Posts,
		Post:             Post,
		Tags:             Tags,
		TagPosts:         TagPosts,
		AdminLogin:       AdminLogin,
		AdminDashboard:   AdminDashboard,
		AdminFormPartial: AdminFormPartial,
		AdminImages:      AdminImages,
		NotFound:         NotFound,
		ServerError:      ServerError,
	}
}

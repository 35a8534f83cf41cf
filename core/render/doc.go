// Package render is the page-rendering engine behind the catch-all route.
//
// The rendering root contains two directories:
//
//	pages/   html/template files, routed by path (/ -> index.html,
//	         /blog -> blog.html or blog/index.html, 404.html for misses)
//	public/  static files served as is
//
// Public assets can also come from an object storage bucket (see
// NewStorageAssets). Outside development every page is compiled once by
// Prepare; in development pages are parsed on each request so edits show up
// without a restart.
package render

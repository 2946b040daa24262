// Package request provides the mutable request draft that parameter bindings
// write into, and the immutable Resolved request it builds.
//
//	d := request.NewDraft()
//	d.SetMethod(http.MethodGet)
//	d.SetPathTemplate("/artists/{artist_name}")
//	d.AddPathSubstitution("artist_name", "Doma")
//	d.AddQueryParams(map[string]string{"app_id": "123"})
//	resolved, err := d.Build() // Path: "/artists/Doma"
//
// Build fails with ErrMissingMethod or ErrMissingPath when those were never
// set, and with an UNRESOLVED_PLACEHOLDER BuildError when a `{token}` has no
// registered substitution. Substituted values are percent-encoded as single
// path segments, so Resolved.Path is already escaped.
package request

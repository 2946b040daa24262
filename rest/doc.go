// Package rest dispatches declaratively described endpoints.
//
// An endpoint is a method and a path template. A request type lists its
// parameter bindings; the response type decides how the body is decoded:
//
//	type FindArtistRequest struct {
//	    Name  string
//	    AppID string
//	}
//
//	func (r FindArtistRequest) Params() []param.Field {
//	    return []param.Field{
//	        param.F("artist_name", param.Path(r.Name)),
//	        param.F("app_id", param.Query(r.AppID)),
//	    }
//	}
//
//	client, err := rest.New(httpclient.Config{Host: "rest.bandsintown.com"})
//	artist, err := rest.Perform[Artist](ctx, client, rest.Get("/artists/{artist_name}"), req)
//
// Use response.Either to receive a typed error payload on non-2xx statuses,
// and Bind to keep an endpoint as a reusable function value.
package rest

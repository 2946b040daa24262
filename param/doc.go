// Package param provides the parameter bindings a request type uses to
// describe how each of its fields contributes to an HTTP request.
//
// Request types implement Provider and list their fields in declaration order.
// A binding uses the declared field name unless it was given an explicit one:
//
//	type ArtistEventsRequest struct {
//	    ArtistName string
//	    AppID      string
//	    Date       string
//	}
//
//	func (r ArtistEventsRequest) Params() []param.Field {
//	    return []param.Field{
//	        param.F("artistName", param.Path(r.ArtistName).Named("artist_name")),
//	        param.F("appId", param.Query(r.AppID).Named("app_id")),
//	        param.F("date", param.Query(r.Date)),
//	    }
//	}
//
// A leading underscore on a declared name is stripped before use.
package param

// Package response decodes raw transport results into typed responses.
//
// Plain response types are JSON-decoded from the body. Types that need more
// than the body implement Decoder; Either and Empty are the two provided:
//
//	type EventsResult = response.Either[[]Event, APIError]
//
//	res, err := response.Decode[EventsResult](raw)
//	if err != nil {
//	    return err // body matched neither shape
//	}
//	if events, ok := res.Response(); ok {
//	    ...
//	}
//
// HTTP error statuses are not errors here. Only a body that cannot be decoded
// into the expected shape yields a *DecodeError.
package response

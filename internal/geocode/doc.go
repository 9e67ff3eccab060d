// Package geocode is a client for the OpenCage reverse-geocoding API.
//
// The planner makes exactly one kind of outbound call: converting a latitude
// and longitude into a human-readable address. The request is a single GET:
//
//	GET https://api.opencagedata.com/geocode/v1/json?key=KEY&q=LAT+LON
//
// and the interesting part of the response is results[0].formatted:
//
//	{"results":[{"formatted":"San José, Costa Rica", ...}], "status":{...}}
//
// # Error Handling
//
// Failures are returned as *Error values classified by ErrorType, in the same
// spirit as the HTTP status / network / parse split used elsewhere:
//
//	addr, found, err := client.ReverseFormatted(ctx, 9.748, -83.753)
//	if err != nil {
//	    fmt.Println(geocode.GetShortErrorMessage(err))
//	}
//
// A well-formed response without results is not an error: found is false.
//
// The client performs no retries.
package geocode

// Package geo resolves the user's current location to a street address.
//
// A Locator supplies coordinates. Three are provided:
//   - Unsupported: no capability, every lookup fails as unsupported
//   - Static: a fixed position from the config file
//   - GPSD: the first 2D/3D fix from a gpsd daemon, either at a configured
//     host:port or discovered over mDNS as _gpsd._tcp in local.
//
// Resolver combines a Locator with a reverse geocoder:
//
//	resolver := geo.NewResolver(locator, config.APIKey(), baseURL, 10*time.Second)
//	result, err := resolver.Resolve(ctx)
//	switch {
//	case geo.IsKind(err, geo.KindMissingConfiguration):
//	    // tell the user to set OPENCAGE_API_KEY
//	case err != nil:
//	    fmt.Println(geo.UserMessage(err))
//	case result.Found:
//	    fmt.Println(result.Address)
//	}
//
// Failures are always *LocationError with one of four kinds, checked in
// this order: unsupported platform, position unavailable, missing API key,
// geocoding error. A successful request whose response has no results is not
// an error; Result.Found is false.
package geo

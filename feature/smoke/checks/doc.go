// Package checks holds the individual smoke checks run against the KML application.
//
// # Checks Provided
//
//   - Backend: GET /docs for liveness, then (when the sample KML file exists) uploads it to
//     /api/kml/routes and /api/kml/elevation and validates the JSON shape of both responses.
//   - Frontend: GETs each candidate frontend URL in order and stops at the first 200.
//
// Checkers never return errors. Every failure becomes a diagnostic line on the
// operator's console and a Failed outcome on the result.
package checks

// Package sample locates the KML file uploaded by the backend checks.
//
// The file either sits in the working directory (the default, "Bike routes.kml")
// or in an object storage bucket. A missing file is not an error: callers use
// Exists to decide whether the upload checks can run at all.
package sample

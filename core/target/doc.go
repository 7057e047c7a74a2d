// Package target holds the addresses and timeouts of the application under test:
// the KML backend API and the candidate frontend URLs.
package target

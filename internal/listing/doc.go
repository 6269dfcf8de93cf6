// Package listing decides whether a case appears in a cause list: fuzzy
// substring matching of a case identifier against parsed rows, and the
// resolution of "listed today / tomorrow" from the match result and the
// case's hearing history.
package listing

// Package browser drives a local Chromium against the eCourts portal.
//
// The portal gates every search behind a CAPTCHA, so this package never
// submits forms programmatically. It opens the relevant page, blocks until
// the operator completes the form and CAPTCHA in the visible browser window,
// then snapshots the rendered markup for the extraction core. PDF links on
// a result page can be downloaded out-of-band reusing the browser's cookies.
package browser

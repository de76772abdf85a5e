// Package fileutil provides pure helpers over file metadata: MIME-type
// classification, human-readable size formatting, and filename extension
// handling.
//
// Nothing in this package touches the filesystem; every function is a
// transformation over strings and byte counts.
//
//	import "github.com/dmitrymomot/utilkit/pkg/fileutil"
//
//	fileutil.Type("image/png")        // fileutil.KindImage
//	fileutil.FormatSize(1048576)      // "1.00 MB"
//	fileutil.Extension("report.pdf")  // "pdf"
//
// Classification checks a MIME-type string against fixed membership lists
// for images, videos and documents; anything else is KindUnknown.
//
// All functions are stateless and safe for concurrent use.
package fileutil

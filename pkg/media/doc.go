// Package media handles illustration assets referenced by entry documents.
//
// The renderer only needs the Resolver side: a relative illustration
// reference is rewritten to the URL path it is served under, via an optional
// manifest of fingerprinted filenames. The Store side (disk by default, S3
// behind the s3media build tag) backs the preview server's /media/ routes.
package media

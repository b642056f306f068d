// Package storage provides scratch storage for uploaded and signed documents.
//
// Documents are written to named areas (uploads and signed) of a backend
// selected by URI:
//
//	[scheme]://[auth@]host[:port][/path][?params]
//
// Supported URI schemes:
//
//   - file:///var/lib/signing/scratch or file://./scratch
//   - s3://bucket-name/prefix?region=us-west-2&endpoint=http://localhost:9000
//   - s3://ACCESS_KEY:SECRET_KEY@bucket-name/prefix
//
// Several URIs separated by commas produce a MultiStorageBackend that mirrors
// every write and reads from the first backend holding the object.
//
// Object names are single path elements. Separators, "." and ".." are
// rejected with interfaces.ErrInvalidName so that names taken from user input
// cannot leave their area. Writing an existing name replaces it.
//
// # Usage
//
//	factory := storage.NewStorageBackendFactory(logger)
//	scratch, err := factory.StorageBackendFromURIs("file://./scratch,s3://bucket/demo")
//	if err != nil {
//	    return err
//	}
//	location, err := scratch.Put(ctx, interfaces.UploadsArea, "contract.pdf", data)
package storage

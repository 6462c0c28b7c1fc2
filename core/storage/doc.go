// Package storage reads and writes token documents in S3-compatible object
// storage through the MinIO client.
//
// Client is a narrow interface over *minio.Client so services can be tested
// with mocks.Client. The helpers on top of it (ReadObject, WriteObject,
// ReadJSON, WriteJSON, ListNames) move whole objects, which is all token
// documents and saved palettes need. A missing object surfaces as
// ErrObjectNotFound.
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "tokens/brand.json")
//	names, err := storage.ListNames(ctx, client, cfg.Storage.Bucket, "tokens/")
package storage

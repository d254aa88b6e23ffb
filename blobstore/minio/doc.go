// Package minio provides a blobstore.Store backed by the MinIO client.
//
// It works with MinIO and other S3-compatible servers (Ceph, Garage,
// SeaweedFS) without pulling in the AWS SDK configuration chain.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "inputs/")
//
// NewFromEnv builds the client from POLYCRC_MINIO_ENDPOINT,
// MINIO_ACCESS_KEY and MINIO_SECRET_KEY; set POLYCRC_MINIO_INSECURE=1 to
// use plain HTTP.
package minio

package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectAPI is the part of the S3 client the R2 store uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Store keeps one JSON object per auto-save id in an R2 (S3 compatible) bucket.
type R2Store struct {
	api    ObjectAPI
	bucket string
	prefix string
}

// NewR2Store creates a store writing objects named <prefix><autoSaveID>.json.
func NewR2Store(api ObjectAPI, bucket, prefix string) *R2Store {
	return &R2Store{api: api, bucket: bucket, prefix: prefix}
}

func (r *R2Store) objectKey(autoSaveID string) string {
	return r.prefix + unsafeName.ReplaceAllString(autoSaveID, "_") + ".json"
}

// Load fetches the saved layouts. A missing object is an empty result.
func (r *R2Store) Load(ctx context.Context, autoSaveID string) (SavedLayouts, error) {
	out, err := r.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(autoSaveID)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return SavedLayouts{}, nil
		}
		return nil, fmt.Errorf("failed to get layout object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout object: %w", err)
	}

	var doc layoutFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout object: %w", err)
	}
	if doc.Layouts == nil {
		doc.Layouts = SavedLayouts{}
	}
	return doc.Layouts, nil
}

// Save uploads the layouts as a JSON object.
func (r *R2Store) Save(ctx context.Context, autoSaveID string, layouts SavedLayouts) error {
	data, err := json.Marshal(layoutFile{AutoSaveID: autoSaveID, Layouts: layouts})
	if err != nil {
		return err
	}

	_, err = r.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.objectKey(autoSaveID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put layout object: %w", err)
	}
	return nil
}

// Delete removes the object for autoSaveID.
func (r *R2Store) Delete(ctx context.Context, autoSaveID string) error {
	_, err := r.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(autoSaveID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete layout object: %w", err)
	}
	return nil
}

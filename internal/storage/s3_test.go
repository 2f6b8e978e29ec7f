package storage

import (
	"context"
	"testing"
	"time"
)

func TestResolveAvatarURLPassesThroughNonS3(t *testing.T) {
	svc := &S3Service{}

	for _, location := range []string{"", "https://cdn.example.com/a.png", "/static/a.png"} {
		got, err := svc.ResolveAvatarURL(context.Background(), location, time.Minute)
		if err != nil {
			t.Fatalf("location %q: %v", location, err)
		}
		if got != location {
			t.Fatalf("location %q resolved to %q; want passthrough", location, got)
		}
	}
}

func TestSplitS3Location(t *testing.T) {
	bucket, key, err := splitS3Location("s3://goat-dashboard-assets/avatars/executive.png")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if bucket != "goat-dashboard-assets" || key != "avatars/executive.png" {
		t.Fatalf("got bucket %q key %q", bucket, key)
	}

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		if _, _, err := splitS3Location(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

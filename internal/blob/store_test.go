package blob

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestOpenSelectsDriverFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Setenv("BROODCORE_BLOB_DRIVER", "memory")
	store, err := Open(ctx)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if store.Driver() != DriverMemory {
		t.Errorf("driver = %s, want %s", store.Driver(), DriverMemory)
	}

	t.Setenv("BROODCORE_BLOB_DRIVER", "fs")
	t.Setenv("BROODCORE_BLOB_FS_ROOT", t.TempDir())
	store, err = Open(ctx)
	if err != nil {
		t.Fatalf("open fs: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Errorf("driver = %s, want %s", store.Driver(), DriverFilesystem)
	}

	t.Setenv("BROODCORE_BLOB_DRIVER", "tape")
	if _, err := Open(ctx); err == nil {
		t.Error("unknown driver accepted")
	}
}

func TestOpenS3RequiresBucket(t *testing.T) {
	t.Setenv("BROODCORE_BLOB_DRIVER", "s3")
	t.Setenv("BROODCORE_BLOB_S3_BUCKET", "")
	if _, err := Open(context.Background()); err == nil {
		t.Error("s3 driver without bucket accepted")
	}
}

func TestFacadePutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	info, err := store.Put(ctx, "exports/demo.json", bytes.NewReader([]byte("{}")), PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != 2 {
		t.Errorf("size = %d, want 2", info.Size)
	}

	got, rc, err := store.Get(ctx, "exports/demo.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = rc.Close() }()
	payload, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(payload) != "{}" || got.ContentType != "application/json" {
		t.Errorf("get = %+v, %q", got, payload)
	}
}
